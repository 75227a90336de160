// Package dispatch serializes all upstream network issuance behind a single
// fixed-gap grant queue.
//
// The upstream bans bursts, not just sustained rate, so a token bucket is
// not a substitute here: every pair of successive grants must be separated
// by the full gap, process-wide, regardless of which logical request they
// belong to.
package dispatch
