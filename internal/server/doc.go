// Package server exposes the proxy's HTTP surface: raw per-item payloads,
// derived snapshots, the catalogue view and a health probe.
//
// Upstream status failures pass through as-is so callers can distinguish a
// missing item from a throttled upstream; transport failures map to 500.
package server
