// Package model defines the domain types shared across the proxy:
// normalized order-book entries, closed-statistics volume samples, and the
// derived per-item rank statistics and snapshots.
package model
