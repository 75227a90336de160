// Package aggregate merges the two upstream endpoints per item into cached
// raw payloads and derived snapshots.
//
// The order-book fetch is required; the statistics fetch is enrichment and
// degrades to an absent sample set. Batch aggregation chunks the item list
// purely for progress reporting — the dispatcher remains the only real
// limiter on network issuance.
package aggregate
