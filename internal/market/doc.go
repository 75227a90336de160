// Package market provides the warframe.market REST client.
//
// Endpoints used:
//   - GET /v2/orders/item/{slug}       — order book
//   - GET /v1/items/{slug}/statistics  — closed statistics (48-hour window)
//
// Every request attempt first acquires a slot from the shared dispatcher,
// retries included; a retry is a brand-new scheduled slot, never a bypass.
package market
