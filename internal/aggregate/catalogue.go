package aggregate

import (
	"context"
	"errors"
)

// ErrNoData reports a catalogue run where every item failed, which almost
// always means a total upstream lockout rather than bad items. Consumers
// should surface a retryable connectivity message, not an empty view.
var ErrNoData = errors.New("no market data available, upstream unreachable")

// catalogueCacheKey versions the catalogue snapshot. Bump to invalidate
// snapshots across a breaking shape change.
const catalogueCacheKey = "prices_v1"

// Catalogue returns the snapshot map for the configured item list, served
// from the long-lived snapshot cache unless force is set or the cached copy
// has gone stale.
func (a *Aggregator) Catalogue(ctx context.Context, force bool) (map[string]Result, error) {
	if !force {
		if snap, ok := a.catalogue.Get(catalogueCacheKey); ok {
			return snap, nil
		}
	}

	results := a.AggregateBatch(ctx, a.cfg.Items)

	failed := 0
	for _, r := range results {
		if r.Snapshot == nil {
			failed++
		}
	}
	if len(results) > 0 && failed == len(results) {
		return nil, ErrNoData
	}

	a.catalogue.Put(catalogueCacheKey, results)
	return results, nil
}

// Items returns the configured catalogue slugs.
func (a *Aggregator) Items() []string {
	return a.cfg.Items
}
