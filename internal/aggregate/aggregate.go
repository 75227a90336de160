package aggregate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marell/syndimarket/internal/cache"
	"github.com/marell/syndimarket/internal/market"
	"github.com/marell/syndimarket/internal/model"
	"github.com/marell/syndimarket/internal/stats"
)

// ItemData is one item's raw upstream payload pair plus the parsed forms
// the calculator consumes. Cached wholesale; a refresh replaces the value.
type ItemData struct {
	Orders     json.RawMessage // raw order-book payload
	Statistics json.RawMessage // raw statistics payload; nil when degraded
	SellOrders []model.Order   // sell side only, buy orders are discarded
	Samples    []model.VolumeSample
	FetchedAt  time.Time
}

// Result is one item's outcome in a batch: a snapshot or an error message,
// never both. The uniform shape lets consumers render failed items as N/A.
type Result struct {
	Snapshot *model.ItemSnapshot `json:"snapshot,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Config holds aggregator settings.
type Config struct {
	DataTTL      time.Duration // raw payload cache (default: 10m)
	CatalogueTTL time.Duration // catalogue snapshot cache (default: 30m)
	BatchSize    int           // progress-reporting chunk size (default: 10)
	Items        []string      // catalogue item slugs
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataTTL:      10 * time.Minute,
		CatalogueTTL: 30 * time.Minute,
		BatchSize:    10,
	}
}

// Aggregator fetches, merges and caches per-item market data.
type Aggregator struct {
	cfg       Config
	client    *market.Client
	data      *cache.Store[*ItemData]
	catalogue *cache.Store[map[string]Result]
	logger    *slog.Logger
}

// New creates an Aggregator.
func New(cfg Config, client *market.Client, logger *slog.Logger) *Aggregator {
	def := DefaultConfig()
	if cfg.DataTTL <= 0 {
		cfg.DataTTL = def.DataTTL
	}
	if cfg.CatalogueTTL <= 0 {
		cfg.CatalogueTTL = def.CatalogueTTL
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		cfg:       cfg,
		client:    client,
		data:      cache.New[*ItemData](cfg.DataTTL),
		catalogue: cache.New[map[string]Result](cfg.CatalogueTTL),
		logger:    logger,
	}
}

// FetchItem returns the raw order/statistics pair for one item, served from
// cache while fresh. Both fetches run concurrently; each is independently
// rate limited and retried. An order-book failure fails the item. A
// statistics failure degrades the result to an absent sample set.
func (a *Aggregator) FetchItem(ctx context.Context, slug string) (*ItemData, error) {
	if d, ok := a.data.Get(slug); ok {
		return d, nil
	}

	var (
		wg        sync.WaitGroup
		orders    *market.OrdersResponse
		ordersErr error
		closed    *market.StatisticsResponse
		closedErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		orders, ordersErr = a.client.GetOrders(ctx, slug)
	}()
	go func() {
		defer wg.Done()
		closed, closedErr = a.client.GetStatistics(ctx, slug)
	}()
	wg.Wait()

	if ordersErr != nil {
		// Statistics are useless without orders.
		return nil, ordersErr
	}

	d := &ItemData{
		Orders:     orders.Raw,
		SellOrders: sellOnly(orders.Orders),
		FetchedAt:  time.Now(),
	}
	if closedErr != nil {
		a.logger.Warn("statistics fetch failed, continuing without volume",
			"item", slug,
			"err", closedErr,
		)
	} else {
		d.Statistics = closed.Raw
		d.Samples = closed.Samples
	}

	a.data.Put(slug, d)
	return d, nil
}

// Aggregate builds the derived snapshot for one item: sell orders split into
// the rank-0 and max-rank buckets, each run through the calculator with the
// full sample window.
func (a *Aggregator) Aggregate(ctx context.Context, slug string) (*model.ItemSnapshot, error) {
	d, err := a.FetchItem(ctx, slug)
	if err != nil {
		return nil, err
	}

	var rank0, ranked []model.Order
	for _, o := range d.SellOrders {
		if o.Rank > 0 {
			ranked = append(ranked, o)
		} else {
			rank0 = append(rank0, o)
		}
	}

	return &model.ItemSnapshot{
		Rank0:     stats.ComputeRankStats(rank0, d.Samples, 0),
		MaxRank:   stats.ComputeRankStats(ranked, d.Samples, stats.MaxRankFilter),
		FetchedAt: d.FetchedAt.UnixMilli(),
	}, nil
}

// AggregateBatch aggregates each item and returns one entry per requested
// slug. Per-item failures are embedded; the batch itself never fails.
func (a *Aggregator) AggregateBatch(ctx context.Context, items []string) map[string]Result {
	runID := uuid.NewString()
	start := time.Now()
	results := make(map[string]Result, len(items))

	for chunkStart := 0; chunkStart < len(items); chunkStart += a.cfg.BatchSize {
		chunkEnd := min(chunkStart+a.cfg.BatchSize, len(items))
		for _, slug := range items[chunkStart:chunkEnd] {
			snap, err := a.Aggregate(ctx, slug)
			if err != nil {
				results[slug] = Result{Error: err.Error()}
				continue
			}
			results[slug] = Result{Snapshot: snap}
		}
		a.logger.Info("batch progress",
			"run_id", runID,
			"done", chunkEnd,
			"total", len(items),
		)
	}

	a.logger.Info("batch complete",
		"run_id", runID,
		"items", len(items),
		"duration", time.Since(start),
	)
	return results
}

// CachedItems returns the number of raw payload cache entries.
func (a *Aggregator) CachedItems() int {
	return a.data.Len()
}

func sellOnly(orders []model.Order) []model.Order {
	sell := orders[:0:0]
	for _, o := range orders {
		if o.Side == model.SideSell {
			sell = append(sell, o)
		}
	}
	return sell
}
