package model

// OrderSide is the direction of an order-book entry.
type OrderSide string

const (
	SideSell OrderSide = "sell"
	SideBuy  OrderSide = "buy"
)

// Order is a single order-book entry, normalized across the two upstream
// schema generations (v2 uses type/rank, v1 used order_type/mod_rank).
type Order struct {
	Price int       // listed price in platinum
	Side  OrderSide // sell or buy
	Rank  int       // mod rank; 0 when the upstream omitted it
}

// VolumeSample is one entry of the rolling 48-hour closed-statistics window.
// Rank is nil when the upstream omitted mod_rank; a nil rank matches any
// rank filter, so it must stay distinguishable from an explicit 0.
type VolumeSample struct {
	Rank   *int `json:"mod_rank,omitempty"`
	Volume int  `json:"volume"`
}

// RankStats holds the derived metrics for one rank bucket. Immutable once
// computed.
//
// MinPrice is the mean of the three lowest listed prices rather than the
// single lowest; the name is kept because consumers sort and highlight by
// this exact value.
type RankStats struct {
	MinPrice    *float64 `json:"minPrice"`
	AvgPrice    *float64 `json:"avgPrice"`
	OrderCount  int      `json:"orderCount"`
	Volume      int      `json:"volume"`
	ProfitScore int      `json:"profitScore"`
}

// ItemSnapshot is the derived per-item view across both rank buckets.
// Snapshots are replaced wholesale on refresh, never mutated.
type ItemSnapshot struct {
	Rank0     RankStats `json:"rank0"`
	MaxRank   RankStats `json:"maxRank"`
	FetchedAt int64     `json:"fetchedAt"` // ms since epoch
}
