package market

import (
	"encoding/json"

	"github.com/marell/syndimarket/internal/model"
)

// OrdersResponse carries the raw order-book payload (for passthrough) plus
// the normalized orders.
type OrdersResponse struct {
	Raw    json.RawMessage
	Orders []model.Order
}

// StatisticsResponse carries the raw statistics payload plus the 48-hour
// closed-sale volume samples.
type StatisticsResponse struct {
	Raw     json.RawMessage
	Samples []model.VolumeSample
}

// apiOrder tolerates both upstream schema generations: v2 exposes
// type/rank, the legacy payload used order_type/mod_rank.
type apiOrder struct {
	Platinum  int    `json:"platinum"`
	Type      string `json:"type"`
	OrderType string `json:"order_type"`
	Rank      *int   `json:"rank"`
	ModRank   *int   `json:"mod_rank"`
}

func (o apiOrder) toModel() model.Order {
	side := o.Type
	if side == "" {
		side = o.OrderType
	}

	rank := 0
	switch {
	case o.Rank != nil:
		rank = *o.Rank
	case o.ModRank != nil:
		rank = *o.ModRank
	}

	return model.Order{
		Price: o.Platinum,
		Side:  model.OrderSide(side),
		Rank:  rank,
	}
}

// ordersEnvelope matches both the v2 response ({"data": [...]}) and the
// legacy shape ({"payload": {"orders": [...]}}).
type ordersEnvelope struct {
	Data    []apiOrder `json:"data"`
	Payload struct {
		Orders []apiOrder `json:"orders"`
	} `json:"payload"`
}

// closedWindow is the statistics_closed window the proxy consumes.
const closedWindow = "48hours"

type statisticsEnvelope struct {
	Payload struct {
		StatisticsClosed map[string][]model.VolumeSample `json:"statistics_closed"`
	} `json:"payload"`
}
