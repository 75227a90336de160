package stats

import (
	"math"
	"sort"

	"github.com/marell/syndimarket/internal/model"
)

// MaxRankFilter is the volume-sample rank filter for the max-rank bucket.
// Any positive mod rank counts as "maxed" for pricing, and 5 is the filter
// value consumers were built against.
// TODO: confirm against the current upstream mod_rank encoding, which caps
// below 5 for some mods.
const MaxRankFilter = 5

// ComputeRankStats derives the metrics for one rank bucket. The step order
// is fixed for reproducibility:
//
//  1. daily volume from the 48-hour sample window (rank match or absent)
//  2. empty order book short-circuits with nil prices
//  3. MinPrice = mean of the three lowest prices, 1 decimal
//  4. AvgPrice = mean of all prices, 1 decimal
//  5. ProfitScore = round(MinPrice × volume)
func ComputeRankStats(sellOrders []model.Order, samples []model.VolumeSample, rankFilter int) model.RankStats {
	rs := model.RankStats{Volume: dailyVolume(samples, rankFilter)}
	if len(sellOrders) == 0 {
		return rs
	}

	prices := make([]int, len(sellOrders))
	for i, o := range sellOrders {
		prices[i] = o.Price
	}
	sort.Ints(prices)

	lowest := prices
	if len(lowest) > 3 {
		lowest = lowest[:3]
	}

	minPrice := round1(mean(lowest))
	avgPrice := round1(mean(prices))

	rs.MinPrice = &minPrice
	rs.AvgPrice = &avgPrice
	rs.OrderCount = len(sellOrders)
	rs.ProfitScore = int(math.Round(minPrice * float64(rs.Volume)))
	return rs
}

// dailyVolume sums the samples matching the rank filter (absent ranks match
// any filter) and halves the 48-hour total to a per-day figure.
func dailyVolume(samples []model.VolumeSample, rankFilter int) int {
	total := 0
	for _, s := range samples {
		if s.Rank == nil || *s.Rank == rankFilter {
			total += s.Volume
		}
	}
	return int(math.Round(float64(total) / 2))
}

func mean(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
