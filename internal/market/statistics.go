package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetStatistics fetches the closed statistics for an item and extracts the
// 48-hour sample window. A missing window decodes as an empty sample set.
func (c *Client) GetStatistics(ctx context.Context, slug string) (*StatisticsResponse, error) {
	body, err := c.fetch(ctx, "/v1/items/"+url.PathEscape(slug)+"/statistics")
	if err != nil {
		return nil, err
	}

	var env statisticsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal statistics for %s: %w", slug, err)
	}

	return &StatisticsResponse{
		Raw:     body,
		Samples: env.Payload.StatisticsClosed[closedWindow],
	}, nil
}
