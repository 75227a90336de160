package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/marell/syndimarket/internal/model"
)

// GetOrders fetches and normalizes the order book for an item.
func (c *Client) GetOrders(ctx context.Context, slug string) (*OrdersResponse, error) {
	body, err := c.fetch(ctx, "/v2/orders/item/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}

	var env ordersEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal orders for %s: %w", slug, err)
	}

	raw := env.Data
	if raw == nil {
		raw = env.Payload.Orders
	}

	orders := make([]model.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, o.toModel())
	}

	return &OrdersResponse{Raw: body, Orders: orders}, nil
}
