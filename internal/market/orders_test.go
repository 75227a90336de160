package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marell/syndimarket/internal/dispatch"
	"github.com/marell/syndimarket/internal/model"
)

func decodeServer(t *testing.T, path, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Errorf("path = %q, want %q", r.URL.Path, path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewClient(server.URL, dispatch.New(time.Millisecond), WithRetryJitter(0))
}

func TestGetOrdersV2Shape(t *testing.T) {
	c := decodeServer(t, "/v2/orders/item/gilded_truth", `{
		"data": [
			{"platinum": 15, "type": "sell", "rank": 0},
			{"platinum": 40, "type": "sell", "rank": 3},
			{"platinum": 8,  "type": "buy"}
		]
	}`)

	resp, err := c.GetOrders(context.Background(), "gilded_truth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Orders) != 3 {
		t.Fatalf("len(Orders) = %d, want 3", len(resp.Orders))
	}
	if resp.Orders[0] != (model.Order{Price: 15, Side: model.SideSell, Rank: 0}) {
		t.Errorf("Orders[0] = %+v", resp.Orders[0])
	}
	if resp.Orders[1].Rank != 3 {
		t.Errorf("Orders[1].Rank = %d, want 3", resp.Orders[1].Rank)
	}
	// Absent rank normalizes to 0.
	if resp.Orders[2] != (model.Order{Price: 8, Side: model.SideBuy, Rank: 0}) {
		t.Errorf("Orders[2] = %+v", resp.Orders[2])
	}
	if len(resp.Raw) == 0 {
		t.Error("Raw payload should be retained for passthrough")
	}
}

func TestGetOrdersLegacyShape(t *testing.T) {
	c := decodeServer(t, "/v2/orders/item/despoil", `{
		"payload": {
			"orders": [
				{"platinum": 12, "order_type": "sell", "mod_rank": 5}
			]
		}
	}`)

	resp, err := c.GetOrders(context.Background(), "despoil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Orders) != 1 {
		t.Fatalf("len(Orders) = %d, want 1", len(resp.Orders))
	}
	if resp.Orders[0] != (model.Order{Price: 12, Side: model.SideSell, Rank: 5}) {
		t.Errorf("Orders[0] = %+v", resp.Orders[0])
	}
}

func TestGetOrdersInvalidJSON(t *testing.T) {
	c := decodeServer(t, "/v2/orders/item/bad", `not json`)
	if _, err := c.GetOrders(context.Background(), "bad"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetStatistics(t *testing.T) {
	c := decodeServer(t, "/v1/items/gilded_truth/statistics", `{
		"payload": {
			"statistics_closed": {
				"48hours": [
					{"volume": 30, "mod_rank": 0},
					{"volume": 12, "mod_rank": 5},
					{"volume": 4}
				],
				"90days": [
					{"volume": 9999, "mod_rank": 0}
				]
			}
		}
	}`)

	resp, err := c.GetStatistics(context.Background(), "gilded_truth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Samples) != 3 {
		t.Fatalf("len(Samples) = %d, want 3 (only the 48-hour window)", len(resp.Samples))
	}
	if resp.Samples[0].Rank == nil || *resp.Samples[0].Rank != 0 {
		t.Errorf("Samples[0].Rank = %v, want explicit 0", resp.Samples[0].Rank)
	}
	if resp.Samples[2].Rank != nil {
		t.Errorf("Samples[2].Rank = %v, want nil for absent mod_rank", *resp.Samples[2].Rank)
	}
}

func TestGetStatisticsMissingWindow(t *testing.T) {
	c := decodeServer(t, "/v1/items/sparse/statistics", `{"payload": {"statistics_closed": {}}}`)

	resp, err := c.GetStatistics(context.Background(), "sparse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Samples) != 0 {
		t.Errorf("len(Samples) = %d, want 0", len(resp.Samples))
	}
}

func TestItemSlugEscaping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/v2/orders/item/odd%20slug" {
			t.Errorf("path = %q, want escaped slug", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, dispatch.New(time.Millisecond), WithRetryJitter(0))
	if _, err := c.GetOrders(context.Background(), "odd slug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
