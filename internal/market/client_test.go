package market

import (
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/marell/syndimarket/internal/dispatch"
)

func TestNewClient(t *testing.T) {
	limiter := dispatch.New(time.Millisecond)

	t.Run("default values", func(t *testing.T) {
		c := NewClient("", limiter)

		if c.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.maxRetries != 3 {
			t.Errorf("maxRetries = %d, want 3", c.maxRetries)
		}
		if c.retryDelay != 3*time.Second {
			t.Errorf("retryDelay = %v, want %v", c.retryDelay, 3*time.Second)
		}
		if c.retryJitter != 2*time.Second {
			t.Errorf("retryJitter = %v, want %v", c.retryJitter, 2*time.Second)
		}
		if len(c.userAgents) == 0 {
			t.Error("user agent pool should not be empty")
		}
	})

	t.Run("with options", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		hc := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://example.com", limiter,
			WithTimeout(5*time.Second),
			WithRetries(1, time.Second),
			WithRetryJitter(0),
			WithLogger(logger),
			WithHTTPClient(hc),
			WithUserAgents([]string{"test-agent"}),
		)

		if c.httpClient != hc {
			t.Error("custom HTTP client not set")
		}
		if c.maxRetries != 1 || c.retryDelay != time.Second {
			t.Errorf("retries = (%d, %v), want (1, 1s)", c.maxRetries, c.retryDelay)
		}
		if c.retryJitter != 0 {
			t.Errorf("retryJitter = %v, want 0", c.retryJitter)
		}
		if c.logger != logger {
			t.Error("logger not set correctly")
		}
		if len(c.userAgents) != 1 || c.userAgents[0] != "test-agent" {
			t.Errorf("userAgents = %v", c.userAgents)
		}
	})

	t.Run("empty user agent pool is ignored", func(t *testing.T) {
		c := NewClient("", limiter, WithUserAgents(nil))
		if len(c.userAgents) == 0 {
			t.Error("empty pool should keep the defaults")
		}
	})
}
