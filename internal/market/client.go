package market

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marell/syndimarket/internal/dispatch"
)

// DefaultBaseURL is the production warframe.market API host.
const DefaultBaseURL = "https://api.warframe.market"

// defaultUserAgents is the rotation pool for the User-Agent header. Picking
// one at random per attempt reduces fingerprinting-based throttling; it is a
// masking heuristic with no correctness contract.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:123.0) Gecko/20100101 Firefox/123.0",
}

// Client provides access to the warframe.market REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *dispatch.Dispatcher
	logger     *slog.Logger

	maxRetries  int
	retryDelay  time.Duration
	retryJitter time.Duration
	userAgents  []string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a market API client. All calls issue through limiter.
func NewClient(baseURL string, limiter *dispatch.Dispatcher, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter:     limiter,
		logger:      slog.Default(),
		maxRetries:  3,
		retryDelay:  3 * time.Second,
		retryJitter: 2 * time.Second,
		userAgents:  defaultUserAgents,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the throttle-retry budget and the initial backoff delay.
func WithRetries(max int, delay time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryDelay = delay
	}
}

// WithRetryJitter sets the upper bound of the uniform random jitter added to
// each backoff delay. Zero disables jitter.
func WithRetryJitter(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryJitter = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgents replaces the User-Agent rotation pool.
func WithUserAgents(agents []string) ClientOption {
	return func(c *Client) {
		if len(agents) > 0 {
			c.userAgents = agents
		}
	}
}
