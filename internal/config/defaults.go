package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAddr         = ":3000"
	DefaultClientRPS    = 10.0
	DefaultClientBurst  = 20
	DefaultUpstreamURL  = "https://api.warframe.market"
	DefaultTimeout      = 30 * time.Second
	DefaultRequestGap   = 334 * time.Millisecond
	DefaultMaxRetries   = 3
	DefaultRetryDelay   = 3 * time.Second
	DefaultRetryJitter  = 2 * time.Second
	DefaultDataTTL      = 10 * time.Minute
	DefaultCatalogueTTL = 30 * time.Minute
	DefaultBatchSize    = 10
)

func (c *ProxyConfig) applyDefaults() {
	// Server defaults
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ClientRPS == 0 {
		c.Server.ClientRPS = DefaultClientRPS
	}
	if c.Server.ClientBurst == 0 {
		c.Server.ClientBurst = DefaultClientBurst
	}

	// Upstream defaults
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultUpstreamURL
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = DefaultTimeout
	}
	if c.Upstream.RequestGap == 0 {
		c.Upstream.RequestGap = DefaultRequestGap
	}
	if c.Upstream.MaxRetries == 0 {
		c.Upstream.MaxRetries = DefaultMaxRetries
	}
	if c.Upstream.RetryDelay == 0 {
		c.Upstream.RetryDelay = DefaultRetryDelay
	}
	if c.Upstream.RetryJitter == 0 {
		c.Upstream.RetryJitter = DefaultRetryJitter
	}

	// Cache defaults
	if c.Cache.DataTTL == 0 {
		c.Cache.DataTTL = DefaultDataTTL
	}
	if c.Cache.CatalogueTTL == 0 {
		c.Cache.CatalogueTTL = DefaultCatalogueTTL
	}

	// Aggregate defaults
	if c.Aggregate.BatchSize == 0 {
		c.Aggregate.BatchSize = DefaultBatchSize
	}
}
