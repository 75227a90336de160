package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *ProxyConfig) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ClientRPS <= 0 {
		return errors.New("server.client_rps must be > 0")
	}
	if c.Server.ClientBurst < 1 {
		return errors.New("server.client_burst must be >= 1")
	}

	if !strings.HasPrefix(c.Upstream.BaseURL, "http://") && !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
		return fmt.Errorf("upstream.base_url must be an http(s) URL, got %q", c.Upstream.BaseURL)
	}
	if c.Upstream.RequestGap <= 0 {
		return errors.New("upstream.request_gap must be > 0")
	}
	if c.Upstream.MaxRetries < 0 {
		return errors.New("upstream.max_retries must be >= 0")
	}
	if c.Upstream.RetryDelay <= 0 {
		return errors.New("upstream.retry_delay must be > 0")
	}
	if c.Upstream.RetryJitter < 0 {
		return errors.New("upstream.retry_jitter must be >= 0")
	}

	if c.Cache.DataTTL <= 0 {
		return errors.New("cache.data_ttl must be > 0")
	}
	if c.Cache.CatalogueTTL <= 0 {
		return errors.New("cache.catalogue_ttl must be > 0")
	}

	if c.Aggregate.BatchSize < 1 {
		return errors.New("aggregate.batch_size must be >= 1")
	}

	for _, item := range c.Catalogue.Items {
		if strings.TrimSpace(item) == "" {
			return errors.New("catalogue.items must not contain empty slugs")
		}
	}
	if c.Catalogue.PrewarmCron != "" && len(c.Catalogue.Items) == 0 {
		return errors.New("catalogue.prewarm_cron requires catalogue.items")
	}

	return nil
}
