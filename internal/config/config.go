package config

import "time"

// ProxyConfig is the root configuration for a proxy instance.
type ProxyConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Cache     CacheConfig     `yaml:"cache"`
	Aggregate AggregateConfig `yaml:"aggregate"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
}

// ServerConfig holds the inbound HTTP surface settings.
type ServerConfig struct {
	Addr        string  `yaml:"addr"`
	ClientRPS   float64 `yaml:"client_rps"`
	ClientBurst int     `yaml:"client_burst"`
}

// UpstreamConfig holds market API client settings.
type UpstreamConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	RequestGap  time.Duration `yaml:"request_gap"`
	MaxRetries  int           `yaml:"max_retries"`
	RetryDelay  time.Duration `yaml:"retry_delay"`
	RetryJitter time.Duration `yaml:"retry_jitter"`
	UserAgents  []string      `yaml:"user_agents"`
}

// CacheConfig holds the two cache TTLs.
type CacheConfig struct {
	DataTTL      time.Duration `yaml:"data_ttl"`
	CatalogueTTL time.Duration `yaml:"catalogue_ttl"`
}

// AggregateConfig holds batch aggregation settings.
type AggregateConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// CatalogueConfig holds the configured item list and the optional prewarm
// schedule.
type CatalogueConfig struct {
	Items       []string `yaml:"items"`
	PrewarmCron string   `yaml:"prewarm_cron"`
}
