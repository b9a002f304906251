package config

import "time"

// Default values for configuration fields.
const (
	DefaultRegistryTimeout = 30 * time.Second

	DefaultCacheEnabled = true
	DefaultCachePath    = ".handoff/cache.db"
	DefaultCacheTTL     = 15 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns a fully defaulted configuration.
func Default() *Config {
	cfg := seed()
	ApplyDefaults(cfg)
	return cfg
}

// seed returns a config with the boolean defaults already set. Booleans are
// seeded before YAML decoding so an absent key keeps its default while an
// explicit false survives.
func seed() *Config {
	return &Config{Cache: CacheConfig{Enabled: DefaultCacheEnabled}}
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Registry.Timeout == 0 {
		cfg.Registry.Timeout = DefaultRegistryTimeout
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
