package config

import "time"

// Config is the root configuration for the handoff CLI.
type Config struct {
	// Registry configures access to the remote component store.
	Registry RegistryConfig `yaml:"registry"`

	// Cache configures local persistence of fetched payloads.
	Cache CacheConfig `yaml:"cache"`

	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`
}

// RegistryConfig contains the connection settings for the component store.
type RegistryConfig struct {
	// URL is the base URL of the registry, e.g. "https://design.example.com/api".
	URL string `yaml:"url"`

	// Token is sent as a bearer token when non-empty. Prefer the
	// HANDOFF_REGISTRY_TOKEN environment variable over the file for secrets.
	Token string `yaml:"token"`

	// Timeout caps each registry request.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// CacheConfig contains settings for the local component cache.
type CacheConfig struct {
	// Enabled toggles the cache entirely.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database location.
	// Default: .handoff/cache.db
	Path string `yaml:"path"`

	// TTL is how long a cached payload is considered fresh. A negative
	// TTL means entries never go stale; zero falls back to the default.
	// Default: 15m
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is one of text, json.
	// Default: text
	Format string `yaml:"format"`
}
