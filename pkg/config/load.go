package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognised by LoadWithEnv.
const (
	EnvRegistryURL     = "HANDOFF_REGISTRY_URL"
	EnvRegistryToken   = "HANDOFF_REGISTRY_TOKEN"
	EnvRegistryTimeout = "HANDOFF_REGISTRY_TIMEOUT"
	EnvCacheEnabled    = "HANDOFF_CACHE_ENABLED"
	EnvCachePath       = "HANDOFF_CACHE_PATH"
	EnvCacheTTL        = "HANDOFF_CACHE_TTL"
	EnvLogLevel        = "HANDOFF_LOG_LEVEL"
	EnvLogFormat       = "HANDOFF_LOG_FORMAT"
)

// Load reads a configuration file and returns the validated result.
//
// The loading sequence is:
//  1. Read the file
//  2. Parse YAML over the seeded defaults
//  3. Apply defaults to remaining zero values
//  4. Validate
func Load(path string) (*Config, error) {
	cfg, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnv behaves like Load but also applies HANDOFF_* environment
// overrides before validation. An empty path skips the file entirely so the
// CLI can run on defaults plus environment alone.
func LoadWithEnv(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = seed()
	} else {
		cfg, err = parseFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read configuration file %q: %w", path, err)
	}

	cfg := seed()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse configuration file %q: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvRegistryURL); v != "" {
		cfg.Registry.URL = v
	}
	if v := os.Getenv(EnvRegistryToken); v != "" {
		cfg.Registry.Token = v
	}
	if v := os.Getenv(EnvRegistryTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: parse %s: %w", EnvRegistryTimeout, err)
		}
		cfg.Registry.Timeout = d
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: parse %s: %w", EnvCacheEnabled, err)
		}
		cfg.Cache.Enabled = enabled
	}
	if v := os.Getenv(EnvCachePath); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: parse %s: %w", EnvCacheTTL, err)
		}
		cfg.Cache.TTL = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
