// Package handoff wires the component schema toolkit together: registry
// access with optional caching, document validation, field building and
// preview rendering live in the pkg/ subpackages, with construction of the
// internal implementations exposed here.
package handoff

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-handoff/internal/cache"
	internalregistry "github.com/goliatone/go-handoff/internal/registry"
	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/config"
	"github.com/goliatone/go-handoff/pkg/registry"
	"github.com/goliatone/go-handoff/pkg/validation"
)

// NewClient constructs a registry client from functional options, for
// library consumers that wire their own cache and transport.
func NewClient(opts ...registry.Option) (registry.Client, error) {
	var options registry.Options
	for _, opt := range opts {
		opt(&options)
	}
	return internalregistry.New(options)
}

// NewRegistryClient constructs a registry client from configuration, so the
// concrete client type stays internal. When the cache is enabled the
// returned cleanup closes its database; cleanup is never nil. Cache entries
// past their TTL are pruned on open, best effort.
func NewRegistryClient(cfg *config.Config, logger *slog.Logger) (registry.Client, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := registry.Options{
		BaseURL: cfg.Registry.URL,
		Timeout: cfg.Registry.Timeout,
		Token:   cfg.Registry.Token,
		Logger:  logger,
	}

	cleanup := func() error { return nil }
	if cfg.Cache.Enabled {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("handoff: open cache: %w", err)
		}
		if cfg.Cache.TTL > 0 {
			if n, err := store.Prune(context.Background(), time.Now().Add(-cfg.Cache.TTL)); err != nil {
				logger.Warn("cache prune failed", "error", err)
			} else if n > 0 {
				logger.Debug("pruned stale cache entries", "count", n)
			}
		}
		opts.Cache = store
		opts.CacheTTL = cfg.Cache.TTL
		cleanup = store.Close
	}

	client, err := internalregistry.New(opts)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

// ValidateDocument decodes a JSON or YAML component document and runs the
// schema engine over it. Decode failures are operational errors; schema
// problems come back as diagnostics.
func ValidateDocument(data []byte) (component.Component, []validation.Diagnostic, error) {
	c, err := component.DecodeComponent(data)
	if err != nil {
		return component.Component{}, nil, err
	}
	return c, validation.ValidateComponent(c), nil
}
