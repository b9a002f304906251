// Package registry defines the contracts for the remote component store: a
// small JSON API serving the published component list and individual
// component documents. Implementations live under internal/registry but
// satisfy these interfaces.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-handoff/pkg/component"
)

// Client fetches component documents from the store.
type Client interface {
	// Component retrieves one component by its machine code.
	Component(ctx context.Context, code string) (component.Component, error)
	// Components retrieves the published component list.
	Components(ctx context.Context) ([]component.Component, error)
}

// Cache is a read-through byte cache keyed by component code. Implementations
// must tolerate concurrent use from a single client.
type Cache interface {
	// Get returns the cached payload and the time it was stored. ok is false
	// on a miss; err reports storage failures only.
	Get(ctx context.Context, key string) (payload []byte, storedAt time.Time, ok bool, err error)
	// Put stores or replaces the payload under key.
	Put(ctx context.Context, key string, payload []byte) error
}

// ListCacheKey is the reserved cache key for the component list payload.
// Component codes never collide with it; codes do not start with "@".
const ListCacheKey = "@list"

// ErrNotFound reports a component code unknown to the store.
var ErrNotFound = errors.New("registry: component not found")

// StatusError reports a non-2xx response that is not a plain not-found.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry: unexpected status %d fetching %s", e.Code, e.URL)
}

// Options collects the knobs for constructing a client. Zero values fall
// back to defaults at construction; only BaseURL is mandatory.
type Options struct {
	// BaseURL is the store root, e.g. "https://registry.example.com/api".
	BaseURL string

	// HTTPClient injects custom transport behaviour (proxies, TLS). Nil
	// means a dedicated client honouring Timeout.
	HTTPClient *http.Client

	// Timeout caps each fetch. Zero selects the default of 30 seconds.
	Timeout time.Duration

	// Token, when set, is sent as a bearer Authorization header.
	Token string

	// Cache short-circuits fetches younger than CacheTTL and absorbs fresh
	// payloads after each network round trip. Nil disables caching.
	Cache Cache

	// CacheTTL bounds cache freshness. Zero or negative means entries never
	// expire.
	CacheTTL time.Duration

	// Logger receives fetch and cache events. Nil selects slog.Default.
	Logger *slog.Logger
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithBaseURL points the client at a store root.
func WithBaseURL(raw string) Option {
	return func(o *Options) {
		o.BaseURL = raw
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithTimeout caps individual fetches.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithToken authenticates requests with a bearer token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithCache enables the read-through cache. ttl <= 0 keeps entries forever.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(o *Options) {
		o.Cache = cache
		o.CacheTTL = ttl
	}
}

// WithLogger routes client logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
