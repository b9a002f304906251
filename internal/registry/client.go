package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-handoff/pkg/component"
	pkgregistry "github.com/goliatone/go-handoff/pkg/registry"
)

const defaultTimeout = 30 * time.Second

// client implements pkgregistry.Client over the store's HTTP JSON API.
type client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	token   string
	cache   pkgregistry.Cache
	ttl     time.Duration
	log     *slog.Logger
}

// Ensure the implementation satisfies the public interface.
var _ pkgregistry.Client = (*client)(nil)

// New constructs a client from pre-resolved options.
func New(options pkgregistry.Options) (pkgregistry.Client, error) {
	raw := strings.TrimSpace(options.BaseURL)
	if raw == "" {
		return nil, errors.New("registry: base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("registry: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("registry: unsupported scheme %q", base.Scheme)
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var httpClient *http.Client
	if options.HTTPClient != nil {
		clone := *options.HTTPClient
		if clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	} else {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		base:    base,
		http:    httpClient,
		timeout: timeout,
		token:   options.Token,
		cache:   options.Cache,
		ttl:     options.CacheTTL,
		log:     logger,
	}, nil
}

// Component fetches one component document by code.
func (c *client) Component(ctx context.Context, code string) (component.Component, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return component.Component{}, errors.New("registry: component code is required")
	}

	payload, err := c.fetch(ctx, c.endpoint("components", code), code)
	if err != nil {
		return component.Component{}, err
	}

	comp, err := component.DecodeComponent(payload)
	if err != nil {
		return component.Component{}, fmt.Errorf("registry: component %s: %w", code, err)
	}
	return comp, nil
}

// Components fetches the published component list.
func (c *client) Components(ctx context.Context) ([]component.Component, error) {
	payload, err := c.fetch(ctx, c.endpoint("components"), pkgregistry.ListCacheKey)
	if err != nil {
		return nil, err
	}

	list, err := component.DecodeComponentList(payload)
	if err != nil {
		return nil, fmt.Errorf("registry: component list: %w", err)
	}
	return list, nil
}

// fetch resolves a payload through the cache when one is configured. Cache
// failures degrade to the network; they are logged, never returned.
func (c *client) fetch(ctx context.Context, endpoint, cacheKey string) ([]byte, error) {
	if c.cache != nil {
		payload, storedAt, ok, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			c.log.Warn("registry cache read failed", "key", cacheKey, "error", err)
		case ok && c.fresh(storedAt):
			c.log.Debug("registry cache hit", "key", cacheKey, "age", time.Since(storedAt))
			return payload, nil
		}
	}

	start := time.Now()
	payload, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	c.log.Debug("registry fetch", "url", endpoint, "bytes", len(payload), "elapsed", time.Since(start))

	if c.cache != nil {
		if err := c.cache.Put(ctx, cacheKey, payload); err != nil {
			c.log.Warn("registry cache write failed", "key", cacheKey, "error", err)
		}
	}
	return payload, nil
}

func (c *client) fresh(storedAt time.Time) bool {
	if c.ttl <= 0 {
		return true
	}
	return time.Since(storedAt) <= c.ttl
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("registry: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry: fetch %s: %w", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w (%s)", pkgregistry.ErrNotFound, endpoint)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &pkgregistry.StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("registry: read response: %w", err)
	}
	return payload, nil
}

func (c *client) endpoint(parts ...string) string {
	return c.base.JoinPath(parts...).String()
}
