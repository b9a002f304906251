package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError describes a single invalid configuration field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every invalid field found in a configuration so
// callers can report all problems in one pass.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		f := e.Errors[0]
		return fmt.Sprintf("config: invalid %s: %s", f.Field, f.Message)
	}

	var b strings.Builder
	b.WriteString("config: invalid configuration:")
	for _, f := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration and returns a *ValidationError listing
// every offending field, or nil when the configuration is usable.
func (c *Config) Validate() error {
	var errs []FieldError

	if c.Registry.URL != "" {
		u, err := url.Parse(c.Registry.URL)
		if err != nil {
			errs = append(errs, FieldError{
				Field:   "registry.url",
				Message: fmt.Sprintf("not a valid URL: %v", err),
			})
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, FieldError{
				Field:   "registry.url",
				Message: fmt.Sprintf("unsupported scheme %q, expected http or https", u.Scheme),
			})
		}
	}

	if c.Registry.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "registry.timeout",
			Message: "must not be negative",
		})
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		errs = append(errs, FieldError{
			Field:   "cache.path",
			Message: "required when the cache is enabled",
		})
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, FieldError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q, expected debug, info, warn or error", c.Log.Level),
		})
	}

	if !validLogFormats[c.Log.Format] {
		errs = append(errs, FieldError{
			Field:   "log.format",
			Message: fmt.Sprintf("unknown format %q, expected text or json", c.Log.Format),
		})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
