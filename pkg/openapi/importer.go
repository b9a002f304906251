package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-handoff/pkg/component"
)

// ImporterOptions configures how documents are loaded before conversion.
type ImporterOptions struct {
	// AllowExternalRefs lets the loader chase $ref pointers outside the
	// document. Defaults to true for full documents.
	AllowExternalRefs bool

	// Validate runs kin-openapi's structural validation before conversion.
	// Off by default; component-only fragments are common inputs.
	Validate bool
}

// ImporterOption mutates ImporterOptions during construction.
type ImporterOption func(*ImporterOptions)

// WithExternalRefs toggles resolution of external $ref pointers.
func WithExternalRefs(allowed bool) ImporterOption {
	return func(opts *ImporterOptions) {
		opts.AllowExternalRefs = allowed
	}
}

// WithValidation toggles structural validation of the loaded document.
func WithValidation(enabled bool) ImporterOption {
	return func(opts *ImporterOptions) {
		opts.Validate = enabled
	}
}

// Importer converts OpenAPI documents into handoff components.
type Importer struct {
	options ImporterOptions
}

// New constructs an Importer with the given options applied over defaults.
func New(options ...ImporterOption) *Importer {
	cfg := ImporterOptions{AllowExternalRefs: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Importer{options: cfg}
}

// Import loads data as an OpenAPI 3 document and converts each object schema
// under #/components/schemas into a component, sorted by schema name.
func (i *Importer) Import(ctx context.Context, data []byte) ([]component.Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: i.options.AllowExternalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if i.options.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate document: %w", err)
		}
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document defines no component schemas")
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make([]component.Component, 0, len(names))
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if !convertible(ref.Value) {
			continue
		}
		components = append(components, convertComponent(name, ref.Value))
	}
	if len(components) == 0 {
		return nil, errors.New("openapi: no object schemas to convert")
	}
	return components, nil
}

// Detect reports whether raw looks like an OpenAPI document. It is used by
// the CLI to reject obviously wrong inputs before loading.
func Detect(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		var payload map[string]any
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			if _, ok := payload["openapi"]; ok {
				return true
			}
			if _, ok := payload["swagger"]; ok {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(string(trimmed))
	return strings.Contains(lower, "openapi:") || strings.Contains(lower, "swagger:")
}
