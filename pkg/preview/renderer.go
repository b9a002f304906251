package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/fieldset"
	"github.com/goliatone/go-handoff/pkg/validation"
)

const defaultPageTemplate = "preview.html"

// Input carries everything a preview needs. Fields normally come from
// fieldset.Builder; Theme is optional and usually produced by
// BuildRendererConfig.
type Input struct {
	Component   component.Component
	Fields      []fieldset.Field
	Diagnostics []validation.Diagnostic
	Theme       *theme.RendererConfig
}

// Option configures the renderer before construction.
type Option func(*options)

type options struct {
	templates fs.FS
	page      string
}

func defaultOptions() options {
	return options{page: defaultPageTemplate}
}

// WithTemplateFS replaces the embedded template bundle.
func WithTemplateFS(files fs.FS) Option {
	return func(o *options) {
		if files != nil {
			o.templates = files
		}
	}
}

// WithPageTemplate overrides the entry template name.
func WithPageTemplate(name string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			o.page = trimmed
		}
	}
}

// Renderer turns components and their fieldsets into HTML documents. It is
// safe for concurrent use; parsed templates are cached per name.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	page      string
}

// New constructs a Renderer over the embedded templates unless an override
// filesystem is supplied.
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	files := cfg.templates
	if files == nil {
		files = TemplatesFS()
	}
	return &Renderer{
		set:       pongo2.NewSet("handoff-preview", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
		page:      cfg.page,
	}, nil
}

// Render produces a complete HTML document for input.
func (r *Renderer) Render(ctx context.Context, input Input) ([]byte, error) {
	if r == nil || r.set == nil {
		return nil, errors.New("preview: renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.template(r.page)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(buildContext(input), &buf); err != nil {
		return nil, fmt.Errorf("preview: execute template %q: %w", r.page, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("preview: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}
