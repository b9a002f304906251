package fieldset

import (
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-handoff/pkg/component"
)

// Builder converts property definitions into Fields. The zero-config
// constructor generates UUID identifiers and uses DefaultLabeler.
type Builder struct {
	opts options
}

// New returns a Builder with the supplied options applied.
func New(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{opts: o}
}

// Build converts one property definition declared under key into a Field.
// prefix scopes the machine name ("hero" + "cta-label" -> "hero_cta_label");
// pass "" at the top level. The input definition is never mutated, and
// malformed definitions pass through as best-effort fields.
func (b *Builder) Build(key string, p component.PropertyDefinition, prefix string) Field {
	name := joinName(prefix, SanitizeName(key))

	f := Field{
		ID:          b.opts.nextID(),
		Name:        name,
		Label:       b.labelFor(p, key),
		Type:        p.Type,
		Description: p.Description,
		Default:     p.Default,
		Rules:       p.Rules,
	}

	if hasChildren(p) {
		f.Children = b.BuildAll(p.Items.Properties, name)
	}
	return f
}

// BuildAll converts a property map into Fields ordered by declaration key,
// sharing prefix across every entry.
func (b *Builder) BuildAll(props map[string]component.PropertyDefinition, prefix string) []Field {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, b.Build(key, props[key], prefix))
	}
	return fields
}

// BuildComponent builds the full field set for a component's property map.
func (b *Builder) BuildComponent(c component.Component) []Field {
	return b.BuildAll(c.Properties, "")
}

func (b *Builder) labelFor(p component.PropertyDefinition, key string) string {
	if p.Name != "" {
		return b.opts.labeler(p.Name)
	}
	return b.opts.labeler(key)
}

func hasChildren(p component.PropertyDefinition) bool {
	if p.Items == nil {
		return false
	}
	return p.Type == component.PropertyTypeGroup || p.Type == component.PropertyTypeArray
}

var nonNameRunes = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeName lowercases a declaration key and reduces it to [a-z0-9_],
// collapsing every run of other characters into a single underscore.
func SanitizeName(key string) string {
	lowered := strings.ToLower(strings.TrimSpace(key))
	cleaned := nonNameRunes.ReplaceAllString(lowered, "_")
	return strings.Trim(cleaned, "_")
}

func joinName(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "_" + name
	}
}
