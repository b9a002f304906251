package preview

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeAssetStylesheet is the well-known asset key the preview page links as
// the theme stylesheet.
const themeAssetStylesheet = "stylesheet"

// Selector resolves a theme name and variant to a concrete selection.
type Selector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// ManifestSelector serves selections from a fixed set of registered
// manifests. Manifests are treated as read-only after registration.
type ManifestSelector struct {
	manifests map[string]*theme.Manifest
}

var _ Selector = (*ManifestSelector)(nil)

// NewManifestSelector registers the provided manifests. Names must be unique
// and non-empty; at least one manifest is required.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	selector := &ManifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("preview: manifest name is required")
		}
		if _, exists := selector.manifests[name]; exists {
			return nil, fmt.Errorf("preview: duplicate theme %q", name)
		}
		selector.manifests[name] = manifest
	}
	if len(selector.manifests) == 0 {
		return nil, errors.New("preview: at least one manifest is required")
	}
	return selector, nil
}

// Select resolves name and variant against the registered manifests. An empty
// name is allowed when exactly one manifest is registered.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" && len(s.manifests) == 1 {
		for registered := range s.manifests {
			name = registered
		}
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("preview: unknown theme %q", name)
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("preview: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// BuildRendererConfig merges a selection's base manifest with its variant
// into a renderer configuration. Variant tokens override base tokens;
// partials layer as fallbacks, then base templates, then variant templates.
// CSS variables are derived from the merged tokens as --<token>.
func BuildRendererConfig(selection *theme.Selection, fallbackPartials map[string]string) (*theme.RendererConfig, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, errors.New("preview: selection has no manifest")
	}
	manifest := selection.Manifest

	var variant theme.Variant
	if selection.Variant != "" {
		resolved, ok := manifest.Variants[selection.Variant]
		if !ok {
			return nil, fmt.Errorf("preview: theme %q has no variant %q", selection.Theme, selection.Variant)
		}
		variant = resolved
	}

	tokens := mergeStringMaps(manifest.Tokens, variant.Tokens)
	partials := mergeStringMaps(fallbackPartials, manifest.Templates, variant.Templates)

	var cssVars map[string]string
	if len(tokens) > 0 {
		cssVars = make(map[string]string, len(tokens))
		for name, value := range tokens {
			cssVars["--"+name] = value
		}
	}

	prefix := manifest.Assets.Prefix
	if strings.TrimSpace(variant.Assets.Prefix) != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStringMaps(manifest.Assets.Files, variant.Assets.Files)

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
	}
	cfg.AssetURL = func(name string) string {
		file, ok := files[name]
		if !ok || file == "" {
			return ""
		}
		return joinAssetPath(prefix, file)
	}
	return cfg, nil
}

// mergeStringMaps overlays the layers left to right. Later layers win; the
// result is nil when every layer is empty.
func mergeStringMaps(layers ...map[string]string) map[string]string {
	var out map[string]string
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(layer))
		}
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

func joinAssetPath(prefix, file string) string {
	if strings.TrimSpace(prefix) == "" {
		return file
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
}
