package preview

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// DefaultManifest returns the built-in theme used when the caller registers
// no manifests of their own. It carries tokens only; asset links are left to
// themes that actually serve files.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "handoff",
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-surface": "#f6f7f9",
			"color-ink":     "#1c1e21",
			"color-accent":  "#2563eb",
			"color-warning": "#b45309",
			"color-danger":  "#b91c1c",
			"font-stack":    "'Inter', system-ui, sans-serif",
			"radius":        "6px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"color-surface": "#101214",
					"color-ink":     "#e7e9ec",
					"color-accent":  "#60a5fa",
				},
			},
		},
	}
}

type manifestDoc struct {
	Name      string                `yaml:"name"`
	Version   string                `yaml:"version"`
	Tokens    map[string]string     `yaml:"tokens"`
	Templates map[string]string     `yaml:"templates"`
	Assets    assetsDoc             `yaml:"assets"`
	Variants  map[string]variantDoc `yaml:"variants"`
}

type assetsDoc struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantDoc struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsDoc         `yaml:"assets"`
}

// ParseManifest decodes a YAML theme manifest into go-theme's model. The
// intermediate document keeps the file format stable regardless of the
// upstream struct tags.
func ParseManifest(data []byte) (*theme.Manifest, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preview: parse manifest: %w", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New("preview: manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:      doc.Name,
		Version:   doc.Version,
		Tokens:    doc.Tokens,
		Templates: doc.Templates,
		Assets:    theme.Assets{Prefix: doc.Assets.Prefix, Files: doc.Assets.Files},
	}
	if len(doc.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(doc.Variants))
		for name, variant := range doc.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}
