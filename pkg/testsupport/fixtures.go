// Package testsupport provides shared fixtures and golden-file helpers for
// the handoff test suites.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-handoff/pkg/component"
)

// ValidComponent returns a component that passes every schema check: a text
// property, an image property and an array of grouped item properties, all
// fully populated. Tests mutate copies of it to provoke single findings.
func ValidComponent() component.Component {
	return component.Component{
		Code:  "hero-banner",
		Title: "Hero Banner",
		Tags:  component.NewTagList("marketing"),
		Properties: map[string]component.PropertyDefinition{
			"headline": {
				Type:        component.PropertyTypeText,
				Name:        "Headline",
				Description: "Main headline shown above the fold",
				Default:     "Welcome",
				Rules: &component.RuleSet{
					Required: component.NewFlag(true),
					Content:  &component.ContentRules{Min: intp(1), Max: intp(80)},
				},
			},
			"background": {
				Type:        component.PropertyTypeImage,
				Name:        "Background Image",
				Description: "Full-bleed image behind the headline",
				Default:     map[string]any{"src": "/media/hero.jpg", "alt": "City skyline"},
				Rules: &component.RuleSet{
					Required: component.NewFlag(false),
					Dimensions: &component.DimensionRules{
						Min: &component.DimensionBounds{Width: intp(1200), Height: intp(600)},
					},
				},
			},
			"slides": {
				Type:        component.PropertyTypeArray,
				Name:        "Slides",
				Description: "Rotating slides shown under the headline",
				Rules: &component.RuleSet{
					Required: component.NewFlag(false),
					Content:  &component.ContentRules{Min: intp(1), Max: intp(6)},
				},
				Items: &component.ItemsDefinition{
					Type: component.PropertyTypeGroup,
					Properties: map[string]component.PropertyDefinition{
						"caption": {
							Type:        component.PropertyTypeText,
							Name:        "Caption",
							Description: "Short caption under the slide",
							Default:     "Slide caption",
							Rules: &component.RuleSet{
								Required: component.NewFlag(false),
								Content:  &component.ContentRules{Min: intp(1), Max: intp(140)},
							},
						},
					},
				},
			},
		},
	}
}

// LoadComponent reads a component document fixture and decodes it, failing
// the test on any error.
func LoadComponent(t *testing.T, path string) component.Component {
	t.Helper()

	c, err := LoadComponentFromPath(path)
	if err != nil {
		t.Fatalf("load component: %v", err)
	}
	return c
}

// LoadComponentFromPath returns a decoded component without requiring a
// testing.T, for callers wiring fixtures in setup functions.
func LoadComponentFromPath(path string) (component.Component, error) {
	if path == "" {
		return component.Component{}, errors.New("testsupport: component path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return component.Component{}, fmt.Errorf("testsupport: read component: %w", err)
	}
	doc, err := component.NewDocument(component.SourceFromFile(path), data)
	if err != nil {
		return component.Component{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	c, err := doc.Decode()
	if err != nil {
		return component.Component{}, fmt.Errorf("testsupport: decode component: %w", err)
	}
	return c, nil
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

func intp(v int) *int {
	return &v
}
