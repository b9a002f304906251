package fieldset_test

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/fieldset"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestBuilder_Build(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))

	rules := &component.RuleSet{Required: component.NewFlag(true)}
	got := b.Build("cta-label", component.PropertyDefinition{
		Type:        component.PropertyTypeText,
		Name:        "Call to action",
		Description: "Button copy",
		Default:     "Go",
		Rules:       rules,
	}, "hero")

	if got.ID != "f-1" {
		t.Fatalf("id mismatch: %s", got.ID)
	}
	if got.Name != "hero_cta_label" {
		t.Fatalf("name mismatch: %s", got.Name)
	}
	if got.Label != "Call To Action" {
		t.Fatalf("label mismatch: %s", got.Label)
	}
	if got.Type != component.PropertyTypeText || got.Description != "Button copy" || got.Default != "Go" {
		t.Fatalf("passthrough mismatch: %+v", got)
	}
	if got.Rules != rules {
		t.Fatalf("rules pointer should be shared, not cloned")
	}
	if got.Children != nil {
		t.Fatalf("scalar fields have no children: %+v", got.Children)
	}
}

func TestBuilder_LabelFallsBackToKey(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))
	got := b.Build("seo-title", component.PropertyDefinition{Type: component.PropertyTypeText}, "")
	if got.Label != "Seo Title" {
		t.Fatalf("label mismatch: %s", got.Label)
	}
	if got.Name != "seo_title" {
		t.Fatalf("name mismatch: %s", got.Name)
	}
}

func TestBuilder_FreshIDsPerBuild(t *testing.T) {
	b := fieldset.New()
	p := component.PropertyDefinition{Type: component.PropertyTypeText, Name: "Body"}

	first := b.Build("body", p, "")
	second := b.Build("body", p, "")

	if first.ID == "" || second.ID == "" {
		t.Fatalf("ids must not be empty: %q %q", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("every build generates a fresh id, got %q twice", first.ID)
	}
}

func TestBuilder_ChildrenForArrays(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))

	p := component.PropertyDefinition{
		Type: component.PropertyTypeArray,
		Name: "Slides",
		Items: &component.ItemsDefinition{
			Type: component.PropertyTypeGroup,
			Properties: map[string]component.PropertyDefinition{
				"caption": {Type: component.PropertyTypeText, Name: "Caption"},
				"asset": {
					Type: component.PropertyTypeGroup,
					Name: "Asset",
					Items: &component.ItemsDefinition{
						Properties: map[string]component.PropertyDefinition{
							"src": {Type: component.PropertyTypeText, Name: "Src"},
						},
					},
				},
			},
		},
	}

	got := b.Build("slides", p, "")
	if len(got.Children) != 2 {
		t.Fatalf("expected 2 children, got %+v", got.Children)
	}
	// Children sort by declaration key.
	if got.Children[0].Name != "slides_asset" || got.Children[1].Name != "slides_caption" {
		t.Fatalf("child names mismatch: %q %q", got.Children[0].Name, got.Children[1].Name)
	}
	nested := got.Children[0].Children
	if len(nested) != 1 || nested[0].Name != "slides_asset_src" {
		t.Fatalf("grandchild mismatch: %+v", nested)
	}
}

func TestBuilder_NoChildrenForScalarWithItems(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))
	got := b.Build("body", component.PropertyDefinition{
		Type: component.PropertyTypeText,
		Items: &component.ItemsDefinition{
			Properties: map[string]component.PropertyDefinition{"x": {}},
		},
	}, "")
	if got.Children != nil {
		t.Fatalf("items on scalar types are ignored: %+v", got.Children)
	}
}

func TestBuilder_GarbageInGarbageOut(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))

	got := b.Build("Weird Key!!", component.PropertyDefinition{Type: "carousel"}, "")
	if got.Name != "weird_key" {
		t.Fatalf("name mismatch: %s", got.Name)
	}
	if got.Type != "carousel" {
		t.Fatalf("unknown types pass through: %s", got.Type)
	}
	if got.Label != "Weird Key!!" {
		t.Fatalf("labels keep non-separator runes: %s", got.Label)
	}
}

func TestBuilder_BuildComponentSortsByKey(t *testing.T) {
	b := fieldset.New(fieldset.WithIDGenerator(sequentialIDs("f")))
	fields := b.BuildComponent(component.Component{
		Properties: map[string]component.PropertyDefinition{
			"zeta":  {Type: component.PropertyTypeText, Name: "Zeta"},
			"alpha": {Type: component.PropertyTypeText, Name: "Alpha"},
		},
	})

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %+v", fields)
	}
	if fields[0].Name != "alpha" || fields[1].Name != "zeta" {
		t.Fatalf("fields must sort by key: %q %q", fields[0].Name, fields[1].Name)
	}

	if got := b.BuildComponent(component.Component{}); got != nil {
		t.Fatalf("nil property map builds a nil set, got %+v", got)
	}
}

func TestBuilder_CustomLabeler(t *testing.T) {
	b := fieldset.New(
		fieldset.WithIDGenerator(sequentialIDs("f")),
		fieldset.WithLabeler(func(name string) string { return "«" + name + "»" }),
	)
	got := b.Build("title", component.PropertyDefinition{Type: component.PropertyTypeText, Name: "Title"}, "")
	if got.Label != "«Title»" {
		t.Fatalf("custom labeler ignored: %s", got.Label)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "cta-label", want: "cta_label"},
		{in: "Hero Image 2", want: "hero_image_2"},
		{in: "  spaced  ", want: "spaced"},
		{in: "__already_clean__", want: "already_clean"},
		{in: "UPPER", want: "upper"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		if got := fieldset.SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "cta_label", want: "Cta Label"},
		{in: "ctaLabel", want: "Cta Label"},
		{in: "seo-title", want: "Seo Title"},
		{in: "publish date", want: "Publish Date"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		if got := fieldset.DefaultLabeler(tc.in); got != tc.want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
