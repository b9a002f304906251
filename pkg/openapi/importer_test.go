package openapi_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/openapi"
	"github.com/goliatone/go-handoff/pkg/validation"
)

const apiDocument = `{
	"openapi": "3.0.3",
	"info": {"title": "Design API", "version": "1.0.0"},
	"paths": {},
	"components": {
		"schemas": {
			"HeroBanner": {
				"type": "object",
				"title": "Hero Banner",
				"required": ["headline"],
				"properties": {
					"headline": {
						"type": "string",
						"description": "Main headline",
						"default": "Welcome",
						"minLength": 1,
						"maxLength": 80
					},
					"ctaUrl": {"type": "string", "format": "uri"},
					"heroImage": {"type": "string", "format": "binary"},
					"slides": {
						"type": "array",
						"minItems": 1,
						"maxItems": 6,
						"items": {
							"type": "object",
							"properties": {
								"caption": {"type": "string", "title": "Caption"}
							}
						}
					},
					"layout": {
						"type": "object",
						"properties": {
							"variant": {"type": "string"}
						}
					}
				}
			},
			"Email": {"type": "string", "format": "email"}
		}
	}
}`

func importComponents(t *testing.T, data string) []component.Component {
	t.Helper()
	components, err := openapi.New().Import(context.Background(), []byte(data))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return components
}

func TestImporter_ConvertsObjectSchemas(t *testing.T) {
	components := importComponents(t, apiDocument)

	if len(components) != 1 {
		t.Fatalf("expected 1 component (scalar schemas skipped), got %d", len(components))
	}
	comp := components[0]
	if comp.Code != "hero-banner" {
		t.Fatalf("code mismatch: %q", comp.Code)
	}
	if comp.Title != "Hero Banner" {
		t.Fatalf("title mismatch: %q", comp.Title)
	}
	if !comp.Tags.Defined() || !comp.Tags.Valid() {
		t.Fatalf("imports must emit defined tags")
	}
	if len(comp.Properties) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(comp.Properties))
	}
}

func TestImporter_MapsPropertyTypes(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	cases := map[string]component.PropertyType{
		"headline":  component.PropertyTypeText,
		"ctaUrl":    component.PropertyTypeLink,
		"heroImage": component.PropertyTypeImage,
		"slides":    component.PropertyTypeArray,
		"layout":    component.PropertyTypeGroup,
	}
	for name, want := range cases {
		prop, ok := comp.Properties[name]
		if !ok {
			t.Fatalf("property %s missing", name)
		}
		if prop.Type != want {
			t.Errorf("%s: type %q, want %q", name, prop.Type, want)
		}
	}
}

func TestImporter_RequiredFlagsAlwaysDefined(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	headline := comp.Properties["headline"]
	if headline.Rules == nil {
		t.Fatalf("headline rules missing")
	}
	if value, ok := headline.Rules.Required.Bool(); !ok || !value {
		t.Fatalf("headline must import as required, got ok=%v value=%v", ok, value)
	}

	cta := comp.Properties["ctaUrl"]
	if value, ok := cta.Rules.Required.Bool(); !ok || value {
		t.Fatalf("optional properties must import an explicit false, got ok=%v value=%v", ok, value)
	}
}

func TestImporter_LengthAndItemBounds(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	headline := comp.Properties["headline"]
	if headline.Rules.Content == nil || headline.Rules.Content.Min == nil || *headline.Rules.Content.Min != 1 {
		t.Fatalf("headline min length lost: %+v", headline.Rules.Content)
	}
	if headline.Rules.Content.Max == nil || *headline.Rules.Content.Max != 80 {
		t.Fatalf("headline max length lost: %+v", headline.Rules.Content)
	}
	if headline.Default != "Welcome" {
		t.Fatalf("default lost: %v", headline.Default)
	}
	if headline.Description != "Main headline" {
		t.Fatalf("description lost: %q", headline.Description)
	}

	slides := comp.Properties["slides"]
	if slides.Rules.Content == nil || slides.Rules.Content.Min == nil || *slides.Rules.Content.Min != 1 {
		t.Fatalf("slides min items lost: %+v", slides.Rules.Content)
	}
	if slides.Rules.Content.Max == nil || *slides.Rules.Content.Max != 6 {
		t.Fatalf("slides max items lost: %+v", slides.Rules.Content)
	}
}

func TestImporter_NestedSchemas(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	slides := comp.Properties["slides"]
	if slides.Items == nil || slides.Items.Type != component.PropertyTypeGroup {
		t.Fatalf("array items must import as a group: %+v", slides.Items)
	}
	caption, ok := slides.Items.Properties["caption"]
	if !ok {
		t.Fatalf("nested caption missing: %+v", slides.Items.Properties)
	}
	if caption.Name != "Caption" {
		t.Fatalf("nested title lost: %q", caption.Name)
	}

	layout := comp.Properties["layout"]
	if layout.Items == nil || len(layout.Items.Properties) != 1 {
		t.Fatalf("group children missing: %+v", layout.Items)
	}
}

func TestImporter_GeneratedNamesAreHuman(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	if got := comp.Properties["ctaUrl"].Name; got != "Cta Url" {
		t.Fatalf("derived name mismatch: %q", got)
	}
}

func TestImporter_OutputSurvivesTheEngine(t *testing.T) {
	comp := importComponents(t, apiDocument)[0]

	for _, diag := range validation.ValidateComponent(comp) {
		if diag.Attribute == "type" || diag.Attribute == "tags" || diag.Attribute == "name" {
			t.Errorf("import produced a structural finding: %+v", diag)
		}
	}
}

func TestImporter_Rejects(t *testing.T) {
	importer := openapi.New()
	ctx := context.Background()

	if _, err := importer.Import(ctx, nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := importer.Import(ctx, []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{}}`)); err == nil {
		t.Fatalf("expected error for schema-less document")
	}
	if _, err := importer.Import(ctx, []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{},"components":{"schemas":{"Email":{"type":"string"}}}}`)); err == nil {
		t.Fatalf("expected error when nothing is convertible")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"json openapi", `{"openapi": "3.0.3"}`, true},
		{"json swagger", `{"swagger": "2.0"}`, true},
		{"yaml openapi", "openapi: 3.0.3\ninfo: {}\n", true},
		{"component document", `{"code": "hero", "title": "Hero"}`, false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := openapi.Detect([]byte(tc.raw)); got != tc.want {
				t.Fatalf("Detect(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
