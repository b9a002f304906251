package openapi

import (
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/fieldset"
)

// convertible reports whether a schema can become a component. Only object
// shaped schemas qualify; bare scalars under #/components/schemas are shared
// type aliases, not components.
func convertible(src *openapi3.Schema) bool {
	return isType(src, "object") || len(src.Properties) > 0
}

func convertComponent(name string, src *openapi3.Schema) component.Component {
	comp := component.Component{
		Code:  kebabCase(name),
		Title: strings.TrimSpace(src.Title),
		Tags:  component.NewTagList(),
	}
	if comp.Title == "" {
		comp.Title = fieldset.DefaultLabeler(name)
	}
	comp.Properties = convertProperties(src)
	return comp
}

func convertProperties(src *openapi3.Schema) map[string]component.PropertyDefinition {
	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	out := make(map[string]component.PropertyDefinition, len(src.Properties))
	for name, ref := range src.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		out[name] = convertProperty(name, ref.Value, required[name])
	}
	return out
}

func convertProperty(name string, src *openapi3.Schema, required bool) component.PropertyDefinition {
	propType := propertyType(name, src)
	prop := component.PropertyDefinition{
		Type:        propType,
		Name:        humanName(name, src.Title),
		Description: src.Description,
		Default:     src.Default,
		// Imports always emit a defined flag so the engine never has to
		// guess whether requiredness was considered.
		Rules: &component.RuleSet{Required: component.NewFlag(required)},
	}

	switch propType {
	case component.PropertyTypeText, component.PropertyTypeLink, component.PropertyTypeButton:
		prop.Rules.Content = contentFromLength(src)
	case component.PropertyTypeArray:
		prop.Rules.Content = contentFromItems(src)
		prop.Items = convertItems(name, src.Items)
	case component.PropertyTypeGroup:
		prop.Items = &component.ItemsDefinition{
			Type:       component.PropertyTypeGroup,
			Properties: convertProperties(src),
		}
	}
	return prop
}

func convertItems(name string, ref *openapi3.SchemaRef) *component.ItemsDefinition {
	if ref == nil || ref.Value == nil {
		return nil
	}
	items := ref.Value
	if isType(items, "object") || len(items.Properties) > 0 {
		return &component.ItemsDefinition{
			Type:       component.PropertyTypeGroup,
			Properties: convertProperties(items),
		}
	}
	return &component.ItemsDefinition{Type: propertyType(name, items)}
}

// propertyType maps an OpenAPI schema to the closest field type. Numbers and
// booleans fall back to text; the component model has no scalar types beyond
// it.
func propertyType(name string, src *openapi3.Schema) component.PropertyType {
	switch {
	case isType(src, "object") || len(src.Properties) > 0:
		return component.PropertyTypeGroup
	case isType(src, "array"):
		return component.PropertyTypeArray
	case isType(src, "string"):
		switch src.Format {
		case "uri", "url", "uri-reference":
			return component.PropertyTypeLink
		case "binary", "byte":
			return component.PropertyTypeImage
		default:
			if imageish(name) {
				return component.PropertyTypeImage
			}
			if linkish(name) {
				return component.PropertyTypeLink
			}
			return component.PropertyTypeText
		}
	default:
		return component.PropertyTypeText
	}
}

func isType(src *openapi3.Schema, kind string) bool {
	return src != nil && src.Type != nil && src.Type.Is(kind)
}

func linkish(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "url") || strings.Contains(lower, "link") || strings.Contains(lower, "href")
}

func imageish(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "image") || strings.Contains(lower, "avatar") || strings.Contains(lower, "thumbnail")
}

func contentFromLength(src *openapi3.Schema) *component.ContentRules {
	content := &component.ContentRules{}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		content.Min = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		content.Max = &value
	}
	return content
}

func contentFromItems(src *openapi3.Schema) *component.ContentRules {
	content := &component.ContentRules{}
	if src.MinItems != 0 {
		value := int(src.MinItems)
		content.Min = &value
	}
	if src.MaxItems != nil {
		value := int(*src.MaxItems)
		content.Max = &value
	}
	return content
}

func humanName(name, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	return fieldset.DefaultLabeler(name)
}

// kebabCase turns a schema name into a component code: HeroBanner and
// hero_banner both become hero-banner.
func kebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	var prev rune
	pendingDash := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if b.Len() > 0 && (pendingDash || boundary(prev, r)) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			pendingDash = false
			prev = r
		default:
			if b.Len() > 0 {
				pendingDash = true
			}
		}
	}
	return b.String()
}

func boundary(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	default:
		return false
	}
}
