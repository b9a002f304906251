package preview

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-handoff/pkg/fieldset"
)

// buildContext assembles the template context. Values are plain maps and
// native scalars so pongo2 prints them without formatting surprises.
func buildContext(input Input) pongo2.Context {
	errorCount, warningCount := 0, 0
	diagnostics := make([]map[string]any, 0, len(input.Diagnostics))
	for _, diag := range input.Diagnostics {
		if diag.IsWarning() {
			warningCount++
		} else {
			errorCount++
		}
		diagnostics = append(diagnostics, map[string]any{
			"path":     diag.Path(),
			"message":  diag.Message,
			"severity": string(diag.Severity.Effective()),
		})
	}

	return pongo2.Context{
		"component": map[string]any{
			"code":  input.Component.Code,
			"title": input.Component.Title,
			"tags":  input.Component.Tags.Values(),
		},
		"fields":      flattenFields(input.Fields, 0, nil),
		"diagnostics": diagnostics,
		"counts": map[string]any{
			"errors":   errorCount,
			"warnings": warningCount,
		},
		"theme": themeContext(input.Theme),
	}
}

// flattenFields linearises the field tree. Nesting is expressed through a
// depth value rather than recursion so templates stay flat.
func flattenFields(fields []fieldset.Field, depth int, rows []map[string]any) []map[string]any {
	for _, field := range fields {
		required := false
		if field.Rules != nil {
			if value, ok := field.Rules.Required.Bool(); ok {
				required = value
			}
		}
		rows = append(rows, map[string]any{
			"id":          field.ID,
			"name":        field.Name,
			"label":       field.Label,
			"type":        string(field.Type),
			"description": sanitizeDescription(field.Description),
			"default":     defaultString(field.Default),
			"required":    required,
			"depth":       depth,
			"container":   len(field.Children) > 0,
		})
		rows = flattenFields(field.Children, depth+1, rows)
	}
	return rows
}

// defaultString renders a default value for an input placeholder. Composite
// defaults are shown as JSON.
func defaultString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
		return fmt.Sprint(v)
	}
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	ctx := map[string]any{"name": "", "variant": ""}
	if cfg == nil {
		return ctx
	}
	ctx["name"] = cfg.Theme
	ctx["variant"] = cfg.Variant
	if tokens := copyStringMap(cfg.Tokens); tokens != nil {
		ctx["tokens"] = tokens
	}
	if partials := copyStringMap(cfg.Partials); partials != nil {
		ctx["partials"] = partials
	}
	if style := cssVarsStyle(cfg.CSSVars); style != "" {
		ctx["css_vars_style"] = style
	}
	if cfg.AssetURL != nil {
		if stylesheet := strings.TrimSpace(cfg.AssetURL(themeAssetStylesheet)); stylesheet != "" {
			ctx["stylesheet"] = stylesheet
		}
	}
	return ctx
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
