package validation

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-handoff/pkg/component"
)

// Validate runs ValidateComponent and wraps the findings in a Result.
func Validate(c component.Component) Result {
	return Result{Diagnostics: ValidateComponent(c)}
}

// ValidateComponent checks the component envelope, then every property
// definition in the component's property map. Field diagnostics are
// concatenated onto the envelope's own, so one flat list describes the whole
// component. A nil result means the component is valid.
func ValidateComponent(c component.Component) []Diagnostic {
	col := collector{}

	if c.Code == "" {
		col.fail("code", msgComponentCodeMissing)
	}
	if c.Title == "" {
		col.fail("title", msgComponentTitleMissing)
	}
	if !c.Tags.Defined() || !c.Tags.Valid() {
		col.fail("tags", msgComponentTagsInvalid)
	}
	if c.Properties == nil {
		col.fail("properties", msgComponentPropsMissing)
		return col.items
	}

	// Key-sorted walk keeps the diagnostic order reproducible run to run.
	for _, key := range sortedKeys(c.Properties) {
		col.items = append(col.items, ValidateField(key, c.Properties[key])...)
	}
	return col.items
}

// ValidateField checks a single property definition declared under key.
// Checks run in a fixed order and all of them accumulate; only a missing
// rules object stops early, because everything after it reads the rules.
func ValidateField(key string, p component.PropertyDefinition) []Diagnostic {
	col := collector{property: key}

	switch {
	case p.Type == "":
		col.fail("type", msgTypeMissing)
	case !p.Type.Valid():
		col.fail("type", fmt.Sprintf(fmtTypeUnknown, string(p.Type)))
	}

	if p.Description == "" {
		col.warn("description", msgDescriptionMissing)
	}
	if p.Name == "" {
		col.fail("name", msgNameMissing)
	}
	// Arrays take their content from item definitions, so a missing default
	// is only worth flagging for the other types.
	if p.Default == nil && p.Type != component.PropertyTypeArray {
		col.warn("default", msgDefaultMissing)
	}

	if p.Rules == nil {
		col.warn("rules", msgRulesMissing)
		return col.items
	}

	if _, ok := p.Rules.Required.Bool(); !ok {
		col.fail("rules.required", msgRequiredNotBoolean)
	}

	if content := p.Rules.Content; content != nil {
		if content.Min == nil && p.Rules.Required.IsTrue() {
			col.warn("rules.content.min", msgContentMinRequired)
		}
		if content.Max == nil {
			col.warn("rules.content.max", msgContentMaxMissing)
		}
	}

	switch p.Type {
	case component.PropertyTypeText:
		if p.Rules.Content == nil {
			col.fail("rules.content", msgTextContentMissing)
		}
	case component.PropertyTypeArray:
		validateArray(&col, p)
	case component.PropertyTypeLink:
		if obj, ok := p.DefaultObject(); !ok {
			col.fail("default", msgLinkDefaultObject)
		} else {
			if missingKey(obj, "url") {
				col.fail("default.url", msgLinkDefaultURL)
			}
			if missingKey(obj, "text") {
				col.fail("default.text", msgLinkDefaultText)
			}
		}
	case component.PropertyTypeButton:
		if obj, ok := p.DefaultObject(); !ok {
			col.fail("default", msgButtonDefaultObject)
		} else {
			if missingKey(obj, "url") {
				col.fail("default.url", msgButtonDefaultURL)
			}
			if missingKey(obj, "label") {
				col.fail("default.label", msgButtonDefaultLabel)
			}
		}
	case component.PropertyTypeImage:
		validateImage(&col, p)
	}

	return col.items
}

func validateArray(col *collector, p component.PropertyDefinition) {
	if content := p.Rules.Content; content == nil {
		col.fail("rules.content", msgArrayContentMissing)
	} else {
		if content.Min == nil || *content.Min < 1 {
			col.fail("rules.content.min", msgArrayContentMin)
		}
		if content.Max == nil || *content.Max < 1 {
			col.fail("rules.content.max", msgArrayContentMax)
		}
	}

	if p.Items == nil {
		col.fail("items", msgArrayItemsMissing)
		return
	}

	switch {
	case p.Items.Type == "":
		col.fail("items.type", msgArrayItemsTypeMissing)
	case !p.Items.Type.Valid():
		col.fail("items.type", fmt.Sprintf(fmtItemsTypeUnknown, string(p.Items.Type)))
	}

	if p.Items.Properties == nil {
		col.fail("items.properties", msgArrayItemsPropsEmpty)
		return
	}

	// Nested definitions report under their own declaration key, flattened
	// into the parent's list.
	for _, childKey := range sortedKeys(p.Items.Properties) {
		col.items = append(col.items, ValidateField(childKey, p.Items.Properties[childKey])...)
	}
}

func validateImage(col *collector, p component.PropertyDefinition) {
	if obj, ok := p.DefaultObject(); !ok {
		col.fail("default", msgImageDefaultObject)
	} else {
		if missingKey(obj, "src") {
			col.fail("default.src", msgImageDefaultSrc)
		}
		if missingKey(obj, "alt") {
			col.fail("default.alt", msgImageDefaultAlt)
		}
	}

	dims := p.Rules.Dimensions
	switch {
	case dims == nil:
		col.fail("rules.dimensions", msgImageDimsMissing)
	case dims.Min == nil:
		col.fail("rules.dimensions.min", msgImageDimsMinEmpty)
	default:
		if dims.Min.Width == nil {
			col.fail("rules.dimensions.min.width", msgImageDimsMinWidth)
		}
		if dims.Min.Height == nil {
			col.fail("rules.dimensions.min.height", msgImageDimsMinHeight)
		}
	}
}

func sortedKeys(props map[string]component.PropertyDefinition) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// missingKey treats absent, null, and empty-string values the same way; the
// object keys checked here are string-typed by contract.
func missingKey(obj map[string]any, key string) bool {
	v, ok := obj[key]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}

// collector accumulates diagnostics for one scope. Errors rely on the
// unset-severity default; only warnings tag themselves.
type collector struct {
	property string
	items    []Diagnostic
}

func (c *collector) fail(attribute, message string) {
	c.items = append(c.items, Diagnostic{
		Message:   message,
		Attribute: attribute,
		Property:  c.property,
	})
}

func (c *collector) warn(attribute, message string) {
	c.items = append(c.items, Diagnostic{
		Message:   message,
		Attribute: attribute,
		Property:  c.property,
		Severity:  SeverityWarning,
	})
}
