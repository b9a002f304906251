package component

// PropertyType enumerates the configurable field kinds a component property
// may declare. Anything outside this set is reported by the validator.
type PropertyType string

const (
	PropertyTypeText   PropertyType = "text"
	PropertyTypeArray  PropertyType = "array"
	PropertyTypeImage  PropertyType = "image"
	PropertyTypeLink   PropertyType = "link"
	PropertyTypeButton PropertyType = "button"
	PropertyTypeGroup  PropertyType = "group"
)

// KnownPropertyTypes returns the supported property types in declaration
// order. Callers must not mutate the returned slice.
func KnownPropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeText,
		PropertyTypeArray,
		PropertyTypeImage,
		PropertyTypeLink,
		PropertyTypeButton,
		PropertyTypeGroup,
	}
}

// Valid reports whether the type is part of the supported enumeration.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeText, PropertyTypeArray, PropertyTypeImage,
		PropertyTypeLink, PropertyTypeButton, PropertyTypeGroup:
		return true
	default:
		return false
	}
}

// PropertyDefinition describes one configurable property of a component.
// Empty strings and nil pointers mean the author omitted the attribute; the
// model records what arrived and nothing else.
type PropertyDefinition struct {
	Type        PropertyType     `json:"type,omitempty" yaml:"type,omitempty"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any              `json:"default,omitempty" yaml:"default,omitempty"`
	Rules       *RuleSet         `json:"rules,omitempty" yaml:"rules,omitempty"`
	Items       *ItemsDefinition `json:"items,omitempty" yaml:"items,omitempty"`
}

// DefaultObject returns the default value as a string-keyed object. ok is
// false when no default is set or the default is not object-shaped.
func (p PropertyDefinition) DefaultObject() (map[string]any, bool) {
	obj, ok := p.Default.(map[string]any)
	return obj, ok
}

// RuleSet carries the validation rules attached to a property. The required
// flag keeps its tri-state so downstream checks can tell "explicitly false"
// apart from "never set".
type RuleSet struct {
	Required   *Flag           `json:"required,omitempty" yaml:"required,omitempty"`
	Content    *ContentRules   `json:"content,omitempty" yaml:"content,omitempty"`
	Dimensions *DimensionRules `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// ContentRules bounds the length (text) or entry count (array) of a value.
type ContentRules struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// DimensionRules constrains image sizes in pixels.
type DimensionRules struct {
	Min *DimensionBounds `json:"min,omitempty" yaml:"min,omitempty"`
}

// DimensionBounds holds a width/height pair.
type DimensionBounds struct {
	Width  *int `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int `json:"height,omitempty" yaml:"height,omitempty"`
}

// ItemsDefinition describes the entries of an array property (and supplies
// the nested fields of a group). Properties is the only recursive edge in
// the model: each entry is itself a full PropertyDefinition.
type ItemsDefinition struct {
	Type       PropertyType                  `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]PropertyDefinition `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Component is a published handoff component: a machine code, a display
// title, optional tags, and the property map that drives form generation.
type Component struct {
	Code       string                        `json:"code,omitempty" yaml:"code,omitempty"`
	Title      string                        `json:"title,omitempty" yaml:"title,omitempty"`
	Tags       TagList                       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Properties map[string]PropertyDefinition `json:"properties,omitempty" yaml:"properties,omitempty"`
}
