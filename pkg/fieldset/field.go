package fieldset

import (
	"github.com/goliatone/go-handoff/pkg/component"
)

// Field models one rendered input. Fields serialise directly for renderers
// and tooling that consume the built set as JSON.
type Field struct {
	// ID is freshly generated on every build; two builds of the same
	// property never share one.
	ID string `json:"id"`
	// Name is the sanitized machine name, prefix included.
	Name string `json:"name"`
	// Label is the humanized display text derived from the property name,
	// falling back to the declaration key.
	Label       string                 `json:"label,omitempty"`
	Type        component.PropertyType `json:"type,omitempty"`
	Description string                 `json:"description,omitempty"`
	Default     any                    `json:"default,omitempty"`
	// Rules shares the definition's rule set; builders do not clone it.
	Rules    *component.RuleSet `json:"rules,omitempty"`
	Children []Field            `json:"children,omitempty"`
}
