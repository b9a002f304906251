package component

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean that tracks whether it was ever written and whether the
// written value was actually a boolean. Upstream payloads carry required
// flags as strings or numbers often enough that decoding must not fail on
// them; the validator reports the problem instead.
type Flag struct {
	value   bool
	defined bool
	valid   bool
}

// NewFlag returns a defined, valid flag holding v.
func NewFlag(v bool) *Flag {
	return &Flag{value: v, defined: true, valid: true}
}

// Defined reports whether the attribute appeared in the source document,
// regardless of whether its value was usable.
func (f *Flag) Defined() bool {
	return f != nil && f.defined
}

// Bool returns the flag value. ok is false when the flag was absent or held
// something other than a boolean.
func (f *Flag) Bool() (value, ok bool) {
	if f == nil || !f.valid {
		return false, false
	}
	return f.value, true
}

// IsTrue reports whether the flag holds an explicit true.
func (f *Flag) IsTrue() bool {
	v, ok := f.Bool()
	return ok && v
}

// UnmarshalJSON records presence and keeps non-boolean input as an invalid
// flag rather than failing the surrounding document.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag{defined: true}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var v bool
	if err := json.Unmarshal(trimmed, &v); err == nil {
		f.value = v
		f.valid = true
	}
	return nil
}

// MarshalJSON writes the boolean when one is held and null otherwise.
func (f *Flag) MarshalJSON() ([]byte, error) {
	if v, ok := f.Bool(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML-authored documents.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	*f = Flag{defined: true}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!bool" {
		var v bool
		if err := value.Decode(&v); err == nil {
			f.value = v
			f.valid = true
		}
	}
	return nil
}

// MarshalYAML writes the boolean when one is held and null otherwise.
func (f *Flag) MarshalYAML() (any, error) {
	if v, ok := f.Bool(); ok {
		return v, nil
	}
	return nil, nil
}

// TagList is the component tag collection with the same lenient contract as
// Flag: scalars and objects in place of the expected sequence survive
// decoding as a defined-but-invalid list.
type TagList struct {
	values  []string
	defined bool
	valid   bool
}

// NewTagList returns a defined, valid list holding the supplied tags.
func NewTagList(tags ...string) TagList {
	return TagList{values: append([]string(nil), tags...), defined: true, valid: true}
}

// Defined reports whether the tags attribute appeared in the document.
func (t TagList) Defined() bool {
	return t.defined
}

// Valid reports whether the attribute held a well-formed sequence. An empty
// sequence is valid.
func (t TagList) Valid() bool {
	return t.valid
}

// Values returns a copy of the tag values. Non-string entries are rendered
// with their default formatting; presence checks never depend on entry types.
func (t TagList) Values() []string {
	if len(t.values) == 0 {
		return nil
	}
	return append([]string(nil), t.values...)
}

// UnmarshalJSON accepts any JSON array and flags everything else invalid.
func (t *TagList) UnmarshalJSON(data []byte) error {
	*t = TagList{defined: true}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	var raw []any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil
	}
	t.valid = true
	t.values = stringifyValues(raw)
	return nil
}

// MarshalJSON writes the sequence when one is held and null otherwise.
func (t TagList) MarshalJSON() ([]byte, error) {
	if !t.defined || !t.valid {
		return []byte("null"), nil
	}
	if t.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.values)
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML-authored documents.
func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	*t = TagList{defined: true}
	if value.Kind != yaml.SequenceNode {
		return nil
	}
	var raw []any
	if err := value.Decode(&raw); err != nil {
		return nil
	}
	t.valid = true
	t.values = stringifyValues(raw)
	return nil
}

// MarshalYAML writes the sequence when one is held and null otherwise.
func (t TagList) MarshalYAML() (any, error) {
	if !t.defined || !t.valid {
		return nil, nil
	}
	return t.values, nil
}

func stringifyValues(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(entry))
	}
	return out
}
