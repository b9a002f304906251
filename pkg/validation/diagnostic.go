package validation

// Diagnostic records a single schema finding. Attribute is the dotted path
// of the offending attribute (rules.content.min, items.properties, ...);
// Property carries the declaration key of the field and stays empty for
// component-level findings.
type Diagnostic struct {
	Message   string   `json:"message"`
	Attribute string   `json:"attribute"`
	Property  string   `json:"property,omitempty"`
	Severity  Severity `json:"severity,omitempty"`
}

// IsError reports whether the diagnostic presents as an error.
func (d Diagnostic) IsError() bool {
	return d.Severity.Effective() == SeverityError
}

// IsWarning reports whether the diagnostic presents as a warning.
func (d Diagnostic) IsWarning() bool {
	return d.Severity.Effective() == SeverityWarning
}

// Path joins the property key and attribute for display, e.g.
// "plans.rules.content.min". Component-level findings return the attribute
// alone.
func (d Diagnostic) Path() string {
	if d.Property == "" {
		return d.Attribute
	}
	if d.Attribute == "" {
		return d.Property
	}
	return d.Property + "." + d.Attribute
}

// Result wraps the diagnostics collected for one component so presentation
// layers can count and filter without re-walking the slice by hand.
type Result struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// OK reports whether the component produced no diagnostics at all.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Errors returns the diagnostics that present as errors.
func (r Result) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// Warnings returns the diagnostics that present as warnings.
func (r Result) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

// Count returns the number of diagnostics presenting with the severity.
func (r Result) Count(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity.Effective() == sev.Effective() {
			n++
		}
	}
	return n
}

func (r Result) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity.Effective() == sev {
			out = append(out, d)
		}
	}
	return out
}
