package validation

// Severity classifies a diagnostic. Producers may leave it empty; consumers
// resolve the gap through Effective.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Effective resolves the severity used for presentation and exit codes.
// Anything that is not an explicit warning counts as an error, including the
// empty value.
func (s Severity) Effective() Severity {
	if s == SeverityWarning {
		return SeverityWarning
	}
	return SeverityError
}
