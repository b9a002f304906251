package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/goliatone/go-handoff/pkg/validation"
)

// Printer renders validation findings as severity-colored terminal lines.
// Findings with no explicit severity print as errors, matching how the
// engine resolves effective severity.
type Printer struct {
	w    io.Writer
	fail *color.Color
	warn *color.Color
	pass *color.Color
}

// NewPrinter returns a printer writing to w. noColor strips all styling;
// when it is false the color package still auto-disables styling on
// non-terminal writers.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:    w,
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		pass: color.New(color.FgGreen),
	}
	if noColor {
		p.fail.DisableColor()
		p.warn.DisableColor()
		p.pass.DisableColor()
	}
	return p
}

// Diagnostic prints a single indented finding line.
func (p *Printer) Diagnostic(d validation.Diagnostic) {
	if d.Severity.Effective() == validation.SeverityWarning {
		fmt.Fprintf(p.w, "  %s %s: %s\n", p.warn.Sprint("⚠"), d.Path(), d.Message)
		return
	}
	fmt.Fprintf(p.w, "  %s %s: %s\n", p.fail.Sprint("✗"), d.Path(), d.Message)
}

// Diagnostics prints every finding and returns the error and warning
// counts.
func (p *Printer) Diagnostics(diags []validation.Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		p.Diagnostic(d)
		if d.IsWarning() {
			warnings++
		} else {
			errors++
		}
	}
	return errors, warnings
}

// Valid prints the per-component success line.
func (p *Printer) Valid(code string) {
	fmt.Fprintf(p.w, "%s %s: valid\n", p.pass.Sprint("✓"), code)
}

// Invalid prints the per-component failure line.
func (p *Printer) Invalid(code string, errors, warnings int) {
	fmt.Fprintf(p.w, "%s %s: %d error(s), %d warning(s)\n", p.fail.Sprint("✗"), code, errors, warnings)
}

// Summary prints the final tally across all validated components.
func (p *Printer) Summary(errors, warnings int) {
	fmt.Fprintf(p.w, "\nSummary:\n  %d error(s), %d warning(s)\n", errors, warnings)
}

// Errorf prints an operational failure, as opposed to a validation
// finding.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.fail.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Infof prints an unstyled status line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
