package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	handoff "github.com/goliatone/go-handoff"
	"github.com/goliatone/go-handoff/internal/cli"
	"github.com/goliatone/go-handoff/pkg/component"
	"github.com/goliatone/go-handoff/pkg/config"
	"github.com/goliatone/go-handoff/pkg/registry"
	"github.com/goliatone/go-handoff/pkg/validation"
)

var validateFlags struct {
	file        string
	dir         string
	interactive bool
	watch       bool
	strict      bool
	format      string
}

// promptDriver is swapped out in tests.
var promptDriver cli.PromptDriver = cli.NewSurveyDriver()

var validateCmd = &cobra.Command{
	Use:   "validate [code ...]",
	Short: "Validate component schemas",
	Long: `Validate design-component property schemas.

Validation walks each component's property tree and accumulates every
finding instead of stopping at the first:
  - envelope checks (code, title, tags, properties)
  - per-field attribute checks (type, name, description, default)
  - type-specific rules (content bounds, default object shapes, dimensions)
  - recursive descent into array item properties

Examples:
  # Validate components from the registry
  handoff validate hero-banner promo-card

  # Validate every registry component
  handoff validate

  # Pick components interactively
  handoff validate --interactive

  # Validate local schema documents
  handoff validate --file hero.json
  handoff validate --dir components/

  # Re-validate on every save
  handoff validate --dir components/ --watch

  # Warnings as errors, JSON findings for CI
  handoff validate --dir components/ --strict --format json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "component document to validate")
	validateCmd.Flags().StringVarP(&validateFlags.dir, "dir", "d", "", "directory of component documents")
	validateCmd.Flags().BoolVarP(&validateFlags.interactive, "interactive", "i", false, "pick components from the registry")
	validateCmd.Flags().BoolVar(&validateFlags.watch, "watch", false, "re-validate when files change (requires --file or --dir)")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationReport is the JSON shape of one validated component.
type validationReport struct {
	Source      string                  `json:"source,omitempty"`
	Code        string                  `json:"code,omitempty"`
	Valid       bool                    `json:"valid"`
	Diagnostics []validation.Diagnostic `json:"diagnostics,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	local := validateFlags.file != "" || validateFlags.dir != ""
	if validateFlags.watch && !local {
		return fmt.Errorf("--watch requires --file or --dir")
	}
	if local && len(args) > 0 {
		return fmt.Errorf("component codes and --file/--dir are mutually exclusive")
	}

	if local {
		return validateLocal(cmd.Context(), cfg)
	}
	return validateRegistry(cmd.Context(), cfg, args)
}

func validateLocal(ctx context.Context, cfg *config.Config) error {
	printer := newPrinter()

	if !validateFlags.watch {
		return validateFilesOnce(printer)
	}

	if validateFlags.format == "json" {
		return fmt.Errorf("--watch supports text output only")
	}

	watcher, err := cli.NewWatcher(newLogger(cfg), 0)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := func() {
		// Findings keep the watch alive; only the final exit reports them.
		if err := validateFilesOnce(printer); err != nil && !errors.Is(err, errFindings) {
			printer.Errorf("%v", err)
		}
	}
	rerun()

	var paths []string
	if validateFlags.file != "" {
		paths = append(paths, validateFlags.file)
	}
	if validateFlags.dir != "" {
		paths = append(paths, validateFlags.dir)
	}
	return watcher.Watch(ctx, paths, rerun)
}

func validateFilesOnce(printer *cli.Printer) error {
	files, err := collectDocuments()
	if err != nil {
		return err
	}

	reports := make([]validationReport, 0, len(files))
	totalErrors, totalWarnings := 0, 0

	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		doc, err := component.NewDocument(component.SourceFromFile(path), raw)
		if err != nil {
			return err
		}
		c, err := doc.Decode()
		if err != nil {
			return fmt.Errorf("decode %s: %w", doc.Location(), err)
		}

		diags := validation.ValidateComponent(c)
		errs, warns := countFindings(diags)
		totalErrors += errs
		totalWarnings += warns

		label := c.Code
		if label == "" {
			label = path
		}
		reports = append(reports, validationReport{
			Source:      path,
			Code:        c.Code,
			Valid:       errs == 0 && warns == 0,
			Diagnostics: diags,
		})
		if validateFlags.format != "json" {
			reportComponent(printer, label, diags, errs, warns)
		}
	}

	return finishValidation(printer, reports, totalErrors, totalWarnings)
}

func validateRegistry(ctx context.Context, cfg *config.Config, codes []string) error {
	printer := newPrinter()

	client, cleanup, err := handoff.NewRegistryClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	if len(codes) == 0 && validateFlags.interactive {
		codes, err = pickComponents(ctx, client)
		if err != nil {
			if errors.Is(err, cli.ErrAborted) {
				return nil
			}
			return err
		}
		if len(codes) == 0 {
			printer.Infof("No components selected.")
			return nil
		}
	}

	var components []component.Component
	if len(codes) == 0 {
		components, err = client.Components(ctx)
		if err != nil {
			return err
		}
	} else {
		for _, code := range codes {
			c, err := client.Component(ctx, code)
			if err != nil {
				return err
			}
			components = append(components, c)
		}
	}

	reports := make([]validationReport, 0, len(components))
	totalErrors, totalWarnings := 0, 0

	for _, c := range components {
		diags := validation.ValidateComponent(c)
		errs, warns := countFindings(diags)
		totalErrors += errs
		totalWarnings += warns

		reports = append(reports, validationReport{
			Code:        c.Code,
			Valid:       errs == 0 && warns == 0,
			Diagnostics: diags,
		})
		if validateFlags.format != "json" {
			reportComponent(printer, c.Code, diags, errs, warns)
		}
	}

	return finishValidation(printer, reports, totalErrors, totalWarnings)
}

func finishValidation(printer *cli.Printer, reports []validationReport, totalErrors, totalWarnings int) error {
	if validateFlags.format == "json" {
		if err := outputJSON(os.Stdout, reports); err != nil {
			return err
		}
	} else {
		printer.Summary(totalErrors, totalWarnings)
		if validateFlags.strict && totalWarnings > 0 {
			printer.Infof("  Strict mode enabled: treating warnings as errors")
		}
	}

	if totalErrors > 0 || (validateFlags.strict && totalWarnings > 0) {
		return errFindings
	}
	return nil
}

func pickComponents(ctx context.Context, client registry.Client) ([]string, error) {
	components, err := client.Components(ctx)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, nil
	}

	options := make([]string, len(components))
	for i, c := range components {
		options[i] = fmt.Sprintf("%s (%s)", c.Code, c.Title)
	}

	indices, err := promptDriver.MultiSelect(ctx, cli.SelectConfig{
		Message:  "Select components to validate",
		Options:  options,
		PageSize: 15,
	})
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(indices))
	for _, idx := range indices {
		codes = append(codes, components[idx].Code)
	}
	return codes, nil
}

func collectDocuments() ([]string, error) {
	var files []string

	if validateFlags.file != "" {
		files = append(files, validateFlags.file)
	}
	if validateFlags.dir != "" {
		for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(validateFlags.dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("list component documents: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no component documents found")
	}
	return files, nil
}

func reportComponent(printer *cli.Printer, label string, diags []validation.Diagnostic, errs, warns int) {
	if len(diags) == 0 {
		printer.Valid(label)
		return
	}
	printer.Invalid(label, errs, warns)
	printer.Diagnostics(diags)
}

func countFindings(diags []validation.Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		if d.IsWarning() {
			warnings++
		} else {
			errors++
		}
	}
	return errors, warnings
}
