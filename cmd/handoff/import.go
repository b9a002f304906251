package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-handoff/pkg/openapi"
	"github.com/goliatone/go-handoff/pkg/validation"
)

var importFlags struct {
	outDir string
}

var importCmd = &cobra.Command{
	Use:   "import <openapi-document>",
	Short: "Bootstrap component definitions from an OpenAPI document",
	Long: `Convert the object schemas of an OpenAPI 3 document into component
definitions, one JSON document per schema.

Generated components flow through the schema engine like any other input,
so missing descriptions or defaults surface as findings right away.

Examples:
  # Write component documents next to the API definition
  handoff import api.yaml --out-dir components/`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importFlags.outDir, "out-dir", "components", "directory for generated component documents")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	printer := newPrinter()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if !openapi.Detect(raw) {
		return fmt.Errorf("%q does not look like an OpenAPI document", path)
	}

	components, err := openapi.New().Import(cmd.Context(), raw)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(importFlags.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	totalErrors, totalWarnings := 0, 0
	for _, c := range components {
		diags := validation.ValidateComponent(c)
		errs, warns := countFindings(diags)
		totalErrors += errs
		totalWarnings += warns

		out := filepath.Join(importFlags.outDir, c.Code+".json")
		doc, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.Code, err)
		}
		if err := os.WriteFile(out, append(doc, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %q: %w", out, err)
		}

		printer.Infof("Wrote %s", out)
		reportComponent(printer, c.Code, diags, errs, warns)
	}

	printer.Summary(totalErrors, totalWarnings)
	if totalErrors > 0 {
		return errFindings
	}
	return nil
}
