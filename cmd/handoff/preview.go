package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	handoff "github.com/goliatone/go-handoff"
	"github.com/goliatone/go-handoff/pkg/fieldset"
	"github.com/goliatone/go-handoff/pkg/preview"
	"github.com/goliatone/go-handoff/pkg/validation"
	theme "github.com/goliatone/go-theme"
)

var previewFlags struct {
	theme    string
	variant  string
	manifest string
	out      string
	force    bool
}

var previewCmd = &cobra.Command{
	Use:   "preview <code>",
	Short: "Render an HTML preview of a component",
	Long: `Render a themeable HTML preview of a registry component.

The component is validated first and its findings are embedded in the
page; components with errors are not rendered unless --force is given.

Examples:
  # Preview to stdout
  handoff preview hero-banner

  # Dark variant written to a file
  handoff preview hero-banner --variant dark --out preview.html

  # Custom theme manifest
  handoff preview hero-banner --manifest acme.yaml --theme acme`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewFlags.theme, "theme", "", "theme name (defaults to the built-in theme)")
	previewCmd.Flags().StringVar(&previewFlags.variant, "variant", "", "theme variant, e.g. dark")
	previewCmd.Flags().StringVar(&previewFlags.manifest, "manifest", "", "YAML theme manifest to load alongside the built-in theme")
	previewCmd.Flags().StringVarP(&previewFlags.out, "out", "o", "", "output file (default stdout)")
	previewCmd.Flags().BoolVar(&previewFlags.force, "force", false, "render even when validation reports errors")
}

func runPreview(cmd *cobra.Command, args []string) error {
	code := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	printer := newPrinter()

	client, cleanup, err := handoff.NewRegistryClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := client.Component(cmd.Context(), code)
	if err != nil {
		return err
	}

	diags := validation.ValidateComponent(c)
	errs, warns := countFindings(diags)
	if errs > 0 && !previewFlags.force {
		reportComponent(printer, c.Code, diags, errs, warns)
		printer.Errorf("refusing to render a component with errors (use --force)")
		return errFindings
	}

	themeCfg, err := resolveTheme()
	if err != nil {
		return err
	}

	renderer, err := preview.New()
	if err != nil {
		return err
	}
	page, err := renderer.Render(cmd.Context(), preview.Input{
		Component:   c,
		Fields:      fieldset.New().BuildComponent(c),
		Diagnostics: diags,
		Theme:       themeCfg,
	})
	if err != nil {
		return err
	}

	if previewFlags.out == "" {
		_, err = os.Stdout.Write(page)
		return err
	}
	if err := os.WriteFile(previewFlags.out, page, 0o644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	printer.Infof("Preview written to %s", previewFlags.out)
	return nil
}

func resolveTheme() (*theme.RendererConfig, error) {
	manifests := []*theme.Manifest{preview.DefaultManifest()}
	if previewFlags.manifest != "" {
		raw, err := os.ReadFile(previewFlags.manifest)
		if err != nil {
			return nil, fmt.Errorf("read theme manifest: %w", err)
		}
		m, err := preview.ParseManifest(raw)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}

	selector, err := preview.NewManifestSelector(manifests...)
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(previewFlags.theme, previewFlags.variant)
	if err != nil {
		return nil, err
	}
	return preview.BuildRendererConfig(selection, nil)
}
