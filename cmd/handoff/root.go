package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-handoff/internal/cli"
	"github.com/goliatone/go-handoff/pkg/config"
)

var (
	// Global flags
	cfgFile       string
	registryURL   string
	registryToken string
	noCache       bool
	verbose       bool
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "handoff",
	Short: "Handoff - design component schema toolkit",
	Long: `Handoff validates design-component property schemas before they reach
production surfaces.

It talks to a component registry and walks every property tree, reporting
missing attributes, misshaped defaults and constraint violations in a
single pass:
  - Recursive schema validation with accumulated findings
  - Form-field projection of validated components
  - Themeable HTML previews
  - Component bootstrapping from OpenAPI documents

For more information, visit: https://github.com/goliatone/go-handoff`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errFindings signals that validation findings were already printed and
// only the exit code still has to reflect them.
var errFindings = errors.New("validation findings")

// Execute runs the root command. Exit codes: 0 clean, 1 validation
// findings, 2 operational failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default $HOME/.handoff.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&registryURL, "registry", "", "registry base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&registryToken, "token", "", "registry bearer token (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the local component cache")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadConfig resolves the effective configuration: file when present,
// HANDOFF_* environment, then flag overrides on top.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".handoff.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, err
	}

	if registryURL != "" {
		cfg.Registry.URL = registryURL
	}
	if registryToken != "" {
		cfg.Registry.Token = registryToken
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return cli.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
}

func newPrinter() *cli.Printer {
	return cli.NewPrinter(os.Stdout, noColor)
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
