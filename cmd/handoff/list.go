package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	handoff "github.com/goliatone/go-handoff"
)

var listFlags struct {
	format string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry components",
	Long: `List the components published in the registry.

Examples:
  # Table of code, title and tags
  handoff list

  # Raw component documents for tooling
  handoff list --format json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFlags.format, "format", "text", "output format: text, json")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, cleanup, err := handoff.NewRegistryClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	components, err := client.Components(cmd.Context())
	if err != nil {
		return err
	}

	if listFlags.format == "json" {
		return outputJSON(os.Stdout, components)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTITLE\tTAGS")
	for _, c := range components {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Code, c.Title, strings.Join(c.Tags.Values(), ", "))
	}
	return w.Flush()
}
