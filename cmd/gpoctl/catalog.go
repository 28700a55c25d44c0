package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gpokit/admx"
	"github.com/joshuapare/gpokit/pkg/types"
)

var (
	catalogWorkers int
	catalogFailOn  bool
)

func init() {
	cmd := newCatalogCmd()
	cmd.Flags().IntVar(&catalogWorkers, "workers", 0, "Definition files parsed concurrently (0 = CPU count)")
	cmd.Flags().BoolVar(&catalogFailOn, "fail-on-diagnostics", false, "Exit non-zero when any diagnostic is reported")
	rootCmd.AddCommand(cmd)
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog <admx-dir> [out.json]",
		Short: "Consolidate an ADMX/ADML directory into a policy catalog",
		Long: `The catalog command scans a directory of administrative templates,
resolves localized strings and category paths, and prints a summary of the
resulting catalog. With an output path the full catalog is written as JSON.

Example:
  gpoctl catalog C:/Windows/PolicyDefinitions
  gpoctl catalog ./PolicyDefinitions catalog.json
  gpoctl catalog ./PolicyDefinitions --fail-on-diagnostics`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(args)
		},
	}
	return cmd
}

func runCatalog(args []string) error {
	root := args[0]
	printVerbose("Scanning template directory: %s\n", root)

	parser := admx.NewParser(admx.Options{Workers: catalogWorkers, Logger: debugLog})
	catalog, err := parser.Build(root)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	for _, d := range catalog.Diagnostics {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}

	if len(args) > 1 {
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[1], err)
		}
		printInfo("Wrote catalog to %s\n", args[1])
	}

	if jsonOut {
		if err := printJSON(catalog.Stats); err != nil {
			return err
		}
	} else {
		printStats(catalog.Stats, len(catalog.Diagnostics))
	}

	if catalogFailOn && len(catalog.Diagnostics) > 0 {
		return fmt.Errorf("catalog built with %d diagnostic(s)", len(catalog.Diagnostics))
	}
	return nil
}

func printStats(s types.CatalogStats, diagCount int) {
	printInfo("Policies:    %d (machine %d, user %d, both %d)\n",
		s.PolicyCount, s.MachineCount, s.UserCount, s.BothCount)
	printInfo("Categories:  %d\n", s.CategoryCount)
	printInfo("Diagnostics: %d\n", diagCount)
}
