package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gpokit/pkg/types"
	"github.com/joshuapare/gpokit/preg"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <entries.json> <out.pol>",
		Short: "Build a registry policy file from JSON entries",
		Long: `The build command reads a JSON array of registry entries (the format
produced by export) and encodes it as a Registry.pol file. Entry data may
use loose forms: hex strings for binary values, newline-separated strings
for multi-string values.

Example:
  gpoctl build entries.json Registry.pol`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
	return cmd
}

func runBuild(args []string) error {
	inPath, outPath := args[0], args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	var entries []types.PolicyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", inPath, err)
	}

	printVerbose("Encoding %d entries\n", len(entries))
	if err := preg.WriteFile(outPath, entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("Wrote %d entries to %s\n", len(entries), outPath)
	return nil
}
