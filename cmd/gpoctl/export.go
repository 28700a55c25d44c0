package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gpokit/preg"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.pol> [out.json]",
		Short: "Export a registry policy file as JSON",
		Long: `The export command decodes a Registry.pol file and writes its entries
as a JSON array, to a file or to stdout.

Example:
  gpoctl export Registry.pol
  gpoctl export Registry.pol entries.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path := args[0]
	printVerbose("Decoding policy file: %s\n", path)

	entries, diags, err := preg.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}

	if len(args) < 2 {
		return printJSON(entries)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[1], err)
	}
	printInfo("Exported %d entries to %s\n", len(entries), args[1])
	return nil
}
