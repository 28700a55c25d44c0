package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/gpokit/preg"
)

var (
	dumpHideTypes bool
	dumpMaxBytes  int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpHideTypes, "hide-types", false, "Omit registry value types")
	cmd.Flags().IntVar(&dumpMaxBytes, "max-bytes", 0, "Truncate binary values after N bytes (0 = default)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.pol>",
		Short: "Human-readable dump of a registry policy file",
		Long: `The dump command lists every registry entry in a Registry.pol file,
grouped by key.

Example:
  gpoctl dump Registry.pol
  gpoctl dump Registry.pol --hide-types
  gpoctl dump Registry.pol --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	printVerbose("Decoding policy file: %s\n", path)
	debugLog.Debug("dump", "file", path)

	entries, diags, err := preg.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}

	opts := preg.PrintOptions{
		HideTypes:     dumpHideTypes,
		MaxValueBytes: dumpMaxBytes,
	}
	if jsonOut {
		opts.Format = preg.FormatJSON
	}
	return preg.Print(os.Stdout, entries, opts)
}
