package preg

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/gpokit/pkg/types"
)

const (
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// PrintOptions controls printing behavior.
type PrintOptions struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// HideTypes suppresses REG_* type names (text format only).
	// Default: false (types shown)
	HideTypes bool

	// MaxValueBytes limits how many bytes of binary values to display.
	// Longer values are truncated with an ellipsis. Set to -1 for no limit.
	// Default: 32
	MaxValueBytes int
}

// Print writes entries to w. Consecutive entries under the same key are
// grouped in text format; JSON format emits the entries array as-is.
func Print(w io.Writer, entries []types.PolicyEntry, opts PrintOptions) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.MaxValueBytes == 0 {
		opts.MaxValueBytes = DefaultMaxValueBytes
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatText:
		return printText(w, entries, opts)
	default:
		return fmt.Errorf("preg: unknown print format %q", opts.Format)
	}
}

func printText(w io.Writer, entries []types.PolicyEntry, opts PrintOptions) error {
	lastKey := ""
	for _, e := range entries {
		if e.KeyName != lastKey {
			if _, err := fmt.Fprintf(w, "%s\n", e.KeyName); err != nil {
				return err
			}
			lastKey = e.KeyName
		}
		name := e.ValueName
		if name == "" {
			name = "(default)"
		}
		var line string
		if opts.HideTypes {
			line = fmt.Sprintf("  %s = %s", name, renderValue(e.Data, opts.MaxValueBytes))
		} else {
			line = fmt.Sprintf("  %s (%s) = %s", name, e.Type, renderValue(e.Data, opts.MaxValueBytes))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderValue(v types.PolicyValue, maxBytes int) string {
	switch v.Kind {
	case types.ValueNone:
		return "(none)"
	case types.ValueDword:
		return fmt.Sprintf("%d", v.Dword)
	case types.ValueQword:
		return fmt.Sprintf("%d", v.Qword)
	case types.ValueString:
		return fmt.Sprintf("%q", v.Str)
	case types.ValueMultiString:
		quoted := make([]string, len(v.Multi))
		for i, s := range v.Multi {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case types.ValueRaw:
		b := v.Raw
		suffix := ""
		if maxBytes >= 0 && len(b) > maxBytes {
			b = b[:maxBytes]
			suffix = fmt.Sprintf("... (%d bytes)", len(v.Raw))
		}
		return hex.EncodeToString(b) + suffix
	default:
		return "(invalid)"
	}
}
