package main

import (
	"io"
	"log/slog"
	"os"
)

// debugLog is the process-wide debug logger. It discards everything unless
// GPOKIT_DEBUG names a writable log file.
var debugLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogging configures debug logging. Call from main() before any command
// runs. Setting GPOKIT_DEBUG=<path> appends JSON debug records to <path>;
// a failure to open the file is reported and logging stays disabled.
func initLogging() {
	path := os.Getenv("GPOKIT_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		printInfo("Warning: cannot open debug log %s: %v\n", path, err)
		return
	}
	debugLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
