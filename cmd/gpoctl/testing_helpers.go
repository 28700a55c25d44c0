package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/gpokit/pkg/types"
	"github.com/joshuapare/gpokit/preg"
)

// writeTestPol writes a small policy file into a temp dir and returns its path
func writeTestPol(t *testing.T) string {
	t.Helper()
	entries := []types.PolicyEntry{
		{
			KeyName:   `Software\Policies\Microsoft\Test`,
			ValueName: "Enabled",
			Type:      types.REG_DWORD,
			Data:      types.DwordValue(1),
		},
		{
			KeyName:   `Software\Policies\Microsoft\Test`,
			ValueName: "HomePage",
			Type:      types.REG_SZ,
			Data:      types.StringValue("https://example.test"),
		},
	}
	path := filepath.Join(t.TempDir(), "Registry.pol")
	if err := preg.WriteFile(path, entries); err != nil {
		t.Fatalf("failed to write test pol: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// resetFlags restores global flag state between test cases
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	dumpHideTypes = false
	dumpMaxBytes = 0
	catalogWorkers = 0
	catalogFailOn = false
}
