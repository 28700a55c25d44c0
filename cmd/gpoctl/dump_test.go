package main

import (
	"strings"
	"testing"
)

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name        string
		wantJSON    bool
		hideTypes   bool
		wantContain []string
	}{
		{
			name:        "dump text",
			wantContain: []string{`Software\Policies\Microsoft\Test`, "Enabled", "REG_DWORD", "https://example.test"},
		},
		{
			name:        "dump hides types",
			hideTypes:   true,
			wantContain: []string{"Enabled = 1"},
		},
		{
			name:        "dump as JSON",
			wantJSON:    true,
			wantContain: []string{`"key"`, `"REG_SZ"`, "https://example.test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			dumpHideTypes = tt.hideTypes

			path := writeTestPol(t)
			out, err := captureOutput(t, func() error {
				return runDump([]string{path})
			})
			if err != nil {
				t.Fatalf("runDump failed: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDumpCommandMissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runDump([]string{"does-not-exist.pol"})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
