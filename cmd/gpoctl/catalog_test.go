package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testADMX = `<?xml version="1.0" encoding="utf-8"?>
<policyDefinitions>
  <categories>
    <category name="Root" displayName="$(string.Root)"/>
  </categories>
  <policies>
    <policy name="TestPolicy" class="Machine" displayName="$(string.TestPolicy)"
            key="Software\Policies\Test" valueName="Enabled">
      <parentCategory ref="Root"/>
    </policy>
  </policies>
</policyDefinitions>`

const testADML = `<?xml version="1.0" encoding="utf-8"?>
<policyDefinitionResources>
  <resources>
    <stringTable>
      <string id="Root">Root Category</string>
      <string id="TestPolicy">A test policy</string>
    </stringTable>
  </resources>
</policyDefinitionResources>`

func writeTestTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test.admx"), []byte(testADMX), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "test.adml"), []byte(testADML), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCatalogCommand(t *testing.T) {
	resetFlags()
	dir := writeTestTemplates(t)

	out, err := captureOutput(t, func() error {
		return runCatalog([]string{dir})
	})
	if err != nil {
		t.Fatalf("runCatalog failed: %v", err)
	}
	for _, want := range []string{"Policies:    1", "Categories:  1", "Diagnostics: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogCommandWritesJSON(t *testing.T) {
	resetFlags()
	quiet = true
	dir := writeTestTemplates(t)
	outPath := filepath.Join(t.TempDir(), "catalog.json")

	if _, err := captureOutput(t, func() error {
		return runCatalog([]string{dir, outPath})
	}); err != nil {
		t.Fatalf("runCatalog failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var catalog struct {
		Policies []struct {
			Name string `json:"name"`
		}
	}
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("catalog output is not valid JSON: %v", err)
	}
	if len(catalog.Policies) != 1 || catalog.Policies[0].Name != "TestPolicy" {
		t.Fatalf("unexpected policies in catalog output: %+v", catalog.Policies)
	}
}

func TestCatalogCommandFailOnDiagnostics(t *testing.T) {
	resetFlags()
	quiet = true
	catalogFailOn = true

	dir := writeTestTemplates(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.admx"), []byte("<oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := captureOutput(t, func() error {
		return runCatalog([]string{dir})
	})
	if err == nil || !strings.Contains(err.Error(), "diagnostic") {
		t.Fatalf("expected diagnostics failure, got %v", err)
	}
}
