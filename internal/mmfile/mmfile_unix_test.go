//go:build unix

package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMapAndCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pol")
	content := []byte("PReg\x01\x00\x00\x00")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("mapped data = % X, want % X", data, content)
	}
	if err := cleanup(); err != nil {
		t.Errorf("cleanup: %v", err)
	}
	// Double cleanup must be a no-op.
	if err := cleanup(); err != nil {
		t.Errorf("second cleanup: %v", err)
	}
}

func TestMapEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pol")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty data, got %d bytes", len(data))
	}
	if err := cleanup(); err != nil {
		t.Errorf("cleanup: %v", err)
	}
}

func TestMapMissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.pol"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
