//go:build !linux && !freebsd && !darwin && !windows

// Package fsync forces written policy files to stable storage before the
// handle is released, so a crash cannot leave a half-written .pol behind the
// Group Policy loader's back.
package fsync

import "os"

// File forces f's data to stable storage.
func File(f *os.File) error {
	return f.Sync()
}
