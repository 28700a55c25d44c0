//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// File forces f's data to stable storage.
//
// FlushFileBuffers ensures all file data and metadata is written to disk.
func File(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
