//go:build linux || freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// File forces f's data to stable storage.
//
// Linux/FreeBSD: fdatasync() provides sufficient guarantees; metadata-only
// updates (atime) need not hit the disk for a policy file to be durable.
func File(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
