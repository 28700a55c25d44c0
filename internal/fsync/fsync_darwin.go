//go:build darwin

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// File forces f's data to stable storage.
//
// macOS has no fdatasync; F_FULLFSYNC is the only fcntl that guarantees the
// data reaches the physical disk rather than the drive cache.
func File(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
