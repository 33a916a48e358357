//go:build unix

package serialization

import (
	"os"
	"syscall"
)

// mmapFile maps size bytes of f read-only (Unix implementation).
//
// The mapping is private: decoding copies every element out of it and
// ReadFile unmaps right after, so nothing needs to share pages with other
// writers of the file.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	return syscall.Mmap(
		int(f.Fd()), //nolint:gosec // G115: file descriptor fits in int
		0,
		int(size), //nolint:gosec // G115: checked against the minimum by ReadFile
		syscall.PROT_READ,
		syscall.MAP_PRIVATE,
	)
}

func munmapFile(data []byte) error {
	return syscall.Munmap(data)
}
