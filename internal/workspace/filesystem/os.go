// Package filesystem provides the operating system backed FileSystem implementation.
package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements the workspace FileSystem contract using operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}
