// Package loader reads layer files into the tree consumed by
// config.FromTree. Tables decode to map[string]any, arrays to []any,
// strings to string and integers to int64.
package loader

import "os"

// FileSystem reads whole files. Tests substitute an in-memory version.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
