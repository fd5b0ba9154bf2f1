package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory at path (and any missing parents) if it
// does not already exist. An existing regular file at path is an error.
func EnsureDir(path string, mode os.FileMode) error {
	if path == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, mode); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// ExpandHome replaces a leading ~ in path with the current user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[1:])
}
