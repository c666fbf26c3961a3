// Package system wraps the local filesystem operations the scaffold tool
// performs. Everything runs with the invoking user's permissions; any
// filesystem error is wrapped with the offending path and returned to the
// caller untranslated.
package system

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// WriteFile writes content to a file in a single operation, creating it if
// absent and truncating it if present. Parent directories are not created;
// a missing parent surfaces as the underlying filesystem error.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	if err := os.WriteFile(path, content, perms); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes content via a temp file in the destination directory
// followed by a rename, so readers never observe a truncated file. Like
// WriteFile it does not create parent directories.
func (fs *FileSystem) WriteFileAtomic(path string, content []byte, perms os.FileMode) error {
	if err := renameio.WriteFile(path, content, perms); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing.
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// GetFileSize returns the size of a file in bytes
func (fs *FileSystem) GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}

// ReadFile reads the full contents of a file
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ContentMatches reports whether the file at path exists and its contents are
// byte-identical to expected.
func (fs *FileSystem) ContentMatches(path string, expected []byte) (bool, error) {
	exists, err := fs.FileExists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	actual, err := fs.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(actual, expected), nil
}

// RemoveFile removes a file. Removing a file that does not exist is not an
// error.
func (fs *FileSystem) RemoveFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}
