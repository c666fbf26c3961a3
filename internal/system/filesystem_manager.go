package system

import "os"

// FileWriter defines the interface for the file system operations the emitter
// performs. This allows for mocking the file system in tests.
type FileWriter interface {
	WriteFile(path string, content []byte, perms os.FileMode) error
	WriteFileAtomic(path string, content []byte, perms os.FileMode) error
	EnsureDirectory(path string, perms os.FileMode) error
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	ContentMatches(path string, expected []byte) (bool, error)
	RemoveFile(path string) error
}
