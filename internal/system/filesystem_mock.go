package system

import (
	"bytes"
	"os"
	"sync"
)

// MockFileSystem is an in-memory FileWriter for testing. It captures written
// files and never touches the disk.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Dirs         map[string]bool
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		Dirs:         make(map[string]bool),
	}
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WrittenFiles[path] = content
	return nil
}

// WriteFileAtomic behaves like WriteFile; the mock has no partial-write state
// to distinguish.
func (m *MockFileSystem) WriteFileAtomic(path string, content []byte, perms os.FileMode) error {
	return m.WriteFile(path, content, perms)
}

// EnsureDirectory records the directory creation.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Dirs[path] = true
	return nil
}

// FileExists reports whether a file was written.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.WrittenFiles[path]
	return ok, nil
}

// DirectoryExists reports whether a directory was recorded.
func (m *MockFileSystem) DirectoryExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Dirs[path], nil
}

// ContentMatches compares captured content against expected.
func (m *MockFileSystem) ContentMatches(path string, expected []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	actual, ok := m.WrittenFiles[path]
	if !ok {
		return false, nil
	}
	return bytes.Equal(actual, expected), nil
}

// RemoveFile drops a captured file.
func (m *MockFileSystem) RemoveFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.WrittenFiles, path)
	return nil
}
