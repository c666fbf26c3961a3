package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Markers records which scaffolds have been emitted. One marker file per
// scaffold name, kept outside the project tree so emitted files stay clean.
type Markers struct {
	dir string
}

// NewMarkers creates a new Markers instance. An empty dir selects the default
// location under the user's home directory.
func NewMarkers(dir string) *Markers {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".local", "testscaffold")
	}

	return &Markers{
		dir: dir,
	}
}

// validateMarkerName ensures the name is safe to use as a file name
func validateMarkerName(name string) error {
	if name == "" {
		return fmt.Errorf("marker name cannot be empty")
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("marker name cannot contain path separators: %s", name)
	}
	if name == ".." || name == "." {
		return fmt.Errorf("marker name cannot be '.' or '..': %s", name)
	}
	return nil
}

// Create creates a marker file (idempotent)
func (m *Markers) Create(name string) error {
	if err := validateMarkerName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("failed to create marker directory: %w", err)
	}

	markerPath := filepath.Join(m.dir, name)
	file, err := os.Create(markerPath)
	if err != nil {
		return fmt.Errorf("failed to create marker file: %w", err)
	}
	defer file.Close()

	return nil
}

// Exists checks if a marker file exists
// Returns (exists, error) where error indicates a problem checking (e.g., permission denied)
func (m *Markers) Exists(name string) (bool, error) {
	if err := validateMarkerName(name); err != nil {
		return false, err
	}

	markerPath := filepath.Join(m.dir, name)
	_, err := os.Stat(markerPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check marker existence: %w", err)
}

// Remove deletes a marker file. Removing a missing marker is not an error.
func (m *Markers) Remove(name string) error {
	if err := validateMarkerName(name); err != nil {
		return err
	}

	markerPath := filepath.Join(m.dir, name)
	err := os.Remove(markerPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RemoveAll removes all marker files
func (m *Markers) RemoveAll() error {
	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		return nil
	}

	return os.RemoveAll(m.dir)
}

// List returns all marker names
func (m *Markers) List() ([]string, error) {
	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read marker directory: %w", err)
	}

	var markers []string
	for _, entry := range entries {
		if !entry.IsDir() {
			markers = append(markers, entry.Name())
		}
	}

	return markers, nil
}

// Dir returns the marker directory path
func (m *Markers) Dir() string {
	return m.dir
}
