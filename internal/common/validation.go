package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateScaffoldName validates a scaffold catalog name. Names are used as
// marker file names, so they must not contain path separators or dot segments.
func ValidateScaffoldName(name string) error {
	if name == "" {
		return fmt.Errorf("scaffold name cannot be empty")
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("scaffold name cannot contain path separators: %s", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("scaffold name cannot be '.' or '..': %s", name)
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_') {
			return fmt.Errorf("scaffold name contains invalid character: %s", name)
		}
	}
	return nil
}

// ValidateDestination validates a scaffold destination path. Destinations are
// always relative and must stay inside the project root after cleaning.
func ValidateDestination(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("destination cannot be empty")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("destination must be relative: %s", path)
	}
	cleaned := filepath.Clean(path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("destination escapes the project root: %s", path)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
