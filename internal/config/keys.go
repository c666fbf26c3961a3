package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Emit behavior
	KeyProjectRoot  = "PROJECT_ROOT"  // Directory scaffold destinations resolve against
	KeyAtomicWrites = "ATOMIC_WRITES" // "true" to write via temp file + rename
	KeyCreateDirs   = "CREATE_DIRS"   // "true" to create missing parent directories
	KeyFileMode     = "FILE_MODE"     // Octal permissions for emitted files

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyProjectRoot:   ".",
	KeyAtomicWrites:  "false",
	KeyCreateDirs:    "false",
	KeyFileMode:      "0644",
	KeyConfigVersion: "1",
}
