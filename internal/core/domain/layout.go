package domain

import (
	"os"
	"path/filepath"
)

const (
	// SemaDirName is the name of the user-scoped metadata directory.
	SemaDirName = ".sema"

	// RegistryFileName is the name of the server registry document.
	RegistryFileName = "servers.json"

	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = "config.yaml"

	// LogsDirName is the name of the daemon log directory.
	LogsDirName = "logs"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// SemaDir returns the user-scoped metadata directory, ~/.sema.
// Falls back to a relative .sema directory when the home directory
// cannot be determined.
func SemaDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return SemaDirName
	}
	return filepath.Join(home, SemaDirName)
}

// RegistryPath returns the path of the server registry document.
func RegistryPath() string {
	return filepath.Join(SemaDir(), RegistryFileName)
}

// ConfigPath returns the path of the optional settings file.
func ConfigPath() string {
	return filepath.Join(SemaDir(), ConfigFileName)
}

// LogsDir returns the daemon log directory.
func LogsDir() string {
	return filepath.Join(SemaDir(), LogsDirName)
}
