package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.todowing).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DefaultLogPath returns where the structured log is written by default.
// Resolution order (first match wins):
// 1. XDG_STATE_HOME/todowing/todowing.log (if XDG_STATE_HOME is set)
// 2. ~/.todowing/logs/todowing.log
// 3. ./.todowing/logs/todowing.log when the home directory is unknown
func DefaultLogPath() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "todowing", "todowing.log")
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return filepath.Join(AppDirName, "logs", "todowing.log")
	}
	return filepath.Join(dir, "logs", "todowing.log")
}

// CrashLogBasePath returns the directory crash logs are kept under.
func CrashLogBasePath() string {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return AppDirName
	}
	return dir
}

// ResolveDataFile normalises a configured task file path.
func ResolveDataFile(path string) string {
	if strings.TrimSpace(path) == "" {
		return DefaultDataFile
	}
	return filepath.Clean(ExpandHome(path))
}
