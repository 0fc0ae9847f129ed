// Package config provides centralized configuration constants for TodoWing.
// All default values should be defined here to ensure a single source of truth.
package config

const (
	// AppDirName is the name of the global and project config directory.
	AppDirName = ".todowing"

	// ConfigName is the config file base name searched by viper.
	ConfigName = ".todowing"

	// EnvPrefix prefixes environment overrides, e.g. TODOWING_DATA_FILE.
	EnvPrefix = "TODOWING"
)

// Storage and UI defaults
const (
	// DefaultDataFile is the task file, relative to the working directory.
	DefaultDataFile = "todolist.txt"

	// DefaultLogLevel is the minimum level written to the log file.
	DefaultLogLevel = "info"

	// DefaultTitle is shown above the task list.
	DefaultTitle = "To-Do List"

	// DefaultConfirmDelete asks before removing a task.
	DefaultConfirmDelete = true
)

// LogLevels lists the accepted values for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}
