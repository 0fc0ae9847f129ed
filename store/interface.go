package store

import "github.com/josephgoksu/TodoWing/models"

// TaskStore defines the interface for task persistence.
// Tasks are addressed by their position in the stored sequence; every call
// re-reads the backing file, so indices are only meaningful against the
// most recent List.
type TaskStore interface {
	// Add appends a new pending task with the given description.
	// The description is written as-is.
	Add(description string) error

	// List returns the stored lines in order, each trimmed of surrounding
	// whitespace. A missing or empty file yields an empty slice, not an error.
	List() ([]string, error)

	// Tasks returns List decoded into tasks.
	Tasks() ([]models.Task, error)

	// MarkCompleted flips a pending task to completed. It reports false,
	// leaving the file untouched, when index is out of range or the task
	// is not pending.
	MarkCompleted(index int) (bool, error)

	// Delete removes the task at index. It reports false for an
	// out-of-range index.
	Delete(index int) (bool, error)

	// Edit replaces the description at index while keeping its status
	// token. It reports false for an out-of-range index.
	Edit(index int, description string) (bool, error)

	// Backup copies the current task file to destinationPath.
	Backup(destinationPath string) error

	// Path returns the location of the backing file.
	Path() string
}
