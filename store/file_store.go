package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/TodoWing/models"
	"github.com/spf13/afero"
)

const (
	// DefaultDataFile is used when no path is configured.
	DefaultDataFile = "todolist.txt"
	tempSuffix      = ".tmp"
)

// FileTaskStore implements the TaskStore interface on top of a plain text
// file holding one task per line.
type FileTaskStore struct {
	fs       afero.Fs
	filePath string
}

// NewFileTaskStore creates a store for filePath on fs. A nil fs means the
// operating system filesystem; an empty path means DefaultDataFile.
func NewFileTaskStore(fs afero.Fs, filePath string) *FileTaskStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if filePath == "" {
		filePath = DefaultDataFile
	}
	return &FileTaskStore{fs: fs, filePath: filePath}
}

// Path returns the location of the task file.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Fs returns the filesystem the store writes to.
func (s *FileTaskStore) Fs() afero.Fs {
	return s.fs
}

func (s *FileTaskStore) ensureDir() error {
	dir := filepath.Dir(s.filePath)
	if dir == "." || dir == "" {
		return nil
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Add appends "[ ] description" as a new line.
func (s *FileTaskStore) Add(description string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := s.fs.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", s.filePath, err)
	}
	line := models.FormatLine(models.StatusPending, description) + "\n"
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append task to %s: %w", s.filePath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.filePath, err)
	}
	slog.Debug("task added", "path", s.filePath, "description", description)
	return nil
}

// List reads every line of the task file.
func (s *FileTaskStore) List() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read task file %s: %w", s.filePath, err)
	}
	return splitLines(string(data)), nil
}

// splitLines mirrors line-oriented reading: a trailing newline does not
// produce an extra element, interior blank lines are kept.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	parts := strings.Split(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.TrimSpace(p))
	}
	return lines
}

// Tasks returns the stored lines decoded into tasks.
func (s *FileTaskStore) Tasks() ([]models.Task, error) {
	lines, err := s.List()
	if err != nil {
		return nil, err
	}
	return models.ParseTasks(lines), nil
}

// rewrite replaces the file contents with lines. It writes a temporary
// sibling first and renames it over the task file.
func (s *FileTaskStore) rewrite(lines []string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	tempFilePath := s.filePath + tempSuffix
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary task file %s: %w", tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tempFilePath, s.filePath, err)
	}
	return nil
}

func inBounds(index int, lines []string) bool {
	return index >= 0 && index < len(lines)
}

// MarkCompleted flips the status token of a pending task to completed.
func (s *FileTaskStore) MarkCompleted(index int) (bool, error) {
	lines, err := s.List()
	if err != nil {
		return false, err
	}
	if !inBounds(index, lines) {
		return false, nil
	}
	task := models.ParseTask(index, lines[index])
	if task.Status != models.StatusPending {
		return false, nil
	}
	lines[index] = models.FormatLine(models.StatusCompleted, task.Description)
	if err := s.rewrite(lines); err != nil {
		return false, fmt.Errorf("failed to mark task %d completed: %w", index, err)
	}
	slog.Debug("task completed", "path", s.filePath, "index", index)
	return true, nil
}

// Delete removes the line at index.
func (s *FileTaskStore) Delete(index int) (bool, error) {
	lines, err := s.List()
	if err != nil {
		return false, err
	}
	if !inBounds(index, lines) {
		return false, nil
	}
	lines = append(lines[:index], lines[index+1:]...)
	if err := s.rewrite(lines); err != nil {
		return false, fmt.Errorf("failed to delete task %d: %w", index, err)
	}
	slog.Debug("task deleted", "path", s.filePath, "index", index)
	return true, nil
}

// Edit replaces the description at index, keeping its status token.
func (s *FileTaskStore) Edit(index int, description string) (bool, error) {
	lines, err := s.List()
	if err != nil {
		return false, err
	}
	if !inBounds(index, lines) {
		return false, nil
	}
	task := models.ParseTask(index, lines[index])
	status := task.Status
	if status == "" {
		// Untokenised lines keep whatever precedes the first space.
		status = models.Status(strings.SplitN(lines[index], " ", 2)[0])
	}
	lines[index] = models.FormatLine(status, description)
	if err := s.rewrite(lines); err != nil {
		return false, fmt.Errorf("failed to edit task %d: %w", index, err)
	}
	slog.Debug("task edited", "path", s.filePath, "index", index)
	return true, nil
}

// Backup copies the current task file to destinationPath. A store without
// a file yet produces an empty backup.
func (s *FileTaskStore) Backup(destinationPath string) error {
	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read task file %s: %w", s.filePath, err)
	}
	if dir := filepath.Dir(destinationPath); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, destinationPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", destinationPath, err)
	}
	slog.Debug("task file backed up", "path", s.filePath, "destination", destinationPath)
	return nil
}

// IndexOf returns the position of the first line equal to selected, or -1.
// Duplicate lines always resolve to the earliest one.
func IndexOf(lines []string, selected string) int {
	for i, line := range lines {
		if line == selected {
			return i
		}
	}
	return -1
}
