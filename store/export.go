package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/TodoWing/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExportFormats lists the formats accepted by Export.
var ExportFormats = []string{FormatJSON, FormatYAML, FormatTOML}

// Export writes tasks to w in the requested format. The task file itself
// is never rewritten in these formats.
func Export(w io.Writer, tasks []models.Task, format string) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	taskList := models.TaskList{
		Tasks:      tasks,
		TotalCount: len(tasks),
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(taskList); err != nil {
			return fmt.Errorf("failed to marshal tasks to json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(taskList); err != nil {
			return fmt.Errorf("failed to marshal tasks to yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml encoder: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(taskList); err != nil {
			return fmt.Errorf("failed to marshal tasks to toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s. Supported formats are %s", format, strings.Join(ExportFormats, ", "))
	}
	return nil
}
