package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/josephgoksu/TodoWing/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as JSON, YAML or TOML",
	Long: `Write the task list in a structured format. The task file itself is
not changed.

Examples:
  todowing export
  todowing export --format yaml --output tasks.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", store.FormatJSON, "output format ("+strings.Join(store.ExportFormats, ", ")+")")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return store.ExportFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}
	tasks, err := taskStore.Tasks()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}

	if exportOutput == "" {
		if err := store.Export(cmd.OutOrStdout(), tasks, exportFormat); err != nil {
			return newCLIError(fmt.Sprintf("Export failed: %v", err), err)
		}
		return nil
	}

	fs := taskStore.Fs()
	f, err := fs.Create(exportOutput)
	if err != nil {
		return newCLIError(fmt.Sprintf("Could not create %s.", exportOutput), err)
	}
	if err := writeExport(f, tasks, exportFormat); err != nil {
		if rmErr := fs.Remove(exportOutput); rmErr != nil {
			LogError("failed to remove partial export", rmErr)
		}
		return newCLIError(fmt.Sprintf("Export failed: %v", err), err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), exportResponse{
			Status: "exported",
			Format: strings.ToLower(exportFormat),
			Output: exportOutput,
			Tasks:  len(tasks),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d task(s) to %s\n", ui.Icon("✓", ui.StyleSuccess), len(tasks), exportOutput)
	return nil
}

func writeExport(f afero.File, tasks []models.Task, format string) (err error) {
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return store.Export(f, tasks, format)
}
