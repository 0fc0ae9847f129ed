/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Long: `Append a new, not yet completed task to the end of the list.

Examples:
  todowing add Buy milk
  todowing add "Call the plumber about the sink"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	logger.SetLastInput(text)
	if strings.TrimSpace(text) == "" {
		return newCLIError(ui.MsgEnterTask, nil)
	}
	if err := models.ValidateInput(text); err != nil {
		return newCLIError(fmt.Sprintf("Invalid task: %v", err), err)
	}

	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}
	if err := taskStore.Add(text); err != nil {
		return newCLIError("Failed to add task.", err)
	}

	lines, err := taskStore.List()
	if err != nil {
		return newCLIError("Task added, but the list could not be read back.", err)
	}
	task := models.ParseTask(len(lines)-1, models.FormatLine(models.StatusPending, text))

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), taskResponse{Status: "added", Task: task})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Added: %s\n", ui.Icon("✓", ui.StyleSuccess), task)
	return nil
}
