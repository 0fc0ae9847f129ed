package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit <number> <text>",
	Aliases: []string{"update"},
	Short:   "Change the text of a task",
	Long: `Replace the description of a task. Its completion status is kept.

Example:
  todowing edit 1 Buy oat milk`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := parseTaskNumber(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
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
	edited, err := taskStore.Edit(index, text)
	if err != nil {
		return newCLIError("Failed to edit task.", err)
	}
	if !edited {
		return newCLIError(ui.MsgEditNotFound, nil)
	}

	lines, err := taskStore.List()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}
	line, _ := taskAt(lines, index)
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), taskResponse{Status: "updated", Task: models.ParseTask(index, line)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Updated: %s\n", ui.Icon("✓", ui.StyleSuccess), line)
	return nil
}
