/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete the task with the given number. A confirmation prompt is shown
unless --yes is given or ui.confirmDelete is false.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := parseTaskNumber(args[0])
	if err != nil {
		return err
	}
	logger.SetLastInput(args[0])

	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}
	lines, err := taskStore.List()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}
	line, ok := taskAt(lines, index)
	if !ok {
		return newCLIError(ui.MsgSelectedNotFound, nil)
	}

	if !deleteYes && !isJSON() && GetConfig().UI.ConfirmDelete {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", index+1, line)
		if !confirmOrAbort(cmd, ui.MsgConfirmDelete+" [y/N]: ") {
			return nil
		}
	}

	deleted, err := taskStore.Delete(index)
	if err != nil {
		return newCLIError("Failed to delete task.", err)
	}
	if !deleted {
		return newCLIError(ui.MsgSelectedNotFound, nil)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), taskResponse{Status: "deleted", Task: models.ParseTask(index, line)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted: %s\n", ui.Icon("✓", ui.StyleSuccess), line)
	return nil
}
