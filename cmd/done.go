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

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done <number>",
	Aliases: []string{"complete"},
	Short:   "Mark a task as completed",
	Long: `Mark the task with the given number (as shown by 'todowing list') as completed.

Example:
  todowing done 2`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
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
	if _, ok := taskAt(lines, index); !ok {
		return newCLIError(ui.MsgSelectedNotFound, nil)
	}

	done, err := taskStore.MarkCompleted(index)
	if err != nil {
		return newCLIError("Failed to mark task as completed.", err)
	}
	if !done {
		return newCLIError(ui.MsgAlreadyCompleted, nil)
	}

	lines, err = taskStore.List()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}
	line, _ := taskAt(lines, index)
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), taskResponse{Status: "completed", Task: models.ParseTask(index, line)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Completed: %s\n", ui.Icon("✓", ui.StyleSuccess), line)
	return nil
}
