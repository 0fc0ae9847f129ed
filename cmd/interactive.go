/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"log/slog"

	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/spf13/cobra"
)

// errNotTerminal is returned when the task window is requested without a TTY.
var errNotTerminal = errors.New("the task window needs an interactive terminal")

// interactiveCmd represents the ui command
var interactiveCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the task window",
	Long: `Open the task window: the task list, an entry field and the
Add Task, Mark Completed, Edit Task, Delete Task and Exit buttons.

Keys:
  enter      add the typed task
  tab        switch between the entry field and the list
  x / space  mark the selected task completed
  e          edit the selected task
  d          delete the selected task
  q          exit (ctrl+c exits from anywhere)`,
	Aliases: []string{"interactive", "menu"},
	Args:    cobra.NoArgs,
	RunE:    runUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return newCLIError("Error: "+errNotTerminal.Error()+". Use 'todowing list' instead.", errNotTerminal)
	}

	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}

	cfg := GetConfig()
	slog.Info("task window opened", "path", taskStore.Path(), "watch", cfg.UI.Watch)
	err = ui.Run(cmd.Context(), taskStore, cfg.UI.Watch,
		ui.WithTitle(cfg.UI.Title),
		ui.WithConfirmDelete(cfg.UI.ConfirmDelete),
	)
	if err != nil {
		return newCLIError("The task window closed unexpectedly.", err)
	}
	slog.Info("task window closed")
	return nil
}
