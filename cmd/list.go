/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/models"
	"github.com/spf13/cobra"
)

var listTable bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `Print every task in file order. The numbers shown are the ones the
done, edit and delete commands expect.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listTable, "table", "t", false, "render tasks as a table")
}

func runList(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}
	tasks, err := taskStore.Tasks()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}

	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, models.TaskList{Tasks: tasks, TotalCount: len(tasks)})
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet.")
		return nil
	}
	if listTable {
		fmt.Fprint(out, ui.TaskTable(tasks, 60).Render())
		return nil
	}
	for _, task := range tasks {
		fmt.Fprintf(out, "%d. %s\n", task.Index+1, task)
	}
	return nil
}
