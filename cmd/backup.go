package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/spf13/cobra"
)

// backupSuffix is appended to the task file name when no destination is given.
const backupSuffix = ".bak"

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup [destination]",
	Short: "Copy the task file",
	Long: `Copy the task file as-is. Without a destination the copy is written
next to the task file with a .bak suffix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return newCLIError("Could not open the task file.", err)
	}

	dest := taskStore.Path() + backupSuffix
	if len(args) == 1 {
		dest = args[0]
	}
	if samePath(dest, taskStore.Path()) {
		return newCLIError("The backup destination must differ from the task file.", nil)
	}

	if err := taskStore.Backup(dest); err != nil {
		return newCLIError(fmt.Sprintf("Backup to %s failed.", dest), err)
	}
	lines, err := taskStore.List()
	if err != nil {
		return newCLIError("Failed to read tasks.", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), backupResponse{
			Status:      "saved",
			Source:      taskStore.Path(),
			Destination: dest,
			Tasks:       len(lines),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel("Backup saved",
		fmt.Sprintf("%d task(s) copied from %s to %s", len(lines), taskStore.Path(), dest)))
	return nil
}

// samePath reports whether a and b name the same file once cleaned and made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
