/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/TodoWing/internal/config"
	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/josephgoksu/TodoWing/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// dataFile overrides data.file for a single invocation.
	dataFile string
	// jsonOutput switches command output to JSON.
	jsonOutput bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todowing",
	Short: "TodoWing keeps a plain-text to-do list.",
	Long: `TodoWing manages a to-do list stored as one task per line in a text file.

Run it without arguments on a terminal to open the task window, or use the
subcommands to add, list, complete, edit and delete tasks from scripts.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetCommand(cmd.CommandPath())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return cmd.Help()
		}
		return runUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer closeLog()

	if err := rootCmd.Execute(); err != nil {
		var ce *cliError
		if errors.As(err, &ce) {
			HandleFatalError(ce.msg, ce.err)
			return
		}
		HandleFatalError(fmt.Sprintf("Error: %v", err), err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)
	logger.SetVersion(GetVersion())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todowing/.todowing.yaml or $HOME/.todowing.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "task file (overrides data.file)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print machine-readable JSON")
}

// GetTaskFilePath returns the resolved path of the task file.
func GetTaskFilePath() string {
	return config.ResolveDataFile(GetConfig().Data.File)
}

// GetStore returns the task store for the configured file.
func GetStore() (*store.FileTaskStore, error) {
	path := GetTaskFilePath()
	logger.SetTaskFile(path)
	return store.NewFileTaskStore(afero.NewOsFs(), path), nil
}
