/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/josephgoksu/TodoWing/internal/config"
	"github.com/josephgoksu/TodoWing/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Write a setting to the config file in use, or to ./.todowing/.todowing.yaml
when there is none.

Keys:
  data.file, log.path, log.level, ui.title, ui.watch, ui.confirmDelete`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.SettingKeys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configCmd is the parent config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage TodoWing configuration",
	Long: `View and change TodoWing settings. Values are resolved from flags,
TODOWING_* environment variables, the config file and built-in defaults,
in that order.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

// effectiveSettings returns the resolved value of every writable key.
func effectiveSettings() map[string]any {
	values := make(map[string]any, len(config.SettingKeys()))
	for _, key := range config.SettingKeys() {
		values[key] = viper.Get(key)
	}
	values["data.file"] = GetTaskFilePath()
	values["log.path"] = GetConfig().Log.Path
	return values
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	values := effectiveSettings()
	configFile := viper.ConfigFileUsed()

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"config_file": configFile,
			"settings":    values,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.StyleTitle.Render("TodoWing Configuration"))
	if configFile == "" {
		fmt.Fprintln(out, ui.StyleSubtle.Render("  (no config file; using defaults and environment)"))
	} else {
		fmt.Fprintln(out, ui.StyleSubtle.Render("  file: "+configFile))
	}
	fmt.Fprintln(out)
	for _, key := range config.SettingKeys() {
		fmt.Fprintf(out, "  %-17s %v\n", key+":", values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key, ok := config.CanonicalKey(args[0])
	if !ok {
		return newCLIError(fmt.Sprintf("Unknown config key: %s", args[0]), nil)
	}
	value := effectiveSettings()[key]
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{"key": key, "value": value})
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	value, err := config.ParseSetting(args[0], args[1])
	if err != nil {
		return newCLIError(err.Error(), err)
	}
	key, _ := config.CanonicalKey(args[0])

	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.ProjectConfigPath()
	}
	if err := config.WriteSetting(path, key, value); err != nil {
		return newCLIError(fmt.Sprintf("Could not update %s.", path), err)
	}
	slog.Info("config updated", "key", key, "file", path)

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{"key": key, "value": value, "file": path})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %v (%s)\n", ui.Icon("✓", ui.StyleSuccess), key, value, path)
	return nil
}
