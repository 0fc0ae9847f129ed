/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log" validate:"required"`
	UI      UIConfig   `mapstructure:"ui"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// LogConfig controls the structured log file.
type LogConfig struct {
	Path  string `mapstructure:"path" validate:"required"`
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// UIConfig holds settings for the interactive shell
type UIConfig struct {
	Title         string `mapstructure:"title" validate:"omitempty,max=80"`
	Watch         bool   `mapstructure:"watch"`
	ConfirmDelete bool   `mapstructure:"confirmDelete"`
}
