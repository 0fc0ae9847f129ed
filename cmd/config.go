package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/TodoWing/internal/config"
	"github.com/josephgoksu/TodoWing/internal/logger"
	"github.com/josephgoksu/TodoWing/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate caches struct info for config validation
var validate *validator.Validate

// logCloser is the open log file, if any.
var logCloser io.Closer

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// bindFlags ties persistent flags to their viper keys. Bindings are made on
// every initialisation so they survive viper.Reset.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	_ = viper.BindPFlag("data.file", flags.Lookup("file"))
}

func setDefaults() {
	viper.SetDefault("data.file", config.DefaultDataFile)
	viper.SetDefault("log.path", config.DefaultLogPath())
	viper.SetDefault("log.level", config.DefaultLogLevel)
	viper.SetDefault("ui.title", config.DefaultTitle)
	viper.SetDefault("ui.watch", false)
	viper.SetDefault("ui.confirmDelete", config.DefaultConfirmDelete)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. A missing file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., TODOWING_DATA_FILE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	bindFlags()
	setDefaults()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(config.ConfigName)
		if _, err := os.Stat(config.AppDirName); err == nil {
			// Project-specific config directory takes priority
			viper.AddConfigPath(config.AppDirName)
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && cfgFileFlag != "":
			// A config file named on the command line must exist.
			HandleFatalError(fmt.Sprintf("Error: Specified config file not found: %s", cfgFileFlag), err)
			return
		case missing:
			if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		default:
			HandleFatalError(fmt.Sprintf("Error reading config file %s.", viper.ConfigFileUsed()), err)
			return
		}
	}

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		HandleFatalError("Error unmarshaling config.", err)
		return
	}
	GlobalAppConfig.Log.Path = config.ExpandHome(GlobalAppConfig.Log.Path)
	if GlobalAppConfig.Log.Path != "" && !filepath.IsAbs(GlobalAppConfig.Log.Path) {
		if abs, err := filepath.Abs(GlobalAppConfig.Log.Path); err == nil {
			GlobalAppConfig.Log.Path = abs
		}
	}
	GlobalAppConfig.Log.Level = strings.ToLower(GlobalAppConfig.Log.Level)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		HandleFatalError(fmt.Sprintf("Configuration validation error: %s", err), err)
		return
	}

	openLog()
	logger.SetBasePath(config.CrashLogBasePath())
}

// openLog points slog at the configured log file. A log file that cannot
// be opened is reported and logging is discarded.
func openLog() {
	closeLog()
	closer, err := logger.Setup(GlobalAppConfig.Log.Path, GlobalAppConfig.Log.Level)
	if err != nil {
		if GlobalAppConfig.Verbose {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
		closer, _ = logger.Setup("", GlobalAppConfig.Log.Level)
	}
	logCloser = closer
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
