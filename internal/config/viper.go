// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level" validate:"required"`
		Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File          string `mapstructure:"file" yaml:"file" validate:"required"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"data" yaml:"data"`

	Analytics struct {
		RollingWindow int `mapstructure:"rolling_window" yaml:"rolling_window" validate:"min=1"`
		TopN          int `mapstructure:"top_n" yaml:"top_n" validate:"min=1"`
	} `mapstructure:"analytics" yaml:"analytics"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budgeting-analysis")
	v.AddConfigPath(".budgeting-analysis")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.file", "data/purchases.xlsx")
	v.SetDefault("data.backup_enabled", true)

	// Analytics defaults
	v.SetDefault("analytics.rolling_window", 3)
	v.SetDefault("analytics.top_n", 10)

	// Categories defaults: empty means the built-in registry
	v.SetDefault("categories.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// The log level names are logrus's own, so validate it there
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration values: %w", err)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
