// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/categories"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/config"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/fileutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/filter"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/ledger"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/report"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/rewriter"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Period string
	Search string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budgeting-analysis",
		Short: "A CLI tool to analyze a purchase spreadsheet: spending metrics, trends and rankings.",
		Long: `budgeting-analysis reads a purchase ledger from an Excel workbook or CSV file
and computes spending metrics, time-series trends and category rankings over
a filtered view of the data. It can also rewrite the workbook in place to
restore sorting, validation and formatting.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budgeting-analysis!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Set the configured logger for all packages
			ledger.SetLogger(Log)
			fileutils.SetLogger(Log)
			categories.SetLogger(Log)
			rewriter.SetLogger(Log)
			report.SetLogger(Log)

			// The data file from configuration is the default input
			if SharedFlags.Input == "" {
				SharedFlags.Input = Cfg.Data.File
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input spreadsheet or CSV file (defaults to the configured data file)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (defaults to stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Period, "period", "p", filter.PeriodAll, "Period filter: all, last12 or a four-digit year")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Search, "search", "s", "", "Case-insensitive substring filter on item name and notes")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", report.FormatText, "Output format: text, json or yaml")
}

// Registry returns the category registry: the configured YAML file when one
// is set, the built-in palette otherwise.
func Registry() *categories.Registry {
	if Cfg != nil && Cfg.Categories.File != "" {
		reg, err := categories.Load(Cfg.Categories.File)
		if err != nil {
			Log.Fatalf("Failed to load categories file: %v", err)
		}
		return reg
	}
	return categories.Default()
}

// RollingWindow resolves the rolling-average window: the flag value when
// positive, the configured default otherwise.
func RollingWindow(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if Cfg != nil {
		return Cfg.Analytics.RollingWindow
	}
	return 3
}

// TopN resolves the ranking size the same way as RollingWindow.
func TopN(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if Cfg != nil {
		return Cfg.Analytics.TopN
	}
	return 10
}
