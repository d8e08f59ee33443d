// Package export handles the CSV export command
package export

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/common"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/fileutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/filter"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/ledger"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered ledger to CSV",
	Long: `Export the filtered ledger to a CSV file with ISO dates and two-decimal
costs, including the derived Month, MonthNum and Year columns.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

	if root.SharedFlags.Output == "" {
		root.Log.Fatal("Export requires an output file: set --output")
	}

	records := common.LoadRecords(root.SharedFlags.Input, root.Log)
	filtered := filter.Apply(records, root.SharedFlags.Period, root.SharedFlags.Search)

	// An existing export is backed up before being overwritten, unless
	// backups are disabled in configuration.
	if root.Cfg.Data.BackupEnabled && fileutils.FileExists(root.SharedFlags.Output) {
		backup, err := fileutils.BackupFile(root.SharedFlags.Output, time.Now())
		if err != nil {
			root.Log.Fatalf("Error backing up existing export: %v", err)
		}
		root.Log.Infof("Backed up existing export to %s", backup)
	}

	if err := ledger.WriteCSV(filtered, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Infof("Exported %d records to %s", len(filtered), root.SharedFlags.Output)
}
