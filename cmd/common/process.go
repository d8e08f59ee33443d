// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/ledger"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/report"
)

// LoadRecords loads the purchase ledger from an Excel workbook or, when the
// path ends in .csv, from a CSV file. Load problems are fatal; tolerant
// parsing (dropped rows, coerced costs) only warns.
func LoadRecords(input string, log *logrus.Logger) models.RecordSet {
	if input == "" {
		log.Fatal("No input file given: set --input or configure data.file")
	}

	var (
		result *ledger.LoadResult
		err    error
	)
	if strings.EqualFold(filepath.Ext(input), ".csv") {
		result, err = ledger.LoadCSV(input)
	} else {
		result, err = ledger.Load(input)
	}
	if err != nil {
		log.Fatalf("Error loading records: %v", err)
	}

	if result.DroppedRows > 0 {
		log.Warnf("Dropped %d rows with unparseable dates", result.DroppedRows)
	}
	if result.CoercedCosts > 0 {
		log.Warnf("Coerced %d unparseable or negative costs to zero", result.CoercedCosts)
	}

	log.WithField("count", len(result.Records)).Debug("Loaded purchase records")
	return result.Records
}

// Emit renders v in the requested format and writes it to the output file,
// or to stdout when no output file is given.
func Emit(v interface{}, format, output string, log *logrus.Logger) {
	out, err := report.NewGenerator().Generate(v, format)
	if err != nil {
		log.Fatalf("Error rendering output: %v", err)
	}

	if output == "" {
		fmt.Print(string(out))
		return
	}
	if err := os.WriteFile(output, out, models.PermissionReportFile); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	log.Infof("Wrote %s", output)
}
