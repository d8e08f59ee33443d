package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/currencyutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/fileutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/parsererror"
)

// csvImportRow is the minimal shape accepted on CSV import. Month, MonthNum
// and Year are derived from Date, never trusted from the file.
type csvImportRow struct {
	Item     string `csv:"Item"`
	Category string `csv:"Category"`
	Cost     string `csv:"Cost"`
	Date     string `csv:"Date"`
	Notes    string `csv:"Notes"`
}

// LoadCSV reads purchase records from a CSV file with the same tolerant
// semantics as Load: dates day-first, bad dates drop the row, bad costs
// coerce to zero.
func LoadCSV(path string) (*LoadResult, error) {
	if !fileutils.FileExists(path) {
		return nil, &parsererror.NotFoundError{Path: path}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []csvImportRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	result := &LoadResult{}
	for i, row := range rows {
		rowNum := i + 2
		if row.Item == "" {
			continue
		}

		date, err := dateutils.ParseDate(row.Date)
		if err != nil {
			result.DroppedRows++
			log.WithError(&parsererror.ParseError{
				Field: models.ColumnDate, Value: row.Date, Row: rowNum, Err: err,
			}).Warn("Dropping row with unparseable date")
			continue
		}

		cost, err := currencyutils.ParseAmount(row.Cost)
		if err != nil || cost.IsNegative() {
			result.CoercedCosts++
			cost = decimal.Zero
		}

		rec := models.PurchaseRecord{
			Item:     row.Item,
			Category: row.Category,
			Cost:     cost,
			Date:     date,
			Notes:    row.Notes,
		}
		rec.DeriveCalendarFields()
		result.Records = append(result.Records, rec)
	}

	log.WithFields(logrus.Fields{
		"file":    path,
		"records": len(result.Records),
		"dropped": result.DroppedRows,
	}).Info("Loaded purchase records from CSV")

	return result, nil
}

// WriteCSV writes a record set to a CSV file in spreadsheet column order.
func WriteCSV(records models.RecordSet, path string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil record set to CSV")
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := records.ToCSVRows()
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(rows),
	}).Info("Wrote records to CSV")
	return nil
}
