// Package ledger is the record store: it loads purchase records from the
// spreadsheet (or CSV), normalizing every numeric and date anomaly at the
// boundary so downstream layers never see raw cell text.
package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/currencyutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/fileutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadResult carries the loaded records plus per-row anomaly counters so
// callers can warn about messy data without the load failing.
type LoadResult struct {
	Records      models.RecordSet
	DroppedRows  int // rows removed because the date was unparseable
	CoercedCosts int // rows kept with cost coerced to zero
}

// Load reads the first worksheet of an xlsx file into a record set.
//
// It fails with NotFoundError when the file is missing and SchemaError when
// required columns are absent. Per-row anomalies are absorbed: unparseable
// dates drop the row, unparseable or negative costs are coerced to zero,
// and the derived Month/MonthNum/Year fields are always recomputed from
// Date regardless of what the sheet contains.
func Load(path string) (*LoadResult, error) {
	if !fileutils.FileExists(path) {
		return nil, &parsererror.NotFoundError{Path: path}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading worksheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &parsererror.SchemaError{Path: path, Missing: models.RequiredColumns}
	}

	columns, err := mapHeader(path, rows[0])
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		item := cellAt(row, columns[models.ColumnItem])
		if strings.TrimSpace(item) == "" {
			continue
		}

		rec, ok := parseRow(row, rowNum, columns, result)
		if !ok {
			continue
		}
		rec.Item = item
		result.Records = append(result.Records, rec)
	}

	log.WithFields(logrus.Fields{
		"file":    path,
		"records": len(result.Records),
		"dropped": result.DroppedRows,
		"coerced": result.CoercedCosts,
	}).Info("Loaded purchase records")

	return result, nil
}

// parseRow converts one data row. Returns ok=false when the row must be
// dropped (unparseable date).
func parseRow(row []string, rowNum int, columns map[string]int, result *LoadResult) (models.PurchaseRecord, bool) {
	dateStr := cellAt(row, columns[models.ColumnDate])
	date, err := dateutils.ParseDate(dateStr)
	if err != nil {
		result.DroppedRows++
		log.WithError(&parsererror.ParseError{
			Field: models.ColumnDate, Value: dateStr, Row: rowNum, Err: err,
		}).Warn("Dropping row with unparseable date")
		return models.PurchaseRecord{}, false
	}

	costStr := cellAt(row, columns[models.ColumnCost])
	cost, err := currencyutils.ParseAmount(costStr)
	if err != nil || cost.IsNegative() {
		if err == nil {
			err = fmt.Errorf("negative cost")
		}
		result.CoercedCosts++
		log.WithError(&parsererror.ParseError{
			Field: models.ColumnCost, Value: costStr, Row: rowNum, Err: err,
		}).Warn("Coercing cost to zero")
		cost = decimal.Zero
	}

	rec := models.PurchaseRecord{
		Category: cellAt(row, columns[models.ColumnCategory]),
		Cost:     cost,
		Date:     date,
		Notes:    cellAt(row, columns[models.ColumnNotes]),
	}
	rec.DeriveCalendarFields()
	return rec, true
}

// mapHeader maps required column names to their indices in the header row.
func mapHeader(path string, header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range models.RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &parsererror.SchemaError{Path: path, Missing: missing}
	}
	return columns, nil
}

// cellAt returns the trimmed cell value at idx. GetRows trims trailing
// empty cells, so short rows are expected.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
