package ledger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/parsererror"
)

// writeWorkbook creates an xlsx fixture with the standard header and the
// given data rows (Item, Category, Cost, Date, Notes).
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, name := range models.RequiredColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, name))
	}
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "purchases.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))

	var notFound *parsererror.NotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestLoadMissingColumns(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Item"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Cost"))
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path)
	var schemaErr *parsererror.SchemaError
	require.Error(t, err)
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Missing, "Date")
	assert.Contains(t, schemaErr.Missing, "Category")
	assert.NotContains(t, schemaErr.Missing, "Item")
}

func TestLoadDerivesCalendarFields(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Coffee", "Food & Beverages", "4.50", "2024-03-05", "morning"},
	})

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, "Coffee", rec.Item)
	assert.Equal(t, "March", rec.Month)
	assert.Equal(t, 3, rec.MonthNum)
	assert.Equal(t, "2024", rec.Year)
	assert.Equal(t, "morning", rec.Notes)
	assert.True(t, rec.Cost.Equal(decimal.RequireFromString("4.5")))
}

func TestLoadCoercesCostWithThousandsSeparator(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Laptop", "Electronics & Accessories", "$1,250.50", "2024-01-10", ""},
	})

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.True(t, result.Records[0].Cost.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, 0, result.CoercedCosts)
}

func TestLoadCoercesBadCostToZero(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Mystery", "Miscellaneous", "???", "2024-01-10", ""},
		{"Refund", "Miscellaneous", "-5.00", "2024-01-11", ""},
	})

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 2, "coerced rows are retained")
	assert.True(t, result.Records[0].Cost.IsZero())
	assert.True(t, result.Records[1].Cost.IsZero())
	assert.Equal(t, 2, result.CoercedCosts)
}

func TestLoadDropsUnparseableDates(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Good", "Gaming", "10.00", "2024-01-10", ""},
		{"Bad", "Gaming", "10.00", "not-a-date", ""},
	})

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Good", result.Records[0].Item)
	assert.Equal(t, 1, result.DroppedRows)
}

func TestLoadSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"First", "Gaming", "1.00", "2024-01-10", ""},
		{"", "", "", "", ""},
		{"Second", "Gaming", "2.00", "2024-01-11", ""},
	})

	result, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, 0, result.DroppedRows)
}

func TestLoadDayFirstDates(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Ambiguous", "Gaming", "1.00", "03/04/2024", ""},
	})

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "April", result.Records[0].Month)
	assert.Equal(t, 3, result.Records[0].Date.Day())
}
