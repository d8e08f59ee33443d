package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024.csv")
	content := "Item,Category,Cost,Date,Notes\n" +
		"Coffee,Food & Beverages,4.50,05/03/2024,morning\n" +
		"Laptop,Electronics & Accessories,\"$1,250.50\",2024-01-10,\n" +
		"Bad,Gaming,10.00,not-a-date,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 1, result.DroppedRows)

	coffee := result.Records[0]
	assert.Equal(t, "March", coffee.Month, "CSV dates parse day-first")
	assert.Equal(t, 5, coffee.Date.Day())

	laptop := result.Records[1]
	assert.True(t, laptop.Cost.Equal(decimal.RequireFromString("1250.50")))
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "export.csv")

	rec := models.PurchaseRecord{
		Item:     "Coffee",
		Category: "Food & Beverages",
		Cost:     decimal.RequireFromString("4.5"),
		Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Notes:    "morning",
	}
	rec.DeriveCalendarFields()

	require.NoError(t, WriteCSV(models.RecordSet{rec}, path))

	result, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, rec.Item, result.Records[0].Item)
	assert.Equal(t, rec.Date, result.Records[0].Date)
	assert.True(t, rec.Cost.Equal(result.Records[0].Cost))
}

func TestWriteCSVNilRecords(t *testing.T) {
	err := WriteCSV(nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.Error(t, err)
}
