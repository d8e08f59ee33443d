package models

import (
	"strconv"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
)

// CSVRow mirrors the spreadsheet columns for gocsv import and export.
type CSVRow struct {
	Item     string `csv:"Item"`
	Category string `csv:"Category"`
	Cost     string `csv:"Cost"`
	Date     string `csv:"Date"`
	Notes    string `csv:"Notes"`
	Month    string `csv:"Month"`
	MonthNum string `csv:"MonthNum"`
	Year     string `csv:"Year"`
}

// ToCSVRow converts a record to its CSV representation. Dates are written
// ISO so a re-import round-trips without day/month ambiguity.
func (r PurchaseRecord) ToCSVRow() CSVRow {
	return CSVRow{
		Item:     r.Item,
		Category: r.Category,
		Cost:     r.Cost.StringFixed(2),
		Date:     dateutils.ToISODate(r.Date),
		Notes:    r.Notes,
		Month:    r.Month,
		MonthNum: strconv.Itoa(r.MonthNum),
		Year:     r.Year,
	}
}

// ToCSVRows converts a whole record set.
func (rs RecordSet) ToCSVRows() []CSVRow {
	rows := make([]CSVRow, len(rs))
	for i, r := range rs {
		rows[i] = r.ToCSVRow()
	}
	return rows
}
