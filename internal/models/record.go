// Package models defines the data types shared across the loading, filter,
// analytics and rewrite layers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord represents one purchase row from the spreadsheet. The
// Month, MonthNum and Year fields are always derived from Date, never left
// blank, so every record is internally consistent after loading.
type PurchaseRecord struct {
	Item     string          `json:"item" yaml:"item"`
	Category string          `json:"category" yaml:"category"`
	Cost     decimal.Decimal `json:"cost" yaml:"cost"`
	Date     time.Time       `json:"date" yaml:"date"`
	Notes    string          `json:"notes" yaml:"notes"`
	Month    string          `json:"month" yaml:"month"`
	MonthNum int             `json:"month_num" yaml:"month_num"`
	Year     string          `json:"year" yaml:"year"`
}

// DeriveCalendarFields fills Month, MonthNum and Year from Date.
func (r *PurchaseRecord) DeriveCalendarFields() {
	r.Month = r.Date.Month().String()
	r.MonthNum = int(r.Date.Month())
	r.Year = r.Date.Format("2006")
}

// RecordSet is an ordered collection of purchase records. Order is load
// order until explicitly sorted. Filter and analytics functions always
// produce new sets and never mutate their input.
type RecordSet []PurchaseRecord

// TotalCost sums the cost of every record.
func (rs RecordSet) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, r := range rs {
		total = total.Add(r.Cost)
	}
	return total
}

// Costs returns per-transaction costs as floats for statistics math.
func (rs RecordSet) Costs() []float64 {
	costs := make([]float64, len(rs))
	for i, r := range rs {
		costs[i] = r.Cost.InexactFloat64()
	}
	return costs
}

// DateRange returns the earliest and latest record dates. ok is false for
// an empty set.
func (rs RecordSet) DateRange() (earliest, latest time.Time, ok bool) {
	if len(rs) == 0 {
		return time.Time{}, time.Time{}, false
	}
	earliest, latest = rs[0].Date, rs[0].Date
	for _, r := range rs[1:] {
		if r.Date.Before(earliest) {
			earliest = r.Date
		}
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return earliest, latest, true
}

// Clone returns a copy of the set sharing no backing array with the input.
func (rs RecordSet) Clone() RecordSet {
	out := make(RecordSet, len(rs))
	copy(out, rs)
	return out
}
