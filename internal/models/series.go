package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one (period, total) entry of a time series. Period is the
// bucket start (month start for monthly series, the day itself for daily
// series).
type SeriesPoint struct {
	Period time.Time       `json:"period" yaml:"period"`
	Total  decimal.Decimal `json:"total" yaml:"total"`
}

// TimeSeries is an ordered, gap-filled sequence of bucket totals. Every
// calendar unit in the active range has an entry, zero-valued when no
// transactions fall into it. Omitting empty periods would corrupt trend
// continuity, so gap-filling is mandatory.
type TimeSeries []SeriesPoint

// Totals returns the series values as floats for statistics math.
func (ts TimeSeries) Totals() []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Total.InexactFloat64()
	}
	return out
}

// RollingPoint is one entry of a trailing rolling-average series: the mean
// over the window ending at Period plus the standard deviation over the
// same window for volatility-band display.
type RollingPoint struct {
	Period time.Time `json:"period" yaml:"period"`
	Mean   float64   `json:"mean" yaml:"mean"`
	Std    float64   `json:"std" yaml:"std"`
}

// ItemTotal is one row of the top-items ranking. Category is the category
// of the item's most recent transaction when the item spans categories.
type ItemTotal struct {
	Item     string          `json:"item" yaml:"item"`
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
	Count    int             `json:"count" yaml:"count"`
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
	Count    int             `json:"count" yaml:"count"`
}

// CategoryAverage reports per-category spend behaviour: total, transaction
// count and average cost per transaction.
type CategoryAverage struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
	Count    int             `json:"count" yaml:"count"`
	Average  decimal.Decimal `json:"average" yaml:"average"`
}

// YearCategoryTotal is one cell of the year-by-category totals table.
type YearCategoryTotal struct {
	Year     string          `json:"year" yaml:"year"`
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// DistributionBin is one quartile bucket of the amount distribution:
// transactions whose individual cost falls inside the bin's bounds.
type DistributionBin struct {
	Label string          `json:"label" yaml:"label"`
	Count int             `json:"count" yaml:"count"`
	Total decimal.Decimal `json:"total" yaml:"total"`
}
