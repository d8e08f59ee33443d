package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

// MonthlyTrend buckets costs by month start, summed and gap-filled: every
// calendar month between the earliest and latest record dates gets an
// entry, zero-valued when no transactions fall into it. Records sharing a
// single date produce exactly one bucket.
func MonthlyTrend(records models.RecordSet) models.TimeSeries {
	earliest, latest, ok := records.DateRange()
	if !ok {
		return models.TimeSeries{}
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		key := dateutils.StartOfMonth(r.Date)
		totals[key] = totals[key].Add(r.Cost)
	}

	months := dateutils.MonthsBetween(earliest, latest)
	series := make(models.TimeSeries, 0, months)
	for cursor := dateutils.StartOfMonth(earliest); months > 0; months-- {
		series = append(series, models.SeriesPoint{
			Period: cursor,
			Total:  totals[cursor],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return series
}

// RollingAverage smooths a series with a causal trailing window: each
// entry is the mean of the current and preceding window-1 periods, never
// looking ahead. The first window-1 entries use whatever history exists
// (partial window). The trailing standard deviation over the same window
// is returned for volatility-band display.
func RollingAverage(trend models.TimeSeries, window int) []models.RollingPoint {
	if window < 1 {
		window = 1
	}

	totals := trend.Totals()
	out := make([]models.RollingPoint, len(trend))
	for i := range trend {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		slice := totals[start : i+1]
		out[i] = models.RollingPoint{
			Period: trend[i].Period,
			Mean:   mean(slice),
			Std:    sampleStd(slice),
		}
	}
	return out
}

// CumulativeSpending is the day-granularity running total across every
// calendar day in range. Unlike the monthly trend this never skips a day:
// zero-spend days carry the previous total forward.
func CumulativeSpending(records models.RecordSet) models.TimeSeries {
	earliest, latest, ok := records.DateRange()
	if !ok {
		return models.TimeSeries{}
	}

	daily := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		key := dateutils.Truncate(r.Date)
		daily[key] = daily[key].Add(r.Cost)
	}

	days := dateutils.DaysBetween(earliest, latest)
	series := make(models.TimeSeries, 0, days)
	running := decimal.Zero
	for cursor := dateutils.Truncate(earliest); days > 0; days-- {
		running = running.Add(daily[cursor])
		series = append(series, models.SeriesPoint{
			Period: cursor,
			Total:  running,
		})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return series
}
