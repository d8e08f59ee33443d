// Package filter narrows a record set by period and search text. Filters
// compose by intersection and always return a new collection; the input is
// never mutated and an empty result is valid.
package filter

import (
	"strings"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

// Period selector values. Anything else is treated as an explicit year
// string matched exactly against each record's derived year.
const (
	PeriodAll    = "all"
	PeriodLast12 = "last12"
)

// Apply filters records by period and search text.
//
// "last12" selects the 12 consecutive calendar months ending with the month
// of the most recent record (a rolling calendar window, not the last 365
// days). Search text matches case-insensitively against item or notes;
// empty or whitespace-only text is a no-op.
func Apply(records models.RecordSet, period, search string) models.RecordSet {
	out := byPeriod(records, period)
	return bySearch(out, search)
}

func byPeriod(records models.RecordSet, period string) models.RecordSet {
	switch period {
	case "", PeriodAll:
		return records.Clone()
	case PeriodLast12:
		return last12Months(records)
	default:
		out := make(models.RecordSet, 0, len(records))
		for _, r := range records {
			if r.Year == period {
				out = append(out, r)
			}
		}
		return out
	}
}

// last12Months keeps records inside the window [month-start 11 months
// before the latest record's month, month-end of the latest record's
// month].
func last12Months(records models.RecordSet) models.RecordSet {
	_, latest, ok := records.DateRange()
	if !ok {
		return models.RecordSet{}
	}

	windowStart := dateutils.StartOfMonth(latest).AddDate(0, -11, 0)
	windowEnd := dateutils.EndOfMonth(latest)

	out := make(models.RecordSet, 0, len(records))
	for _, r := range records {
		if r.Date.Before(windowStart) || r.Date.After(windowEnd) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func bySearch(records models.RecordSet, search string) models.RecordSet {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return records
	}

	out := make(models.RecordSet, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Item), term) ||
			strings.Contains(strings.ToLower(r.Notes), term) {
			out = append(out, r)
		}
	}
	return out
}
