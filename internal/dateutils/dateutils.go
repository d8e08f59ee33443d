// Package dateutils provides calendar operations shared by the loader, the
// filter layer and the aggregation engine.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layout constants for the formats that show up in purchase spreadsheets.
// Day-first layouts are listed before month-first ones because the source
// data uses DD/MM/YYYY style dates.
const (
	LayoutISO      = "2006-01-02"
	LayoutDayFirst = "02/01/2006"
	LayoutEuropean = "02.01.2006"
	LayoutUS       = "01/02/2006"
	LayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the ordered list of layouts tried when parsing a date
// cell. Order matters: ambiguous strings like 03/04/2024 resolve day-first.
var CommonFormats = []string{
	LayoutISO,
	LayoutFull,
	time.RFC3339,
	LayoutDayFirst,
	"2/1/2006",
	LayoutEuropean,
	"2.1.2006",
	"02-01-2006",
	LayoutUS,
	"1/2/2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"01-02-06",
	"1/2/06",
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a raw date string.
func CleanDateString(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using the common layouts.
// The returned time is truncated to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// Truncate drops the time-of-day component, keeping only the calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(LayoutISO)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfYear returns January 1st of the date's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfWeek returns the Sunday on or after the given date. Week buckets end
// on Sunday, matching the convention the dashboard has always used.
func EndOfWeek(t time.Time) time.Time {
	t = Truncate(t)
	offset := (7 - int(t.Weekday())) % 7
	return t.AddDate(0, 0, offset)
}

// MonthsBetween returns the number of distinct calendar months between two
// dates inclusive. Both bounds participate, so Jan 10 to Mar 5 is 3.
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}

// DaysBetween returns the number of calendar days between two dates
// inclusive.
func DaysBetween(from, to time.Time) int {
	from, to = Truncate(from), Truncate(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
