package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectOk  bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"ISO format", "2024-01-15", true, 2024, time.January, 15},
		{"Day-first slashes", "15/01/2024", true, 2024, time.January, 15},
		{"Ambiguous resolves day-first", "03/04/2024", true, 2024, time.April, 3},
		{"European dots", "15.01.2024", true, 2024, time.January, 15},
		{"Single digit day-first", "5/1/2024", true, 2024, time.January, 5},
		{"Full timestamp", "2024-01-15 10:30:45", true, 2024, time.January, 15},
		{"Month name", "15 Jan 2024", true, 2024, time.January, 15},
		{"Padded whitespace", "  2024-01-15  ", true, 2024, time.January, 15},
		{"Empty string", "", false, 0, 0, 0},
		{"Garbage", "not-a-date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.dateStr)
			if tc.expectOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, 0, date.Hour())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStartEndOfMonth(t *testing.T) {
	d := time.Date(2024, time.February, 14, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(d))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), EndOfMonth(d))
}

func TestEndOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{"Monday", time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)},
		{"Sunday stays", time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)},
		{"Saturday", time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EndOfWeek(tc.in))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, MonthsBetween(jan, mar))
	assert.Equal(t, 1, MonthsBetween(jan, jan))
	assert.Equal(t, 0, MonthsBetween(mar, jan))
	assert.Equal(t, 13, MonthsBetween(jan, jan.AddDate(1, 0, 0)))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(from, from))
	assert.Equal(t, 31, DaysBetween(from, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(from, from.AddDate(0, 0, -1)))
}
