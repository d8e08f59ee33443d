package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/currencyutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

// Unit is a calendar bucketing unit for period averages.
type Unit string

const (
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// TotalSpent sums the cost of every record.
func TotalSpent(records models.RecordSet) decimal.Decimal {
	return records.TotalCost()
}

// ItemCount is the number of records.
func ItemCount(records models.RecordSet) int {
	return len(records)
}

// AverageSpend is total spent divided by item count, zero for an empty set.
func AverageSpend(records models.RecordSet) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	return records.TotalCost().Div(decimal.NewFromInt(int64(len(records))))
}

// PeriodAverage buckets costs by calendar unit and returns the mean of the
// bucket totals over buckets with activity. This is the "average
// weekly/monthly/yearly spend", distinct from the per-transaction average:
// a month with no purchases does not dilute it.
func PeriodAverage(records models.RecordSet, unit Unit) float64 {
	if len(records) == 0 {
		return 0
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		key := bucketKey(r.Date, unit)
		totals[key] = totals[key].Add(r.Cost)
	}

	var active []float64
	for _, total := range totals {
		if !total.IsZero() {
			active = append(active, total.InexactFloat64())
		}
	}
	return mean(active)
}

func bucketKey(date time.Time, unit Unit) time.Time {
	switch unit {
	case UnitWeek:
		return dateutils.EndOfWeek(date)
	case UnitYear:
		return dateutils.StartOfYear(date)
	default:
		return dateutils.StartOfMonth(date)
	}
}

// Volatility is the sample standard deviation of monthly bucket totals
// over the gap-filled monthly series, capturing month-to-month swings.
// Zero months in range count; a set spanning fewer than two months
// yields 0.
func Volatility(records models.RecordSet) float64 {
	return sampleStd(MonthlyTrend(records).Totals())
}

// ActiveMonths counts months in range with at least one purchase.
func ActiveMonths(records models.RecordSet) int {
	count := 0
	for _, p := range MonthlyTrend(records) {
		if !p.Total.IsZero() {
			count++
		}
	}
	return count
}

// BuildKPIs computes the full metric card set for a filtered view.
func BuildKPIs(records models.RecordSet) models.KPIResult {
	costs := records.Costs()
	lower, median, upper := Quartiles(costs)

	money := currencyutils.FormatUSD
	moneyF := currencyutils.FormatUSDFloat

	values := []struct {
		name  string
		value string
	}{
		{models.MetricTotalSpent, money(TotalSpent(records))},
		{models.MetricItemsBought, strconv.Itoa(ItemCount(records))},
		{models.MetricAverageSpend, money(AverageSpend(records).Round(2))},
		{models.MetricLowerQuartile, moneyF(lower)},
		{models.MetricMedianSpend, moneyF(median)},
		{models.MetricUpperQuartile, moneyF(upper)},
		{models.MetricStdDeviation, moneyF(StandardDeviation(costs))},
		{models.MetricAvgSpendPerItem, money(AverageSpend(records).Round(2))},
		{models.MetricActiveMonths, strconv.Itoa(ActiveMonths(records))},
		{models.MetricAvgWeeklySpend, moneyF(PeriodAverage(records, UnitWeek))},
		{models.MetricAvgMonthlySpend, moneyF(PeriodAverage(records, UnitMonth))},
		{models.MetricAvgYearlySpend, moneyF(PeriodAverage(records, UnitYear))},
		{models.MetricVolatility, moneyF(Volatility(records))},
	}

	result := make(models.KPIResult, 0, len(values))
	for _, v := range values {
		result = append(result, models.KPI{
			Name:    v.name,
			Value:   v.value,
			Tooltip: models.Tooltips[v.name],
		})
	}
	return result
}
