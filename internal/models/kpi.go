package models

// Metric display names. The stats command emits KPIs in this order.
const (
	MetricTotalSpent      = "Total spent"
	MetricItemsBought     = "Items bought"
	MetricAverageSpend    = "Average spend"
	MetricLowerQuartile   = "Lower 25th percentile"
	MetricMedianSpend     = "Median spend"
	MetricUpperQuartile   = "Upper 25th percentile"
	MetricStdDeviation    = "Standard deviation"
	MetricAvgSpendPerItem = "Avg spend per item"
	MetricActiveMonths    = "Active months"
	MetricAvgWeeklySpend  = "Average weekly spend"
	MetricAvgMonthlySpend = "Average monthly spend"
	MetricAvgYearlySpend  = "Average yearly spend"
	MetricVolatility      = "Spending volatility"
)

// KPI is one metric card: a display name, a formatted value and a
// plain-language tooltip. Recomputed on every filter change, never
// persisted.
type KPI struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Tooltip string `json:"tooltip" yaml:"tooltip"`
}

// KPIResult is the ordered list of metric cards for one filtered view.
type KPIResult []KPI

// Value returns the formatted value for a metric name, or "" if absent.
func (kr KPIResult) Value(name string) string {
	for _, k := range kr {
		if k.Name == name {
			return k.Value
		}
	}
	return ""
}

// Tooltips holds the plain-language explanation shown with each metric.
var Tooltips = map[string]string{
	MetricTotalSpent:      "Total money spent in the selected data.",
	MetricItemsBought:     "How many purchases or transactions are recorded.",
	MetricAverageSpend:    "Typical amount spent for a single purchase: add all purchases and divide by the number of purchases.",
	MetricLowerQuartile:   "A value near the lower end of your purchases — about 25% of purchases are this amount or less.",
	MetricMedianSpend:     "The middle purchase amount — half of your purchases are smaller and half are larger.",
	MetricUpperQuartile:   "A value near the higher end — about 25% of purchases are this amount or more.",
	MetricStdDeviation:    "A simple measure of how different your purchase amounts are. Small = purchases are similar sizes; large = they vary a lot.",
	MetricAvgSpendPerItem: "Total spent divided by number of purchases — another way to see typical spend per purchase.",
	MetricActiveMonths:    "How many months had at least one purchase (used as the basis for monthly averages).",
	MetricAvgWeeklySpend:  "Typical money spent per week, averaged across weeks with activity.",
	MetricAvgMonthlySpend: "Typical money spent per month, averaged across months with activity.",
	MetricAvgYearlySpend:  "Typical money spent per year, averaged across years with activity.",
	MetricVolatility:      "How much your monthly spending goes up and down. Higher means spending swings more from month to month.",
}
