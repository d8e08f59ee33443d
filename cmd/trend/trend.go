// Package trend handles the time-series commands
package trend

import (
	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/common"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/analytics"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/filter"
)

// Series selection values for the --series flag.
const (
	SeriesMonthly    = "monthly"
	SeriesRolling    = "rolling"
	SeriesCumulative = "cumulative"
)

var (
	series string
	window int
)

// Cmd represents the trend command
var Cmd = &cobra.Command{
	Use:   "trend",
	Short: "Compute spending over time",
	Long: `Compute a spending time series over the filtered ledger: monthly totals
with gap months included, a trailing rolling average with a volatility band,
or a cumulative daily total.`,
	Run: trendFunc,
}

func init() {
	Cmd.Flags().StringVar(&series, "series", SeriesMonthly, "Series to compute: monthly, rolling or cumulative")
	Cmd.Flags().IntVar(&window, "window", 0, "Rolling-average window in months (defaults to the configured value)")
}

func trendFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Trend command called")

	records := common.LoadRecords(root.SharedFlags.Input, root.Log)
	filtered := filter.Apply(records, root.SharedFlags.Period, root.SharedFlags.Search)

	switch series {
	case SeriesMonthly:
		common.Emit(analytics.MonthlyTrend(filtered), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case SeriesRolling:
		trend := analytics.MonthlyTrend(filtered)
		rolled := analytics.RollingAverage(trend, root.RollingWindow(window))
		common.Emit(rolled, root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case SeriesCumulative:
		common.Emit(analytics.CumulativeSpending(filtered), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	default:
		root.Log.Fatalf("Unknown series: %s (must be monthly, rolling or cumulative)", series)
	}
}
