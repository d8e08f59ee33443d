// Package stats handles the spending metrics command
package stats

import (
	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/common"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/analytics"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/filter"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute spending metrics over the filtered ledger",
	Long: `Compute the full metric set over the filtered ledger: totals, averages,
quartiles, weekly/monthly/yearly averages, volatility and active months.`,
	Run: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Stats command called")

	records := common.LoadRecords(root.SharedFlags.Input, root.Log)
	filtered := filter.Apply(records, root.SharedFlags.Period, root.SharedFlags.Search)
	root.Log.Infof("Computing metrics over %d of %d records", len(filtered), len(records))

	kpis := analytics.BuildKPIs(filtered)
	common.Emit(kpis, root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
}
