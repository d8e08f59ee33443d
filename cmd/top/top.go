// Package top handles the ranking and distribution commands
package top

import (
	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/common"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/analytics"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/filter"
)

// View selection values for the --view flag.
const (
	ViewItems        = "items"
	ViewCategories   = "categories"
	ViewAverages     = "category-averages"
	ViewAnnual       = "annual"
	ViewDistribution = "distribution"
)

var (
	view string
	topN int
)

// Cmd represents the top command
var Cmd = &cobra.Command{
	Use:   "top",
	Short: "Rank items and categories by spend",
	Long: `Rank the filtered ledger: top items by total spend, category breakdown
with the remainder folded into Other, per-category averages, year-by-category
totals, or the quartile distribution of purchase amounts.`,
	Run: topFunc,
}

func init() {
	Cmd.Flags().StringVar(&view, "view", ViewItems, "View to compute: items, categories, category-averages, annual or distribution")
	Cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of entries to keep (defaults to the configured value)")
}

func topFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Top command called")

	records := common.LoadRecords(root.SharedFlags.Input, root.Log)
	filtered := filter.Apply(records, root.SharedFlags.Period, root.SharedFlags.Search)
	n := root.TopN(topN)

	switch view {
	case ViewItems:
		common.Emit(analytics.TopItems(filtered, n), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case ViewCategories:
		common.Emit(analytics.CategoryBreakdown(filtered, n), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case ViewAverages:
		common.Emit(analytics.CategoryAverages(filtered), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case ViewAnnual:
		common.Emit(analytics.AnnualCategoryTotals(filtered), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	case ViewDistribution:
		common.Emit(analytics.AmountDistribution(filtered), root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
	default:
		root.Log.Fatalf("Unknown view: %s", view)
	}
}
