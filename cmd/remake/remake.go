// Package remake handles the spreadsheet rewrite command
package remake

import (
	"github.com/spf13/cobra"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/common"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/rewriter"
)

// Cmd represents the remake command
var Cmd = &cobra.Command{
	Use:   "remake",
	Short: "Rewrite the purchase workbook in place",
	Long: `Rewrite the purchase workbook in place: back it up, normalize the column
layout, sort rows by date, constrain the Category column to the canonical
list and reapply all formatting. The original file is never modified unless
every step succeeds.`,
	Run: remakeFunc,
}

func remakeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Remake command called")
	root.Log.Infof("Workbook: %s", root.SharedFlags.Input)

	rw := rewriter.New(root.Registry())
	report, err := rw.Rewrite(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error rewriting workbook: %v", err)
	}

	common.Emit(report, root.SharedFlags.Format, root.SharedFlags.Output, root.Log)
}
