package main

import (
	"fmt"
	"os"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/export"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/remake"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/stats"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/top"
	"github.com/dragonstonehafiz/budgeting-analysis/cmd/trend"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(trend.Cmd)
	root.Cmd.AddCommand(top.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(remake.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
