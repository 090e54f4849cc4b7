package main

import (
	"fmt"
	"os"

	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/export"
	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/marketdata/ust"
	"github.com/meenmo/fwdcurve/utils"
)

func main() {
	c, err := curve.BuildYieldCurveFromTable(ust.DefaultSource().Yields(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	start, err := utils.ParseDate("2023-11-01")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	table, err := grid.NewBuilder(nil).Build(grid.Input{Curve: c, StartDate: start})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := export.WriteTextHead(os.Stdout, table, 5); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
