// Copyright 2026 The Ranktau Authors
// This file is part of Ranktau.
//
// Ranktau is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ranktau is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Ranktau. If not, see <http://www.gnu.org/licenses/>.

// Command ranktau-compare cross-checks two solver binaries against each
// other over the same case list, useful for comparing the exact
// brute-force solver's output against the approximate graph solver's.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/batch"
	"github.com/ranktau/ranktau/compare"
	"github.com/ranktau/ranktau/runner"
	"github.com/ranktau/ranktau/solverio"
)

var (
	casesFlag     = &cli.StringFlag{Name: "cases", Required: true, Usage: "case CSV: name,a,b"}
	leftFlag      = &cli.StringFlag{Name: "left", Required: true, Usage: "left solver binary"}
	rightFlag     = &cli.StringFlag{Name: "right", Required: true, Usage: "right solver binary"}
	reportCSVFlag = &cli.StringFlag{Name: "report-csv"}
)

// App is ranktau-compare's command tree.
var App = cli.App{
	Name:   "ranktau-compare",
	Usage:  "cross-check two solver binaries against each other",
	Flags:  []cli.Flag{casesFlag, leftFlag, rightFlag, reportCSVFlag},
	Action: run,
}

func solve(ctx context.Context, binary string, c batch.Case) (*solverio.AlgoOut, error) {
	stdout, err := runner.Run(ctx, runner.Case{Binary: binary, Args: []string{c.A, c.B}})
	if err != nil {
		return nil, nil // treated as "missing" rather than a hard error
	}
	out, err := solverio.ParseAlgoOutput(stdout)
	if err != nil {
		return nil, nil
	}
	return &out, err
}

func run(ctx *cli.Context) error {
	cases, err := batch.LoadCasesFromCSV(ctx.String("cases"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	left := ctx.String("left")
	right := ctx.String("right")

	var rows []compare.Comparison
	for _, c := range cases {
		l, _ := solve(context.Background(), left, c)
		r, _ := solve(context.Background(), right, c)
		rows = append(rows, compare.Compare(c.Name, l, r))
	}

	summary := compare.Summarize(rows)
	compare.PrintTable(summary)

	if reportPath := ctx.String("report-csv"); reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer f.Close()
		if err := compare.WriteCSV(f, rows); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	return nil
}

func main() {
	if err := App.Run(os.Args); err != nil {
		cli.Exit(err.Error(), 1)
	}
}
