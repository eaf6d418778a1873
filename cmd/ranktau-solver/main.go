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

// Command ranktau-solver computes approximate tau_min/tau_max bounds for
// two partial rankings in polynomial time, via the graph-based solver.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/bounds"
	"github.com/ranktau/ranktau/internal/cliutil"
	"github.com/ranktau/ranktau/ranking"
)

var debugFlag = &cli.BoolFlag{Name: "debug", Usage: "dump the parsed rankings and their order graph before solving"}

var weightFlag = &cli.StringFlag{Name: "weight", Value: "unweighted", Usage: "named weight function"}

var variantFlag = &cli.StringFlag{Name: "variant", Value: "a", Usage: "tau denominator variant: a or b"}

// App is ranktau-solver's command tree.
var App = cli.App{
	Name:      "ranktau-solver",
	HelpName:  "ranktau-solver",
	Usage:     "compute approximate weighted-tau bounds between two partial rankings",
	ArgsUsage: "<ranking-a> <ranking-b>",
	Flags:     []cli.Flag{debugFlag, weightFlag, variantFlag},
	Action:    run,
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.Exit("expected exactly two positional arguments: ranking-a ranking-b", 1)
	}

	w, err := cliutil.WeightByName(ctx.String("weight"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	v, err := cliutil.VariantByName(ctx.String("variant"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	m := ranking.NewTokenMap()
	a, err := ranking.Parse(ctx.Args().Get(0), m)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	b, err := ranking.Parse(ctx.Args().Get(1), m)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if ctx.Bool("debug") {
		fmt.Println(ranking.Format(a))
		fmt.Println(ranking.FormatReplacement(a, m))
		fmt.Println(ranking.Format(b))
		fmt.Println(ranking.FormatReplacement(b, m))
		for _, p := range []ranking.PartialOrder{a, b} {
			dot, err := bounds.DumpOrderGraph(p, m)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println(string(dot))
		}
	}

	bnds, err := bounds.GraphSolve(a, b, w, v)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("tmin %.6f\n", bnds.Min.Tau)
	fmt.Printf("minp %s\n", ranking.FormatStrictReplacement(bnds.Min.Witness, m))
	fmt.Printf("tmax %.6f\n", bnds.Max.Tau)
	fmt.Printf("maxp %s\n", ranking.FormatStrictReplacement(bnds.Max.Witness, m))
	return nil
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
