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

// Command ranktau-bf computes exact tau_min/tau_max bounds between two
// partial rankings by brute-force enumeration of every linear extension,
// refusing cases that exceed its configured thresholds.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/bounds"
	"github.com/ranktau/ranktau/internal/cliutil"
	"github.com/ranktau/ranktau/ranking"
)

var (
	weightFlag  = &cli.StringFlag{Name: "weight", Value: "unweighted", Usage: "named weight function"}
	variantFlag = &cli.StringFlag{Name: "variant", Value: "a", Usage: "tau denominator variant: a or b"}
	maxExtsFlag = &cli.Uint64Flag{Name: "max-linear-extensions", Value: bounds.DefaultMaxLinearExtensions}
	maxWitFlag  = &cli.IntFlag{Name: "max-witnesses", Value: bounds.DefaultMaxWitnesses}
)

// App is ranktau-bf's command tree.
var App = cli.App{
	Name:      "ranktau-bf",
	HelpName:  "ranktau-bf",
	Usage:     "compute exact weighted-tau bounds between two partial rankings by brute force",
	ArgsUsage: "<ranking-a> <ranking-b>",
	Flags:     []cli.Flag{weightFlag, variantFlag, maxExtsFlag, maxWitFlag},
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

	cfg := bounds.BruteForceConfig{
		MaxLinearExtensions: ctx.Uint64("max-linear-extensions"),
		MaxWitnesses:        ctx.Int("max-witnesses"),
	}

	bnds, err := bounds.BruteForce(a, b, w, v, cfg)
	if err != nil {
		if errors.Is(err, bounds.ErrTooManyLinearExtensions) || errors.Is(err, bounds.ErrTooManyWitnesses) {
			fmt.Printf("skipped %s\n", err.Error())
			return nil
		}
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
