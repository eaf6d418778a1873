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

// Command ranktau-coef is the leaner sibling of ranktau-eval: it solves
// bounds for a corpus of ranking-pair cases and writes only the summary
// statistics columns, dropping the per-case compute_time, frac_ties and
// length columns the fuller evaluation tool adds.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/batch"
	"github.com/ranktau/ranktau/bounds"
	"github.com/ranktau/ranktau/internal/cliutil"
	"github.com/ranktau/ranktau/kendall"
	"github.com/ranktau/ranktau/ranking"
)

var (
	casesFlag   = &cli.StringFlag{Name: "cases", Required: true, Usage: "case CSV: name,a,b"}
	outFlag     = &cli.StringFlag{Name: "out", Required: true, Usage: "path to write the summary CSV"}
	weightFlag  = &cli.StringFlag{Name: "weight", Value: "unweighted"}
	variantFlag = &cli.StringFlag{Name: "variant", Value: "b"}
	methodFlag  = &cli.StringFlag{Name: "method", Value: "graph", Usage: "graph or bruteforce"}
	workersFlag = &cli.IntFlag{Name: "workers", Usage: "concurrent cases in flight; <= 0 means NumCPU"}
	chunkFlag   = &cli.IntFlag{Name: "chunk-size", Value: 1000}
)

// App is ranktau-coef's command tree.
var App = cli.App{
	Name:   "ranktau-coef",
	Usage:  "batch-solve tau bounds across a corpus of ranking pairs, reporting only the summary columns",
	Flags:  []cli.Flag{casesFlag, outFlag, weightFlag, variantFlag, methodFlag, workersFlag, chunkFlag},
	Action: run,
}

type coefRow struct {
	Case             string
	TauB             float64
	TauMax           float64
	TauMin           float64
	SumOfTieLengths  int
	TieCount         int
	LongestTie       int
	PermutationCount string
}

func coefHeader() []string {
	return []string{"t_b", "t_max", "t_min", "sum_of_tie_lengths", "tie_count", "longest_tie", "permutation_count"}
}

func (r coefRow) toCSV() []string {
	return []string{
		strconv.FormatFloat(r.TauB, 'f', 6, 64),
		strconv.FormatFloat(r.TauMax, 'f', 6, 64),
		strconv.FormatFloat(r.TauMin, 'f', 6, 64),
		strconv.Itoa(r.SumOfTieLengths),
		strconv.Itoa(r.TieCount),
		strconv.Itoa(r.LongestTie),
		r.PermutationCount,
	}
}

func run(ctx *cli.Context) error {
	cases, err := batch.LoadCasesFromCSV(ctx.String("cases"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cases = batch.DedupSort(cases)

	w, err := cliutil.WeightByName(ctx.String("weight"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	v, err := cliutil.VariantByName(ctx.String("variant"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	method := ctx.String("method")
	if method != "graph" && method != "bruteforce" {
		return cli.Exit(fmt.Sprintf("ranktau-coef: unknown method %q", method), 1)
	}

	driver := batch.Driver{NumWorkers: ctx.Int("workers"), ChunkSize: ctx.Int("chunk-size")}

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	defer cw.Flush()
	if err := cw.Write(coefHeader()); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	process := func(_ context.Context, c batch.Case) (coefRow, error) {
		m := ranking.NewTokenMap()
		a, err := ranking.Parse(c.A, m)
		if err != nil {
			return coefRow{}, err
		}
		b, err := ranking.Parse(c.B, m)
		if err != nil {
			return coefRow{}, err
		}

		tauB, err := kendall.TauPartial(a, b, w, kendall.VariantB)
		if err != nil {
			return coefRow{}, err
		}

		var tb bounds.TauBounds
		if method == "bruteforce" {
			tb, err = bounds.BruteForce(a, b, w, v, bounds.DefaultBruteForceConfig())
			if errors.Is(err, bounds.ErrTooManyLinearExtensions) || errors.Is(err, bounds.ErrTooManyWitnesses) {
				return coefRow{Case: c.Name}, nil
			}
		} else {
			tb, err = bounds.GraphSolve(a, b, w, v)
		}
		if err != nil {
			return coefRow{}, err
		}

		stats := cliutil.ComputeTieStats(a, b)

		return coefRow{
			Case:             c.Name,
			TauB:             tauB,
			TauMax:           tb.Max.Tau,
			TauMin:           tb.Min.Tau,
			SumOfTieLengths:  stats.SumOfTieLengths,
			TieCount:         stats.TieCount,
			LongestTie:       stats.LongestTie,
			PermutationCount: ranking.PermutationCount(a, b).String(),
		}, nil
	}

	writeChunk := func(results []batch.Result[coefRow]) error {
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "ranktau-coef: case %q: %v\n", r.Case.Name, r.Err)
				continue
			}
			if err := cw.Write(r.Value.toCSV()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	if err := batch.Run(context.Background(), driver, cases, process, writeChunk); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
