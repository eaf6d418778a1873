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

// Command ranktau-eval sweeps a corpus of ranking-pair cases through the
// in-process bound solvers, writing one evaluation row per case: the
// actual tau under both normalisation variants, the solved bounds, and a
// handful of descriptive statistics about each case's size and tie
// structure.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

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
	outFlag     = &cli.StringFlag{Name: "out", Required: true, Usage: "path to write the evaluation CSV"}
	weightFlag  = &cli.StringFlag{Name: "weight", Value: "unweighted"}
	variantFlag = &cli.StringFlag{Name: "variant", Value: "b", Usage: "tau variant used to solve t_max/t_min bounds"}
	methodFlag  = &cli.StringFlag{Name: "method", Value: "graph", Usage: "graph or bruteforce"}
	cacheFlag   = &cli.StringFlag{Name: "cache", Usage: "optional sqlite cache path"}
	workersFlag = &cli.IntFlag{Name: "workers", Usage: "concurrent cases in flight; <= 0 means NumCPU"}
	chunkFlag   = &cli.IntFlag{Name: "chunk-size", Value: 1000}
)

// App is ranktau-eval's command tree.
var App = cli.App{
	Name:   "ranktau-eval",
	Usage:  "batch-solve tau bounds and descriptive statistics across a corpus of ranking pairs",
	Flags:  []cli.Flag{casesFlag, outFlag, weightFlag, variantFlag, methodFlag, cacheFlag, workersFlag, chunkFlag},
	Action: run,
}

// evalRow is one line of the evaluation CSV: a,b's actual tau under both
// normalisation conventions, the weight function's solved bounds, and
// descriptive statistics about the pair.
type evalRow struct {
	Case             string
	TauA             float64
	TauB             float64
	TauMax           float64
	TauMin           float64
	Length           int
	FracTies         float64
	SumOfTieLengths  int
	TieCount         int
	LongestTie       int
	PermutationCount string
	ComputeTime      float64
}

func evalHeader() []string {
	return []string{
		"t_a", "t_b", "t_max", "t_min", "length", "frac_ties",
		"sum_of_tie_lengths", "tie_count", "longest_tie", "permutation_count", "compute_time",
	}
}

func (r evalRow) toCSV() []string {
	return []string{
		strconv.FormatFloat(r.TauA, 'f', 6, 64),
		strconv.FormatFloat(r.TauB, 'f', 6, 64),
		strconv.FormatFloat(r.TauMax, 'f', 6, 64),
		strconv.FormatFloat(r.TauMin, 'f', 6, 64),
		strconv.Itoa(r.Length),
		strconv.FormatFloat(r.FracTies, 'f', 6, 64),
		strconv.Itoa(r.SumOfTieLengths),
		strconv.Itoa(r.TieCount),
		strconv.Itoa(r.LongestTie),
		r.PermutationCount,
		strconv.FormatFloat(r.ComputeTime, 'f', 9, 64),
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
		return cli.Exit(fmt.Sprintf("ranktau-eval: unknown method %q", method), 1)
	}

	var cache batch.CaseCache
	if path := ctx.String("cache"); path != "" {
		c, err := batch.OpenCache(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer c.Close()
		cache = c
	}

	driver := batch.Driver{NumWorkers: ctx.Int("workers"), ChunkSize: ctx.Int("chunk-size")}

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	defer cw.Flush()
	if err := cw.Write(evalHeader()); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cacheKeySuffix := ctx.String("weight") + "|" + ctx.String("variant")

	process := func(_ context.Context, c batch.Case) (evalRow, error) {
		start := time.Now()

		m := ranking.NewTokenMap()
		a, err := ranking.Parse(c.A, m)
		if err != nil {
			return evalRow{}, err
		}
		b, err := ranking.Parse(c.B, m)
		if err != nil {
			return evalRow{}, err
		}

		tauA, err := kendall.TauPartial(a, b, w, kendall.VariantA)
		if err != nil {
			return evalRow{}, err
		}
		tauB, err := kendall.TauPartial(a, b, w, kendall.VariantB)
		if err != nil {
			return evalRow{}, err
		}

		cacheKey := c.Name + "|" + cacheKeySuffix
		var tb bounds.TauBounds
		haveBounds := false
		if cache != nil {
			if cached, ok, cerr := cache.Get(cacheKey); cerr == nil && ok {
				tb = bounds.TauBounds{Min: bounds.Bound{Tau: cached.TauMin}, Max: bounds.Bound{Tau: cached.TauMax}}
				haveBounds = true
			}
		}
		if !haveBounds {
			if method == "bruteforce" {
				tb, err = bounds.BruteForce(a, b, w, v, bounds.DefaultBruteForceConfig())
				if errors.Is(err, bounds.ErrTooManyLinearExtensions) || errors.Is(err, bounds.ErrTooManyWitnesses) {
					return evalRow{Case: c.Name}, nil
				}
			} else {
				tb, err = bounds.GraphSolve(a, b, w, v)
			}
			if err != nil {
				return evalRow{}, err
			}
			if cache != nil {
				_ = cache.Put(cacheKey, batch.CachedBounds{
					TauMin:     tb.Min.Tau,
					MinWitness: ranking.FormatStrictReplacement(tb.Min.Witness, m),
					TauMax:     tb.Max.Tau,
					MaxWitness: ranking.FormatStrictReplacement(tb.Max.Witness, m),
				})
			}
		}

		stats := cliutil.ComputeTieStats(a, b)
		length := a.SetSize()

		return evalRow{
			Case:             c.Name,
			TauA:             tauA,
			TauB:             tauB,
			TauMax:           tb.Max.Tau,
			TauMin:           tb.Min.Tau,
			Length:           length,
			FracTies:         cliutil.FracTies(length, stats.SumOfTieLengths),
			SumOfTieLengths:  stats.SumOfTieLengths,
			TieCount:         stats.TieCount,
			LongestTie:       stats.LongestTie,
			PermutationCount: ranking.PermutationCount(a, b).String(),
			ComputeTime:      time.Since(start).Seconds(),
		}, nil
	}

	writeChunk := func(results []batch.Result[evalRow]) error {
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "ranktau-eval: case %q: %v\n", r.Case.Name, r.Err)
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
