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

// Package compare cross-checks two solvers' outputs against each other
// (rather than against a golden record), the comparator half of the
// verification harness.
package compare

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ranktau/ranktau/solverio"
)

// Epsilon is the tolerance at which two tau values are treated as equal.
const Epsilon = 1e-6

// Result classifies the relationship between a left and a right solver's
// output for one case.
type Result string

const (
	Equal        Result = "Equal"
	SolNotEqual  Result = "SolNotEqual"
	TauNotEqual  Result = "TauNotEqual"
	LeftMissing  Result = "LeftMissing"
	RightMissing Result = "RightMissing"
	BothMissing  Result = "BothMissing"
)

// Comparison is one case's cross-check outcome.
type Comparison struct {
	Case   string
	Result Result
	Detail string
}

// Compare cross-checks left against right for one case. Either may be nil
// to represent a solver that skipped, crashed, or was never run for this
// case.
func Compare(caseName string, left, right *solverio.AlgoOut) Comparison {
	switch {
	case left == nil && right == nil:
		return Comparison{Case: caseName, Result: BothMissing}
	case left == nil:
		return Comparison{Case: caseName, Result: LeftMissing}
	case right == nil:
		return Comparison{Case: caseName, Result: RightMissing}
	}

	tauMatch := math.Abs(left.TauMin-right.TauMin) <= Epsilon && math.Abs(left.TauMax-right.TauMax) <= Epsilon
	if !tauMatch {
		return Comparison{
			Case:   caseName,
			Result: TauNotEqual,
			Detail: fmt.Sprintf("left min=%.6f max=%.6f; right min=%.6f max=%.6f", left.TauMin, left.TauMax, right.TauMin, right.TauMax),
		}
	}

	if left.MinWitness != right.MinWitness || left.MaxWitness != right.MaxWitness {
		return Comparison{
			Case:   caseName,
			Result: SolNotEqual,
			Detail: fmt.Sprintf("left minp=%q maxp=%q; right minp=%q maxp=%q", left.MinWitness, left.MaxWitness, right.MinWitness, right.MaxWitness),
		}
	}

	return Comparison{Case: caseName, Result: Equal}
}

// WriteCSV writes comparisons as a CSV log.
func WriteCSV(w io.Writer, rows []Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"case", "result", "detail"}); err != nil {
		return errors.Wrap(err, "compare: write csv header")
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Case, string(r.Result), r.Detail}); err != nil {
			return errors.Wrapf(err, "compare: write csv row for case %q", r.Case)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary tallies how many cases fell into each Result.
type Summary map[Result]int

// Summarize tallies rows by Result.
func Summarize(rows []Comparison) Summary {
	s := make(Summary)
	for _, r := range rows {
		s[r.Result]++
	}
	return s
}

// PrintTable renders a summary as a pretty-printed table to stdout, the
// comparator CLI's default (non-CSV) report.
func PrintTable(s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Result", "Count"})
	for _, res := range []Result{Equal, SolNotEqual, TauNotEqual, LeftMissing, RightMissing, BothMissing} {
		if n, ok := s[res]; ok {
			t.AppendRow(table.Row{res, n})
		}
	}
	t.Render()
}
