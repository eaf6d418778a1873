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

// Command ranktau-verify drives an external solver binary over a golden
// test corpus and reports whether its bounds and witnesses check out.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/internal/rklog"
	"github.com/ranktau/ranktau/runner"
	"github.com/ranktau/ranktau/solverio"
	"github.com/ranktau/ranktau/verify"
)

var (
	goldenFlag    = &cli.StringFlag{Name: "golden", Required: true, Usage: "golden test corpus CSV"}
	reportCSVFlag = &cli.StringFlag{Name: "report-csv", Usage: "write the per-case verification report here"}
	logLevelFlag  = &cli.StringFlag{Name: "log-level", Value: "INFO"}
)

// App is ranktau-verify's command tree.
var App = cli.App{
	Name:      "ranktau-verify",
	HelpName:  "ranktau-verify",
	Usage:     "verify a solver binary's bounds against a golden corpus",
	ArgsUsage: "<solver-binary> [solver-args...]",
	Flags:     []cli.Flag{goldenFlag, reportCSVFlag, logLevelFlag},
	Action:    run,
}

// loadGolden reads a golden verification corpus: header a,b,tmin,tmax,
// pmin,pmax. pmin/pmax are pipe-separated witness-pair lists. Rows have no
// name column, so each case is named after its 1-based row number.
func loadGolden(path string) ([]verify.TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ranktau-verify: open golden corpus %q", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 6
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "ranktau-verify: parse golden corpus")
	}
	if len(records) > 0 && records[0][0] == "a" {
		records = records[1:]
	}

	out := make([]verify.TestCase, 0, len(records))
	for i, rec := range records {
		tmin, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ranktau-verify: tmin %q", rec[2])
		}
		tmax, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ranktau-verify: tmax %q", rec[3])
		}
		out = append(out, verify.TestCase{
			Name:             fmt.Sprintf("row-%d", i+1),
			A:                rec[0],
			B:                rec[1],
			GoldenTauMin:     tmin,
			GoldenMinWitness: splitWitnesses(rec[4]),
			GoldenTauMax:     tmax,
			GoldenMaxWitness: splitWitnesses(rec[5]),
		})
	}
	return out, nil
}

func splitWitnesses(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

// verifyCases drives every case in cases through ex, parses each solver's
// output, and checks it against the golden bounds. Extracted from run so
// the subprocess boundary (ex) can be substituted with a mock in tests.
func verifyCases(ctx context.Context, ex runner.Executor, binary string, extraArgs []string, cases []verify.TestCase, log *logging.Logger) []verify.TestResult {
	var results []verify.TestResult
	for _, tc := range cases {
		args := append(append([]string{}, extraArgs...), tc.A, tc.B)
		stdout, err := ex.Run(ctx, runner.Case{Binary: binary, Args: args})
		if err != nil {
			log.Warningf("case %q: %v", tc.Name, err)
			results = append(results, verify.TestResult{Case: tc.Name, Status: verify.StatusFail, Detail: err.Error()})
			continue
		}
		out, err := solverio.ParseAlgoOutput(stdout)
		if err != nil {
			log.Warningf("case %q: %v", tc.Name, err)
			results = append(results, verify.TestResult{Case: tc.Name, Status: verify.StatusFail, Detail: err.Error()})
			continue
		}
		results = append(results, verify.Verify(tc, out))
	}
	return results
}

func run(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.Exit("expected a solver binary to drive", 1)
	}

	log := rklog.NewLogger(ctx.String("log-level"), "ranktau-verify")

	cases, err := loadGolden(ctx.String("golden"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	binary := ctx.Args().Get(0)
	extraArgs := ctx.Args().Slice()[1:]

	results := verifyCases(context.Background(), runner.OSExecutor{}, binary, extraArgs, cases, log)

	passed := 0
	for _, r := range results {
		fmt.Printf("%-30s %-10s %s\n", r.Case, r.Status, r.Detail)
		if r.Status == verify.StatusPass || r.Status == verify.StatusComplete || r.Status == verify.StatusSkipped || r.Status == verify.StatusEmpty {
			passed++
		}
	}
	fmt.Printf("%d/%d cases accounted for\n", passed, len(results))

	if reportPath := ctx.String("report-csv"); reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer f.Close()
		if err := verify.WriteCSV(f, results); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	if passed != len(results) {
		return cli.Exit("verification found failing cases", 1)
	}
	return nil
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
