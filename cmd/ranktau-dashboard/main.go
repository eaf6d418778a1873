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

// Command ranktau-dashboard serves a per-case bounds CSV (columns case,
// tau_min, min_witness, tau_max, max_witness, skipped, skip_reason) as a
// small set of go-echarts charts over HTTP. It does not read the CSV that
// ranktau-eval writes.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ranktau/ranktau/internal/dashboard"
)

const boundsRef = "bounds"
const widthRef = "width"
const outcomesRef = "outcomes"

const mainHTML = `
<!DOCTYPE html>
<html lang="en">
  <head><meta charset="utf-8"><title>Ranktau Dashboard</title></head>
  <body>
    <h1>Ranktau Dashboard</h1>
    <ul>
    <li><h3><a href="/` + boundsRef + `">Tau Bounds</a></h3></li>
    <li><h3><a href="/` + widthRef + `">Bound Width</a></h3></li>
    <li><h3><a href="/` + outcomesRef + `">Solver Outcomes</a></h3></li>
    </ul>
  </body>
</html>
`

var (
	csvFlag  = &cli.StringFlag{Name: "csv", Required: true, Usage: "per-case bounds CSV (case,tau_min,min_witness,tau_max,max_witness,skipped,skip_reason)"}
	addrFlag = &cli.StringFlag{Name: "addr", Value: ":8088", Usage: "listen address"}
)

// App is ranktau-dashboard's command tree.
var App = cli.App{
	Name:   "ranktau-dashboard",
	Usage:  "serve a dashboard of eval results",
	Flags:  []cli.Flag{csvFlag, addrFlag},
	Action: run,
}

func run(ctx *cli.Context) error {
	rows, err := dashboard.LoadCSV(ctx.String("csv"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, mainHTML)
	})
	http.HandleFunc("/"+boundsRef, func(w http.ResponseWriter, r *http.Request) {
		_ = dashboard.BoundsChart(rows).Render(w)
	})
	http.HandleFunc("/"+widthRef, func(w http.ResponseWriter, r *http.Request) {
		_ = dashboard.WidthChart(rows).Render(w)
	})
	http.HandleFunc("/"+outcomesRef, func(w http.ResponseWriter, r *http.Request) {
		_ = dashboard.SkipChart(rows).Render(w)
	})

	addr := ctx.String("addr")
	fmt.Printf("ranktau-dashboard: listening on %s\n", addr)
	return http.ListenAndServe(addr, nil)
}

func main() {
	if err := App.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
