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

// Package dashboard renders a per-case bounds CSV (columns case, tau_min,
// min_witness, tau_max, max_witness, skipped, skip_reason) as a set of
// go-echarts charts served over HTTP. It does not read the evaluation CSV
// that ranktau-eval writes, whose columns differ.
package dashboard

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Row is one per-case bounds row.
type Row struct {
	Case       string
	TauMin     float64
	TauMax     float64
	Skipped    bool
	SkipReason string
}

// Width is TauMax - TauMin, the bound's looseness.
func (r Row) Width() float64 { return r.TauMax - r.TauMin }

// LoadCSV reads a 7-column per-case bounds CSV (see the package doc); the
// 11-column CSV ranktau-eval writes is rejected.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dashboard: open %q", path)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 7
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: parse eval csv")
	}
	if len(records) == 0 {
		return nil, nil
	}
	// skip the header row, when present.
	if records[0][0] == "case" {
		records = records[1:]
	}

	out := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{Case: rec[0], SkipReason: rec[6]}
		row.Skipped = rec[5] == "true"
		if !row.Skipped {
			row.TauMin, err = strconv.ParseFloat(rec[1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dashboard: tau_min %q", rec[1])
			}
			row.TauMax, err = strconv.ParseFloat(rec[3], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dashboard: tau_max %q", rec[3])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeChalk})
}

func titleOpts(title, subtitle string) charts.GlobalOpts {
	return charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle})
}

func toolboxOpts() charts.GlobalOpts {
	return charts.WithToolboxOpts(opts.Toolbox{
		Show: true,
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Title: "Save"},
			DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: true},
		},
	})
}

// BoundsChart plots tau_min and tau_max per case as a line chart, skipping
// any case the solver refused.
func BoundsChart(rows []Row) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(),
		toolboxOpts(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		titleOpts("Tau Bounds per Case", "tau_min and tau_max"),
	)

	labels := make([]string, 0, len(rows))
	mins := make([]opts.LineData, 0, len(rows))
	maxs := make([]opts.LineData, 0, len(rows))
	for _, r := range rows {
		if r.Skipped {
			continue
		}
		labels = append(labels, r.Case)
		mins = append(mins, opts.LineData{Value: r.TauMin})
		maxs = append(maxs, opts.LineData{Value: r.TauMax})
	}
	line.SetXAxis(labels).
		AddSeries("tau_min", mins).
		AddSeries("tau_max", maxs)
	return line
}

// WidthChart plots each case's bound width (tau_max - tau_min) as a bar
// chart, the main measure of how much a case's ties loosened the bound.
func WidthChart(rows []Row) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(),
		toolboxOpts(),
		titleOpts("Bound Width per Case", "tau_max - tau_min"),
	)

	labels := make([]string, 0, len(rows))
	widths := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		if r.Skipped {
			continue
		}
		labels = append(labels, r.Case)
		widths = append(widths, opts.BarData{Value: r.Width()})
	}
	bar.SetXAxis(labels).AddSeries("width", widths)
	return bar
}

// SkipSummary counts skipped vs. solved cases.
type SkipSummary struct {
	Solved, Skipped int
}

// Summarize tallies how many of rows were skipped by the solver.
func Summarize(rows []Row) SkipSummary {
	var s SkipSummary
	for _, r := range rows {
		if r.Skipped {
			s.Skipped++
		} else {
			s.Solved++
		}
	}
	return s
}

// SkipChart renders the solved/skipped split as a pie chart.
func SkipChart(rows []Row) *charts.Pie {
	s := Summarize(rows)
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(),
		toolboxOpts(),
		titleOpts("Solved vs. Skipped", ""),
	)
	pie.AddSeries("outcomes", []opts.PieData{
		{Name: "solved", Value: s.Solved},
		{Name: "skipped", Value: s.Skipped},
	})
	return pie
}
