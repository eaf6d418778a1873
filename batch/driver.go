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

// Package batch drives a large collection of ranking-pair cases through a
// processing function with a bounded worker pool, chunking the input so
// partial progress can be serialized between chunks, grounded on the
// teacher's transaction-level worker pool in executor.runTransactions.
package batch

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ranktau/ranktau/ranking"
)

// Case is one ranking pair to process, named for reporting.
type Case struct {
	Name string
	A, B string
}

// Result pairs a Case with whatever its processing function produced.
type Result[T any] struct {
	Case  Case
	Value T
	Err   error
}

// Driver configures chunked, parallel processing of a case list.
type Driver struct {
	// NumWorkers bounds concurrent in-flight cases per chunk. <= 0 means
	// runtime.NumCPU().
	NumWorkers int
	// ChunkSize bounds how many cases are in flight before results are
	// flushed back to the caller in input order. <= 0 means 256; callers
	// processing large corpora may want to raise this.
	ChunkSize int
}

// DefaultDriver returns a Driver sized to the host's CPU count with the
// smaller, interactive-run chunk size.
func DefaultDriver() Driver {
	return Driver{NumWorkers: runtime.NumCPU(), ChunkSize: 256}
}

// Run processes cases chunk by chunk: within a chunk, up to NumWorkers
// cases run concurrently; chunks themselves run strictly in sequence, so
// onChunk sees every chunk's results, in input order, before the next
// chunk starts.
func Run[T any](ctx context.Context, d Driver, cases []Case, process func(context.Context, Case) (T, error), onChunk func([]Result[T]) error) error {
	numWorkers := d.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	chunkSize := d.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 256
	}

	for start := 0; start < len(cases); start += chunkSize {
		end := start + chunkSize
		if end > len(cases) {
			end = len(cases)
		}
		chunk := cases[start:end]

		results := make([]Result[T], len(chunk))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(numWorkers)

		for i, c := range chunk {
			i, c := i, c
			g.Go(func() error {
				v, err := process(gctx, c)
				results[i] = Result[T]{Case: c, Value: v, Err: err}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return errors.Wrap(err, "batch: chunk processing")
		}
		if onChunk != nil {
			if err := onChunk(results); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadCasesFromCSV reads cases from a CSV file with columns name,a,b (no
// header).
func LoadCasesFromCSV(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: open %q", path)
	}
	defer f.Close()
	return readCasesCSV(f)
}

func readCasesCSV(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "batch: parse case csv")
	}
	out := make([]Case, len(records))
	for i, rec := range records {
		out[i] = Case{Name: rec[0], A: rec[1], B: rec[2]}
	}
	return out, nil
}

// ExpandGlobs resolves shell glob patterns into a sorted, deduplicated list
// of file paths.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, errors.Wrapf(err, "batch: glob %q", pat)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// DedupSort removes structurally identical (A, B) pairs — same tokens in the
// same tie-group partition, regardless of in-group ordering; pairs
// that differ only in token names stay distinct — and sorts
// the remainder by combined input length, shortest first, so cheap cases
// surface results early in a long run.
func DedupSort(cases []Case) []Case {
	seen := make(map[string]bool, len(cases))
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		key := dedupKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].A)+len(out[i].B) < len(out[j].A)+len(out[j].B)
	})
	return out
}

// dedupKey canonicalises a case's pair of ranking strings so that textually
// different but structurally identical partial orders (e.g. "(a b) c" and
// "(b a) c") map to the same key. Cases that fail to parse fall back to
// their raw strings, so they are simply never deduped against anything
// rather than dropped or erroring here; the parse failure still surfaces
// later, in the processing step proper.
func dedupKey(c Case) string {
	m := ranking.NewTokenMap()
	pa, errA := ranking.Parse(c.A, m)
	pb, errB := ranking.Parse(c.B, m)
	if errA != nil || errB != nil {
		return "raw:" + c.A + "::" + c.B
	}
	return canonicalPartialOrder(pa, m) + "::" + canonicalPartialOrder(pb, m)
}

// canonicalPartialOrder renders p as groups of sorted token strings,
// joined in group order, so comparison is insensitive to both tie-group
// member order and the identity of the token map that produced p.
func canonicalPartialOrder(p ranking.PartialOrder, m *ranking.TokenMap) string {
	groups := make([]string, len(p))
	for i, g := range p {
		toks := make([]string, len(g))
		for j, e := range g {
			toks[j] = m.Token(e)
		}
		sort.Strings(toks)
		groups[i] = strings.Join(toks, ",")
	}
	return strings.Join(groups, "|")
}
