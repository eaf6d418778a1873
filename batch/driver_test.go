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

package batch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreservesOrderAcrossChunks(t *testing.T) {
	cases := make([]Case, 10)
	for i := range cases {
		cases[i] = Case{Name: string(rune('a' + i)), A: "x", B: "y"}
	}

	var all []Result[int]
	d := Driver{NumWorkers: 3, ChunkSize: 4}
	err := Run(context.Background(), d, cases, func(_ context.Context, c Case) (int, error) {
		return len(c.Name), nil
	}, func(chunk []Result[int]) error {
		all = append(all, chunk...)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, all, 10)
	for i, r := range all {
		assert.Equal(t, cases[i].Name, r.Case.Name)
	}
}

func TestRunCountsConcurrentCalls(t *testing.T) {
	cases := make([]Case, 20)
	for i := range cases {
		cases[i] = Case{Name: "c", A: "x", B: "y"}
	}
	var calls int32
	d := Driver{NumWorkers: 4, ChunkSize: 5}
	err := Run(context.Background(), d, cases, func(_ context.Context, _ Case) (struct{}, error) {
		atomic.AddInt32(&calls, 1)
		return struct{}{}, nil
	}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 20, calls)
}

func TestExpandGlobsDedupsAndSorts(t *testing.T) {
	out, err := ExpandGlobs([]string{"driver.go", "driver.go", "sqlite_cache.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"driver.go", "sqlite_cache.go"}, out)
}

func TestDedupSortRemovesDuplicatesAndSortsByLength(t *testing.T) {
	cases := []Case{
		{Name: "long", A: "aaaa", B: "bbbb"},
		{Name: "short", A: "a", B: "b"},
		{Name: "dup-of-long", A: "aaaa", B: "bbbb"},
	}
	out := DedupSort(cases)
	require.Len(t, out, 2)
	assert.Equal(t, "short", out[0].Name)
	assert.Equal(t, "long", out[1].Name)
}

func TestDedupSortMatchesStructurallyNotTextually(t *testing.T) {
	cases := []Case{
		{Name: "first", A: "(a b) c", B: "a b c"},
		{Name: "reordered-tie", A: "(b a) c", B: "a b c"},
		{Name: "distinct", A: "a (b c)", B: "a b c"},
	}
	out := DedupSort(cases)
	require.Len(t, out, 2)
	names := []string{out[0].Name, out[1].Name}
	assert.Contains(t, names, "first")
	assert.Contains(t, names, "distinct")
	assert.NotContains(t, names, "reordered-tie")
}
