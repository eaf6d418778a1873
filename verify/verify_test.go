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

package verify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktau/ranktau/solverio"
)

func goldenCase() TestCase {
	return TestCase{
		Name:             "case-1",
		GoldenTauMin:     -1.0,
		GoldenMinWitness: []string{"e2 e1 e0"},
		GoldenTauMax:     1.0,
		GoldenMaxWitness: []string{"e0 e1 e2"},
	}
}

func TestVerifyComplete(t *testing.T) {
	got := solverio.AlgoOut{TauMin: -1.0, MinWitness: "e2 e1 e0", TauMax: 1.0, MaxWitness: "e0 e1 e2"}
	r := Verify(goldenCase(), got)
	assert.Equal(t, StatusComplete, r.Status)
}

func TestVerifyPassWhenWitnessNotAMember(t *testing.T) {
	got := solverio.AlgoOut{TauMin: -1.0, MinWitness: "e1 e2 e0", TauMax: 1.0, MaxWitness: "e0 e1 e2"}
	r := Verify(goldenCase(), got)
	assert.Equal(t, StatusPass, r.Status)
	assert.Equal(t, FailWitnessNotMember, r.Fail)
}

func TestVerifyFailOnTauMismatch(t *testing.T) {
	got := solverio.AlgoOut{TauMin: -0.5, MinWitness: "e2 e1 e0", TauMax: 1.0, MaxWitness: "e0 e1 e2"}
	r := Verify(goldenCase(), got)
	assert.Equal(t, StatusFail, r.Status)
	assert.Equal(t, FailTauMismatch, r.Fail)
}

func TestVerifySkipped(t *testing.T) {
	got := solverio.AlgoOut{Skipped: true, SkipReason: "too many linear extensions"}
	r := Verify(goldenCase(), got)
	assert.Equal(t, StatusSkipped, r.Status)
}

func TestVerifyEmptyWhenNoGoldenWitnesses(t *testing.T) {
	tc := TestCase{Name: "degenerate"}
	got := solverio.AlgoOut{TauMin: 0, TauMax: 0}
	r := Verify(tc, got)
	assert.Equal(t, StatusEmpty, r.Status)
}

func TestVerifyWithinEpsilonCompletes(t *testing.T) {
	got := solverio.AlgoOut{TauMin: -1.0 + Epsilon/2, MinWitness: "e2 e1 e0", TauMax: 1.0, MaxWitness: "e0 e1 e2"}
	r := Verify(goldenCase(), got)
	assert.Equal(t, StatusComplete, r.Status)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []TestResult{Verify(goldenCase(), solverio.AlgoOut{TauMin: -1.0, MinWitness: "e2 e1 e0", TauMax: 1.0, MaxWitness: "e0 e1 e2"})}
	require.NoError(t, WriteCSV(&buf, rows))
	assert.Contains(t, buf.String(), "case-1")
	assert.Contains(t, buf.String(), "Complete")
}
