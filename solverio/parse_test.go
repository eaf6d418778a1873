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

package solverio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgoOutputWellFormed(t *testing.T) {
	out, err := ParseAlgoOutput("tmin -1.000000\nminp e2 e1 e0\ntmax 1.000000\nmaxp e0 e1 e2\n")
	require.NoError(t, err)
	assert.Equal(t, -1.0, out.TauMin)
	assert.Equal(t, "e2 e1 e0", out.MinWitness)
	assert.Equal(t, 1.0, out.TauMax)
	assert.Equal(t, "e0 e1 e2", out.MaxWitness)
	assert.False(t, out.Skipped)
}

func TestParseAlgoOutputSkipped(t *testing.T) {
	out, err := ParseAlgoOutput("skipped too many linear extensions\n")
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Equal(t, "too many linear extensions", out.SkipReason)
}

func TestParseAlgoOutputMissingLine(t *testing.T) {
	_, err := ParseAlgoOutput("tmin -1.000000\nminp e2 e1 e0\ntmax 1.000000\n")
	assert.ErrorIs(t, err, ErrParseOutput)
}

func TestParseAlgoOutputBadFloat(t *testing.T) {
	_, err := ParseAlgoOutput("tmin notafloat\nminp x\ntmax 1.0\nmaxp y\n")
	assert.ErrorIs(t, err, ErrParseOutput)
}

func TestParseAlgoOutputUnrecognisedLine(t *testing.T) {
	_, err := ParseAlgoOutput("garbage line\n")
	assert.ErrorIs(t, err, ErrParseOutput)
}

func TestParseAlgoOutputIgnoresBlankLines(t *testing.T) {
	out, err := ParseAlgoOutput("tmin 0\n\nminp a\ntmax 0\nmaxp b\n\n")
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.TauMin)
}
