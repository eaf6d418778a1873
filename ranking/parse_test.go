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

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtomsOnly(t *testing.T) {
	m := NewTokenMap()
	p, err := Parse("a b c", m)
	require.NoError(t, err)
	require.Len(t, p, 3)
	for _, g := range p {
		assert.Len(t, g, 1)
	}
}

func TestParseSingleTieGroup(t *testing.T) {
	m := NewTokenMap()
	p, err := Parse("a (b c) d", m)
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Len(t, p[0], 1)
	assert.Len(t, p[1], 2)
	assert.Len(t, p[2], 1)
}

func TestParseTieGroupOfThree(t *testing.T) {
	m := NewTokenMap()
	p, err := Parse("(x y z) w", m)
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Len(t, p[0], 3)
	assert.Len(t, p[1], 1)
}

func TestParseSingletonWrittenWithParens(t *testing.T) {
	m := NewTokenMap()
	// parenthesised groups need two or more atoms, so "(b)" fails the grammar.
	_, err := Parse("a (b) c", m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputFormat)
}

func TestParseInternsConsistently(t *testing.T) {
	m := NewTokenMap()
	p, err := Parse("a b a", m)
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, p[0][0], p[2][0])
	assert.Equal(t, 2, m.Len())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	m := NewTokenMap()
	_, err := Parse("a (b", m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputFormat)
}

func TestParseRejectsEmptyGroup(t *testing.T) {
	m := NewTokenMap()
	_, err := Parse("a () b", m)
	require.Error(t, err)
}

func TestParseRejectsPunctuation(t *testing.T) {
	m := NewTokenMap()
	_, err := Parse("a, b", m)
	require.Error(t, err)
}

func TestParseFormatRoundTrip(t *testing.T) {
	m := NewTokenMap()
	p, err := Parse("a (b c) d", m)
	require.NoError(t, err)
	assert.Equal(t, "e0 (e1 e2) e3", Format(p))
	assert.Equal(t, "a (b c) d", FormatReplacement(p, m))
}
