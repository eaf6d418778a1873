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

func TestStrictOrderInsertAndDefined(t *testing.T) {
	s := NewEmptyStrict(3)
	assert.False(t, s.IsDefined())

	require.NoError(t, s.InsertAt(Element(0), 0))
	require.NoError(t, s.InsertAt(Element(1), 1))
	require.NoError(t, s.InsertAt(Element(2), 2))
	assert.True(t, s.IsDefined())
}

func TestStrictOrderInsertAtTakenSlot(t *testing.T) {
	s := NewEmptyStrict(2)
	require.NoError(t, s.InsertAt(Element(0), 0))
	err := s.InsertAt(Element(1), 0)
	assert.Error(t, err)
}

func TestStrictOrderFixedIndices(t *testing.T) {
	s := NewEmptyStrict(3)
	require.NoError(t, s.InsertAt(Element(5), 1))
	assert.Equal(t, []int{1}, s.FixedIndices())
}

func TestStrictOrderEnsureConjoint(t *testing.T) {
	a := StrictOrder{0, 1, 2}
	b := StrictOrder{2, 1, 0}
	assert.NoError(t, a.EnsureConjoint(b))

	c := StrictOrder{0, 1, 3}
	assert.ErrorIs(t, a.EnsureConjoint(c), ErrNotConjoint)
}

func TestPartialOrderIsDefined(t *testing.T) {
	p := PartialOrder{{0}, {1, 2}}
	assert.True(t, p.IsDefined())

	empty := PartialOrder{{0}, {}}
	assert.False(t, empty.IsDefined())
}

func TestPartialOrderSetSize(t *testing.T) {
	p := PartialOrder{{0}, {1, 2}, {3}}
	assert.Equal(t, 4, p.SetSize())
}

func TestPartialOrderRankEqIgnoresIntraGroupOrder(t *testing.T) {
	a := PartialOrder{{0}, {1, 2}}
	b := PartialOrder{{0}, {2, 1}}
	assert.True(t, a.RankEq(b))

	c := PartialOrder{{0}, {1, 3}}
	assert.False(t, a.RankEq(c))
}

func TestPartialOrderGetAtOnlySingletons(t *testing.T) {
	p := PartialOrder{{0}, {1, 2}, {3}}
	e, ok := p.GetAt(0)
	assert.True(t, ok)
	assert.Equal(t, Element(0), e)

	_, ok = p.GetAt(1)
	assert.False(t, ok)

	e, ok = p.GetAt(3)
	assert.True(t, ok)
	assert.Equal(t, Element(3), e)
}

func TestPartialOrderAllPossibleAt(t *testing.T) {
	p := PartialOrder{{0}, {1, 2}, {3}}
	assert.Equal(t, TieGroup{1, 2}, p.AllPossibleAt(1))
	assert.Equal(t, TieGroup{1, 2}, p.AllPossibleAt(2))
}

func TestPartialOrderFixedIndices(t *testing.T) {
	p := PartialOrder{{0}, {1, 2}, {3}}
	assert.Equal(t, []int{0, 3}, p.FixedIndices())
}

func TestPartialOrderEnsureConjoint(t *testing.T) {
	a := PartialOrder{{0}, {1, 2}}
	b := PartialOrder{{2, 1}, {0}}
	assert.NoError(t, a.EnsureConjoint(b))

	c := PartialOrder{{0}, {1, 9}}
	assert.ErrorIs(t, a.EnsureConjoint(c), ErrNotConjoint)
}

func TestStrictFromPartial(t *testing.T) {
	p := PartialOrder{{0}, {1}, {2}}
	s, err := StrictFromPartial(p)
	require.NoError(t, err)
	assert.Equal(t, StrictOrder{0, 1, 2}, s)

	tied := PartialOrder{{0}, {1, 2}}
	_, err = StrictFromPartial(tied)
	assert.Error(t, err)
}
