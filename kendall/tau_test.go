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

package kendall

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktau/ranktau/ranking"
)

func TestTauStrictIdenticalOrdersIsOne(t *testing.T) {
	a := ranking.StrictOrder{0, 1, 2, 3}
	tau, err := TauStrict(a, a, Unweighted, VariantA)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tau, 1e-9)
}

func TestTauStrictReversedOrdersIsMinusOne(t *testing.T) {
	a := ranking.StrictOrder{0, 1, 2, 3}
	b := ranking.StrictOrder{3, 2, 1, 0}
	tau, err := TauStrict(a, b, Unweighted, VariantA)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, tau, 1e-9)
}

func TestTauStrictNotConjointErrors(t *testing.T) {
	a := ranking.StrictOrder{0, 1, 2}
	b := ranking.StrictOrder{0, 1, 9}
	_, err := TauStrict(a, b, Unweighted, VariantA)
	assert.ErrorIs(t, err, ranking.ErrNotConjoint)
}

func TestTauStrictRejectsVariantW(t *testing.T) {
	a := ranking.StrictOrder{0, 1}
	_, err := TauStrict(a, a, Unweighted, VariantW)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestTauStrictUndefinedErrors(t *testing.T) {
	a := ranking.NewEmptyStrict(2)
	b := ranking.StrictOrder{0, 1}
	_, err := TauStrict(a, b, Unweighted, VariantA)
	assert.Error(t, err)
}

func TestTauPartialIdenticalTiesIsOne(t *testing.T) {
	a := ranking.PartialOrder{{0}, {1, 2}, {3}}
	tau, err := TauPartial(a, a, Unweighted, VariantA)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tau, 1e-9)
}

func TestTauPartialFullTieIsNaNWithZeroWeight(t *testing.T) {
	a := ranking.PartialOrder{{0, 1}}
	b := ranking.PartialOrder{{0, 1}}
	tau, err := TauPartial(a, b, Zero, VariantA)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tau))
}

func TestTauPartialVariantBNormalisesBySideTotals(t *testing.T) {
	a := ranking.PartialOrder{{0}, {1, 2}, {3}}
	b := ranking.PartialOrder{{0}, {1}, {2}, {3}}
	tauA, err := TauPartial(a, b, Unweighted, VariantA)
	require.NoError(t, err)
	tauB, err := TauPartial(a, b, Unweighted, VariantB)
	require.NoError(t, err)
	assert.NotEqual(t, tauA, tauB)
}

func TestTauPartialRejectsVariantW(t *testing.T) {
	a := ranking.PartialOrder{{0}, {1}}
	_, err := TauPartial(a, a, Unweighted, VariantW)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestTauPartialNotConjointErrors(t *testing.T) {
	a := ranking.PartialOrder{{0}, {1}}
	b := ranking.PartialOrder{{0}, {9}}
	_, err := TauPartial(a, b, Unweighted, VariantA)
	assert.ErrorIs(t, err, ranking.ErrNotConjoint)
}

func TestTauStrictWithHyperbolicWeightFavoursTopRanks(t *testing.T) {
	agree := ranking.StrictOrder{0, 1, 2, 3}
	swapTop := ranking.StrictOrder{1, 0, 2, 3}
	swapBottom := ranking.StrictOrder{0, 1, 3, 2}

	tauTop, err := TauStrict(agree, swapTop, HyperbolicAdditive, VariantA)
	require.NoError(t, err)
	tauBottom, err := TauStrict(agree, swapBottom, HyperbolicAdditive, VariantA)
	require.NoError(t, err)

	assert.Less(t, tauTop, tauBottom)
}

func TestAverageRankPositionsMidpointForPair(t *testing.T) {
	p := ranking.PartialOrder{{0, 1}}
	pos := AverageRankPositions(p)
	assert.InDelta(t, 1.5, pos[0], 1e-9)
	assert.InDelta(t, 1.5, pos[1], 1e-9)
}

func TestAverageRankPositionsSingletonIsOneBased(t *testing.T) {
	p := ranking.PartialOrder{{0}, {1}}
	pos := AverageRankPositions(p)
	assert.InDelta(t, 1.0, pos[0], 1e-9)
	assert.InDelta(t, 2.0, pos[1], 1e-9)
}
