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

package cliutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranktau/ranktau/kendall"
)

func TestWeightByNameKnownNames(t *testing.T) {
	names := []string{
		"unweighted", "", "hyperbolic-add", "hyperbolic-mult", "hyperbolic-sym-mult",
		"ap", "ap-high", "rbo", "rbo-other", "inv-left", "inv-right", "left", "right",
		"sum", "zero", "inv-log", "threshold-bin", "threshold", "expo-thresh",
	}
	for _, name := range names {
		w, err := WeightByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, w, name)
	}
}

func TestWeightByNameUnknown(t *testing.T) {
	_, err := WeightByName("nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWeight)
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("a")
	require.NoError(t, err)
	assert.Equal(t, kendall.VariantA, v)

	v, err = VariantByName("")
	require.NoError(t, err)
	assert.Equal(t, kendall.VariantA, v)

	v, err = VariantByName("b")
	require.NoError(t, err)
	assert.Equal(t, kendall.VariantB, v)
}

func TestVariantByNameRejectsW(t *testing.T) {
	_, err := VariantByName("w")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
