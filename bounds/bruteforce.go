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

package bounds

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/ranktau/ranktau/kendall"
	"github.com/ranktau/ranktau/ranking"
)

// DefaultMaxLinearExtensions is the brute-force solver's refusal threshold
// on the product of both rankings' linear-extension counts.
const DefaultMaxLinearExtensions = 5_000_000

// DefaultMaxWitnesses is the refusal threshold on the number of distinct
// extension pairs tying the current best bound.
const DefaultMaxWitnesses = 8000

// BruteForceConfig tunes the two refusal thresholds that keep the
// exhaustive solver from running forever on heavily-tied inputs.
type BruteForceConfig struct {
	MaxLinearExtensions uint64
	MaxWitnesses        int
}

// DefaultBruteForceConfig returns the default refusal thresholds.
func DefaultBruteForceConfig() BruteForceConfig {
	return BruteForceConfig{
		MaxLinearExtensions: DefaultMaxLinearExtensions,
		MaxWitnesses:        DefaultMaxWitnesses,
	}
}

// BruteForce computes exact tau bounds by evaluating every pair of linear
// extensions of a and b. It is exact but exponential in the number of tied
// items, and refuses to run when either configured threshold would be
// exceeded.
func BruteForce(a, b ranking.PartialOrder, w kendall.Weight, v kendall.Variant, cfg BruteForceConfig) (TauBounds, error) {
	if err := a.EnsureConjoint(b); err != nil {
		return TauBounds{}, err
	}
	if a.SetSize() < 2 {
		return TauBounds{}, ErrTooShort
	}

	countA := ranking.LinearExtCount(a)
	countB := ranking.LinearExtCount(b)
	product, overflowed := new(uint256.Int).MulOverflow(countA, countB)
	ceiling := uint256.NewInt(cfg.MaxLinearExtensions)
	if overflowed || product.Gt(ceiling) {
		return TauBounds{}, ErrTooManyLinearExtensions
	}

	extsA := ranking.Completions(a)
	extsB := ranking.Completions(b)

	var (
		minTau, maxTau     = math.Inf(1), math.Inf(-1)
		minWit, maxWit     ranking.StrictOrder
		minCount, maxCount int
		anyDefined         bool
	)

	for _, sa := range extsA {
		for _, sb := range extsB {
			tau, err := kendall.TauStrict(sa, sb, w, v)
			if err != nil {
				return TauBounds{}, err
			}
			if math.IsNaN(tau) {
				continue
			}
			anyDefined = true

			switch {
			case tau < minTau:
				minTau, minWit = tau, sa
				minCount = 1
			case tau == minTau:
				minCount++
			}
			switch {
			case tau > maxTau:
				maxTau, maxWit = tau, sa
				maxCount = 1
			case tau == maxTau:
				maxCount++
			}
			if minCount+maxCount > cfg.MaxWitnesses {
				return TauBounds{}, ErrTooManyWitnesses
			}
		}
	}

	if !anyDefined {
		return TauBounds{}, nil
	}

	return TauBounds{
		Min: Bound{Tau: minTau, Witness: minWit},
		Max: Bound{Tau: maxTau, Witness: maxWit},
	}, nil
}
