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
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/ranktau/ranktau/ranking"
)

// Variant selects the denominator used to normalise the weighted
// concordant/discordant sum into [-1, 1].
type Variant int

const (
	// VariantA normalises by the total weight summed over every pair.
	VariantA Variant = iota
	// VariantB normalises by the geometric mean of the two rankings' own
	// side totals, correcting for the extra weight ties remove from the
	// numerator.
	VariantB
	// VariantW is the withdrawn third denominator convention; rejected at
	// the API boundary rather than silently computed.
	VariantW
)

// ErrUnsupportedVariant is returned for VariantW, which is withdrawn: no
// kernel computes it.
var ErrUnsupportedVariant = errors.New("kendall: variant W is not supported")

func sign(d float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

func sortedElements(set map[ranking.Element]struct{}) []ranking.Element {
	out := make([]ranking.Element, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TauStrict computes weighted tau between two conjoint strict orders.
func TauStrict(a, b ranking.StrictOrder, w Weight, v Variant) (float64, error) {
	if v == VariantW {
		return 0, ErrUnsupportedVariant
	}
	if !a.IsDefined() || !b.IsDefined() {
		return 0, errors.New("kendall: both strict orders must be fully defined")
	}
	if err := a.EnsureConjoint(b); err != nil {
		return 0, err
	}

	posA := make(map[ranking.Element]float64, len(a))
	for i, e := range a {
		posA[e] = float64(i) + 1
	}
	posB := make(map[ranking.Element]float64, len(b))
	for i, e := range b {
		posB[e] = float64(i) + 1
	}

	items := sortedElements(a.ItemSet())
	return tauOver(items, posA, posB, w, v)
}

// TauPartial computes weighted tau between two conjoint partial orders,
// using each group's average rank as its position.
func TauPartial(a, b ranking.PartialOrder, w Weight, v Variant) (float64, error) {
	if v == VariantW {
		return 0, ErrUnsupportedVariant
	}
	if err := a.EnsureConjoint(b); err != nil {
		return 0, err
	}

	posA := AverageRankPositions(a)
	posB := AverageRankPositions(b)

	items := sortedElements(a.ItemSet())
	return tauOver(items, posA, posB, w, v)
}

// AverageRankPositions maps every element of p to its tie group's average
// (1-based) rank: base+1 for a singleton, the true midpoint for a wider
// group. Used both by TauPartial and by the graph solver, which needs each
// item's position in both rankings to evaluate the weight function while
// ordering edges for iteration.
func AverageRankPositions(p ranking.PartialOrder) map[ranking.Element]float64 {
	out := make(map[ranking.Element]float64, p.SetSize())
	base := 0
	for _, g := range p {
		avg := float64(2*base+len(g)-1)/2.0 + 1.0
		for _, e := range g {
			out[e] = avg
		}
		base += len(g)
	}
	return out
}

func tauOver(items []ranking.Element, posA, posB map[ranking.Element]float64, w Weight, v Variant) (float64, error) {
	var num, totalWeight float64
	var sideA, sideB float64

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			x, y := items[i], items[j]
			px := Position{A: posA[x], B: posB[x]}
			py := Position{A: posA[y], B: posB[y]}

			weight := w(px, py)
			sa := sign(posA[x] - posA[y])
			sb := sign(posB[x] - posB[y])

			num += weight * sa * sb
			totalWeight += weight
			sideA += weight * math.Abs(sa)
			sideB += weight * math.Abs(sb)
		}
	}

	var denom float64
	switch v {
	case VariantA:
		denom = totalWeight
	case VariantB:
		denom = math.Sqrt(sideA * sideB)
	default:
		return 0, ErrUnsupportedVariant
	}

	if denom == 0 {
		return math.NaN(), nil
	}
	return num / denom, nil
}
