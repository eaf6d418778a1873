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

// Package bounds computes tight bounds on weighted Kendall's tau between two
// partial rankings, either exactly (brute force over every linear extension)
// or in polynomial time (graph-based heuristic solver).
package bounds

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/ranktau/ranktau/ranking"
)

// ErrNotConjoint is returned when the two input rankings do not share an
// item set; re-exported here so callers of this package never need to
// import ranking just to check the sentinel.
var ErrNotConjoint = ranking.ErrNotConjoint

// ErrTooShort is returned when a ranking's item set is smaller than the
// minimum solvable size (two items).
var ErrTooShort = errors.New("bounds: ranking has fewer than two items")

// ErrTooManyLinearExtensions is returned by the brute-force solver when the
// product of linear-extension counts exceeds its configured ceiling.
var ErrTooManyLinearExtensions = errors.New("bounds: too many linear extensions to enumerate")

// ErrTooManyWitnesses is returned by the brute-force solver when the number
// of distinct optimal witnesses exceeds its configured ceiling.
var ErrTooManyWitnesses = errors.New("bounds: too many witnesses to track")

// ErrInvariantViolation marks a condition the graph solver asserts cannot
// happen (e.g. a built target graph containing a cycle); seeing it means a
// bug in the solver, not a bad input.
var ErrInvariantViolation = errors.New("bounds: solver invariant violated")

// Bound is one extreme (min or max) of achievable tau, together with a
// witness strict order attaining it.
type Bound struct {
	Tau     float64
	Witness ranking.StrictOrder
}

// String renders the bound as "tau witness", using interned element names.
func (b Bound) String() string {
	return fmt.Sprintf("%.6f %s", b.Tau, ranking.FormatStrict(b.Witness))
}

// Display renders the bound substituting the caller's original tokens.
func (b Bound) Display(m *ranking.TokenMap) string {
	return fmt.Sprintf("%.6f %s", b.Tau, ranking.FormatStrictReplacement(b.Witness, m))
}

// TauBounds is the [min, max] range of achievable weighted tau across every
// pair of linear extensions of two partial orders.
type TauBounds struct {
	Min Bound
	Max Bound
}

// String renders both bounds, min first, mirroring the solver CLIs' stdout
// contract ("tmin ...\nminp ...\ntmax ...\nmaxp ...").
func (t TauBounds) String() string {
	return fmt.Sprintf("tmin %.6f\nminp %s\ntmax %.6f\nmaxp %s",
		t.Min.Tau, ranking.FormatStrict(t.Min.Witness),
		t.Max.Tau, ranking.FormatStrict(t.Max.Witness))
}
