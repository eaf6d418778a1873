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

// Package kendall implements the weighted Kendall tau kernel over strict and
// partial orders (variant A / B denominators), and the catalogue of named
// weight functions it can be parameterised with.
package kendall

import "math"

// Position is an item's (rank_in_A, rank_in_B) pair, canonicalised 1-based
// throughout the kernel: both strict-order indices and partial-order
// average ranks use 1-based positions.
type Position struct {
	A, B float64
}

// Weight is the total, non-negative weight function over a pair of items'
// positions in both rankings.
type Weight func(x, y Position) float64

// Unweighted is plain (unweighted) Kendall's tau: w == 1.
func Unweighted(Position, Position) float64 { return 1.0 }

// HyperbolicAdditive is the asymmetric additive hyperbolic weight (Vigna
// 2014), using the left ranking (A) as reference.
func HyperbolicAdditive(x, y Position) float64 {
	return 1.0/(x.A+1.0) + 1.0/(y.A+1.0)
}

// HyperbolicMultiplicative is the asymmetric multiplicative hyperbolic
// weight (Vigna 2014), using the left ranking (A) as reference.
func HyperbolicMultiplicative(x, y Position) float64 {
	return (1.0 / (x.A + 1.0)) * (1.0 / (y.A + 1.0))
}

// HyperbolicSymMult is the symmetric multiplicative hyperbolic weight
// (Vigna 2014), averaging the A-referenced and B-referenced terms.
func HyperbolicSymMult(x, y Position) float64 {
	return ((1.0/(x.A+1.0))*(1.0/(y.A+1.0)) + (1.0/(x.B+1.0))*(1.0/(y.B+1.0))) / 2.0
}

// AP is the weight achieving tau_AP (Yilmaz 2008), asymmetric on A.
func AP(x, y Position) float64 {
	return 1.0 / math.Max(x.A, y.A)
}

// APHigh mirrors AP but takes the closer (minimum) rank instead of the
// farther one.
func APHigh(x, y Position) float64 {
	return 1.0 / math.Min(x.A, y.A)
}

// Const returns a weight function that ignores its arguments and always
// returns c.
func Const(c float64) Weight {
	return func(Position, Position) float64 { return c }
}

// RBO is the RBO-style weight p^max(x0,y0), normalised by 1/(1-p).
func RBO(p float64) Weight {
	return func(x, y Position) float64 {
		return math.Pow(p, math.Max(x.A, y.A)) / (1.0 - p)
	}
}

// RBOOther is RBO without the 1/(1-p) normalisation.
func RBOOther(p float64) Weight {
	return func(x, y Position) float64 {
		return math.Pow(p, math.Max(x.A, y.A))
	}
}

// InvLeft weighs a pair by the reciprocal of the left item's A-rank.
func InvLeft(x, _ Position) float64 { return 1.0 / x.A }

// InvRight weighs a pair by the reciprocal of the right item's A-rank.
func InvRight(_, y Position) float64 { return 1.0 / y.A }

// Left weighs a pair by the left item's A-rank.
func Left(x, _ Position) float64 { return x.A }

// Right weighs a pair by the right item's A-rank.
func Right(_, y Position) float64 { return y.A }

// Sum weighs a pair by the sum of both items' A-ranks.
func Sum(x, y Position) float64 { return x.A + y.A }

// Zero always returns 0; establishes the W == 0 degenerate case in tests.
func Zero(Position, Position) float64 { return 0 }

// InvLog weighs a pair by 1/ln(x0+y0+1).
func InvLog(x, y Position) float64 {
	return 1.0 / math.Log(x.A+y.A+1.0)
}

// ThresholdBin is 1 for items ranked (A-side) above position 5, else 0.
func ThresholdBin(x, _ Position) float64 {
	if x.A < 5 {
		return 1
	}
	return 0
}

// Threshold decays geometrically up to rank 5, then drops to 0.
func Threshold(x, y Position) float64 {
	d := math.Max(x.A, y.A)
	if d <= 5 {
		return math.Pow(2, 5-d)
	}
	return 0
}

// ExpoThresh is Threshold without the cutoff past rank 5 (can go negative
// in the exponent, i.e. below 1).
func ExpoThresh(x, y Position) float64 {
	d := math.Max(x.A, y.A)
	return math.Pow(2, 5-d)
}
