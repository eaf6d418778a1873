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

import "github.com/ranktau/ranktau/ranking"

// TieStats summarises the tie structure of a conjoint ranking pair,
// chaining both rankings' tie groups together as the evaluation corpus'
// column definitions require: a group contributes only once it has more
// than one member.
type TieStats struct {
	SumOfTieLengths int
	TieCount        int
	LongestTie      int
}

// ComputeTieStats walks every tie group of a and b and accumulates TieStats
// over groups with more than one member.
func ComputeTieStats(a, b ranking.PartialOrder) TieStats {
	var st TieStats
	accumulate := func(p ranking.PartialOrder) {
		for _, g := range p {
			if len(g) <= 1 {
				continue
			}
			st.SumOfTieLengths += len(g)
			st.TieCount++
			if len(g) > st.LongestTie {
				st.LongestTie = len(g)
			}
		}
	}
	accumulate(a)
	accumulate(b)
	return st
}

// FracTies is the fraction of the two rankings' combined slots that sit in
// a tie group of size greater than one.
func FracTies(length int, sumOfTieLengths int) float64 {
	if length == 0 {
		return 0
	}
	return float64(sumOfTieLengths) / float64(2*length)
}
