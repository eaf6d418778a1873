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

import "github.com/holiman/uint256"

// maxLinearExtCount is 2^128 - 1, the saturation ceiling for
// linear_ext_count. Using uint256.Int (already a teacher
// dependency for wide account-balance arithmetic) gives us headroom above
// 128 bits to detect overflow precisely instead of approximating it.
var maxLinearExtCount = func() *uint256.Int {
	one := uint256.NewInt(1)
	shifted := new(uint256.Int).Lsh(one, 128)
	return new(uint256.Int).Sub(shifted, one)
}()

func saturatingMul(a, b *uint256.Int) *uint256.Int {
	prod, overflowed := new(uint256.Int).MulOverflow(a, b)
	if overflowed || prod.Gt(maxLinearExtCount) {
		return new(uint256.Int).Set(maxLinearExtCount)
	}
	return prod
}

func factorial(n int) *uint256.Int {
	r := uint256.NewInt(1)
	for i := 2; i <= n; i++ {
		r = saturatingMul(r, uint256.NewInt(uint64(i)))
	}
	return r
}

// LinearExtCount returns the number of linear extensions of p: the product
// of the factorials of each tie-group's size, saturating at 2^128-1. Beyond
// that ceiling the returned value is only a lower bound on the true count.
func LinearExtCount(p PartialOrder) *uint256.Int {
	total := uint256.NewInt(1)
	for _, g := range p {
		total = saturatingMul(total, factorial(len(g)))
	}
	return total
}

// LinearExtCountStrict is always 1: a strict order has exactly one
// completion, itself.
func LinearExtCountStrict(StrictOrder) *uint256.Int { return uint256.NewInt(1) }

// PermutationCount returns the number of ways a and b could jointly have been
// completed: the product of their individual linear-extension counts,
// saturating at the same 2^128-1 ceiling as LinearExtCount.
func PermutationCount(a, b PartialOrder) *uint256.Int {
	return saturatingMul(LinearExtCount(a), LinearExtCount(b))
}
