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

// Completions enumerates every linear extension of p: the Cartesian product
// of each tie-group's intra-group permutations, concatenated group by
// group. It is used only by the brute-force solver, which is
// responsible for refusing to call this when LinearExtCount(p) is too large.
func Completions(p PartialOrder) []StrictOrder {
	groupPerms := make([][]TieGroup, len(p))
	for i, g := range p {
		groupPerms[i] = permutations(g)
	}

	combos := cartesianProduct(groupPerms)
	out := make([]StrictOrder, 0, len(combos))
	for _, combo := range combos {
		flat := make(StrictOrder, 0, p.SetSize())
		for _, g := range combo {
			flat = append(flat, g...)
		}
		out = append(out, flat)
	}
	return out
}

// permutations returns every ordering of g's elements.
func permutations(g TieGroup) []TieGroup {
	if len(g) == 0 {
		return nil
	}
	work := append(TieGroup(nil), g...)
	var out []TieGroup
	permute(work, 0, &out)
	return out
}

func permute(a TieGroup, k int, out *[]TieGroup) {
	if k == len(a) {
		*out = append(*out, append(TieGroup(nil), a...))
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, out)
		a[k], a[i] = a[i], a[k]
	}
}

// cartesianProduct returns every combination picking exactly one slice from
// each entry of groupPerms, preserving group order.
func cartesianProduct(groupPerms [][]TieGroup) [][]TieGroup {
	result := [][]TieGroup{{}}
	for _, options := range groupPerms {
		var next [][]TieGroup
		for _, partial := range result {
			for _, opt := range options {
				combo := make([]TieGroup, len(partial), len(partial)+1)
				copy(combo, partial)
				combo = append(combo, opt)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
