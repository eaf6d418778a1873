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
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrNotConjoint is returned whenever two rankings are required to share an
// item set but do not.
var ErrNotConjoint = errors.New("ranking: not conjoint")

// TieGroup is a non-empty list of elements, mutually tied, with no
// duplicates within one partial order.
type TieGroup []Element

// PartialOrder is an ordered sequence of tie groups: every element of group i
// outranks every element of group i+1, elements within a group are tied.
type PartialOrder []TieGroup

// StrictOrder is a fully-defined total order: one slot per item, no repeats.
// A slot holding Undefined means the order is still under construction.
type StrictOrder []Element

// Ranking is the small, closed capability set shared by PartialOrder and
// StrictOrder. Prefer this tagged-variant dispatch over a deep subtype
// hierarchy: the two representations differ only in a handful of semantics
// (get_at, insert_at, linear-extension count).
type Ranking interface {
	IsDefined() bool
	SetSize() int
	ItemSet() map[Element]struct{}
	FixedIndices() []int
}

// NewEmptyStrict returns a StrictOrder of n undefined slots.
func NewEmptyStrict(n int) StrictOrder {
	s := make(StrictOrder, n)
	for i := range s {
		s[i] = Undefined
	}
	return s
}

func (s StrictOrder) IsDefined() bool {
	for _, e := range s {
		if e == Undefined {
			return false
		}
	}
	return true
}

func (s StrictOrder) SetSize() int { return len(s) }

func (s StrictOrder) RankEq(other StrictOrder) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s StrictOrder) ItemSet() map[Element]struct{} {
	out := make(map[Element]struct{}, len(s))
	for _, e := range s {
		if e != Undefined {
			out[e] = struct{}{}
		}
	}
	return out
}

// GetAt returns the element at slot idx, or Undefined if unset.
func (s StrictOrder) GetAt(idx int) Element { return s[idx] }

// InsertAt fills slot p with e, failing if the slot is already taken.
func (s StrictOrder) InsertAt(e Element, p int) error {
	if s[p] != Undefined {
		return errors.Newf("ranking: spot taken, tried to insert %v at [%d] of %v", e, p, s)
	}
	s[p] = e
	return nil
}

func (s StrictOrder) FixedIndices() []int {
	out := make([]int, 0, len(s))
	for i, e := range s {
		if e != Undefined {
			out = append(out, i)
		}
	}
	return out
}

// EnsureConjoint fails with ErrNotConjoint if s and other do not cover the
// same item set.
func (s StrictOrder) EnsureConjoint(other StrictOrder) error {
	set := s.ItemSet()
	for _, e := range other {
		if e == Undefined {
			continue
		}
		if _, ok := set[e]; !ok {
			return errors.Wrapf(ErrNotConjoint, "a=%v b=%v", s, other)
		}
	}
	if len(set) != len(other.ItemSet()) {
		return errors.Wrapf(ErrNotConjoint, "a=%v b=%v", s, other)
	}
	return nil
}

// NewEmptyPartial returns an empty partial order (k=0 groups).
func NewEmptyPartial() PartialOrder { return PartialOrder{} }

func (p PartialOrder) IsDefined() bool {
	for _, g := range p {
		if len(g) == 0 {
			return false
		}
	}
	return true
}

func (p PartialOrder) SetSize() int {
	n := 0
	for _, g := range p {
		n += len(g)
	}
	return n
}

func (p PartialOrder) ItemSet() map[Element]struct{} {
	out := make(map[Element]struct{})
	for _, g := range p {
		for _, e := range g {
			out[e] = struct{}{}
		}
	}
	return out
}

func sortedEq(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]Element(nil), a...)
	sb := append([]Element(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// RankEq compares two partial orders group-wise, by set equality within each
// corresponding group (order within a tie group is not significant).
func (p PartialOrder) RankEq(other PartialOrder) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !sortedEq(p[i], other[i]) {
			return false
		}
	}
	return true
}

// GetAt returns the element at position idx and true only if idx falls
// within a singleton group; otherwise ok is false.
func (p PartialOrder) GetAt(idx int) (e Element, ok bool) {
	i := 0
	for _, g := range p {
		if len(g) == 1 && i == idx {
			return g[0], true
		}
		i += len(g)
		if i > idx {
			return Undefined, false
		}
	}
	return Undefined, false
}

// AllPossibleAt returns every element of the tie group covering position
// idx, or nil if idx is out of range.
func (p PartialOrder) AllPossibleAt(idx int) []Element {
	i := 0
	for _, g := range p {
		if idx >= i && idx < i+len(g) {
			return g
		}
		i += len(g)
	}
	return nil
}

func (p PartialOrder) FixedIndices() []int {
	var out []int
	idx := 0
	for _, g := range p {
		if len(g) == 1 {
			out = append(out, idx)
		}
		idx += len(g)
	}
	return out
}

// EnsureConjoint fails with ErrNotConjoint if p and other do not cover the
// same item set.
func (p PartialOrder) EnsureConjoint(other PartialOrder) error {
	set := p.ItemSet()
	for _, g := range other {
		for _, e := range g {
			if _, ok := set[e]; !ok {
				return errors.Wrapf(ErrNotConjoint, "a=%s b=%s", Format(p), Format(other))
			}
		}
	}
	if len(set) != len(other.ItemSet()) {
		return errors.Wrapf(ErrNotConjoint, "a=%s b=%s", Format(p), Format(other))
	}
	return nil
}

// SetEq reports whether other's item set is a subset of p's (mirrors the
// Rust original's asymmetric set_eq, used only for a quick conjointness
// pre-check before the stricter EnsureConjoint).
func (p PartialOrder) SetEq(other PartialOrder) bool {
	set := p.ItemSet()
	for _, g := range other {
		for _, e := range g {
			if _, ok := set[e]; !ok {
				return false
			}
		}
	}
	return true
}

// StrictFromPartial converts p to a StrictOrder, failing if any group has
// more than one element.
func StrictFromPartial(p PartialOrder) (StrictOrder, error) {
	out := make(StrictOrder, 0, len(p))
	for _, g := range p {
		if len(g) != 1 {
			return nil, errors.Newf("ranking: %s is not a strict order", Format(p))
		}
		out = append(out, g[0])
	}
	return out, nil
}
