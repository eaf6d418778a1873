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

// Package ranking implements the partial/strict order algebra: parsing the
// textual ranking grammar, the tie-group data model, and item-set operations
// shared by every bound solver.
package ranking

import "fmt"

// Element is a symbolic atom, interned from an input token. Elements compare
// by ordinary integer equality and order totally by their numeric value,
// which is also their first-appearance order within the case that created
// them.
type Element int

// Undefined marks an unfilled slot in a StrictOrder under construction.
const Undefined Element = -1

func (e Element) String() string {
	if e == Undefined {
		return "<empty>"
	}
	return fmt.Sprintf("e%d", int(e))
}

// TokenMap is the bidirectional token<->element mapping scoped to one case.
// It is born with the first parse of a case and is never shared across
// cases, matching the lifecycle in the ranking model.
type TokenMap struct {
	toElement map[string]Element
	toToken   []string
}

// NewTokenMap creates an empty, case-scoped token<->element mapping.
func NewTokenMap() *TokenMap {
	return &TokenMap{toElement: make(map[string]Element)}
}

// Intern returns the element for tok, allocating a fresh one (the n-th new
// token maps to the n-th element) if tok hasn't been seen in this case.
func (m *TokenMap) Intern(tok string) Element {
	if e, ok := m.toElement[tok]; ok {
		return e
	}
	e := Element(len(m.toToken))
	m.toElement[tok] = e
	m.toToken = append(m.toToken, tok)
	return e
}

// Token returns the original input token for e, or "<nf>" if e was never
// interned through this map (mirrors the Rust original's not-found marker).
func (m *TokenMap) Token(e Element) string {
	if int(e) < 0 || int(e) >= len(m.toToken) {
		return "<nf>"
	}
	return m.toToken[e]
}

// Len returns the number of distinct elements interned so far.
func (m *TokenMap) Len() int {
	return len(m.toToken)
}
