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
	"strconv"
	"strings"
)

// Format is the inverse of Parse: singleton groups emit their atom, groups
// of two or more emit "(a b ...)", using the interned element's numeric
// name.
func Format(p PartialOrder) string {
	return format(p, func(e Element) string { return e.String() })
}

// FormatReplacement is Format but substitutes each element back to the
// original input token via m, so output echoes the caller's own vocabulary.
func FormatReplacement(p PartialOrder, m *TokenMap) string {
	return format(p, m.Token)
}

func format(p PartialOrder, show func(Element) string) string {
	groups := make([]string, len(p))
	for i, g := range p {
		if len(g) == 1 {
			groups[i] = show(g[0])
			continue
		}
		toks := make([]string, len(g))
		for j, e := range g {
			toks[j] = show(e)
		}
		groups[i] = "(" + strings.Join(toks, " ") + ")"
	}
	return strings.Join(groups, " ")
}

// FormatStrict renders a StrictOrder as space-separated element names,
// using "<empty>" for undefined slots.
func FormatStrict(s StrictOrder) string {
	return formatStrict(s, func(e Element) string { return e.String() })
}

// FormatStrictReplacement is FormatStrict but substitutes original tokens.
func FormatStrictReplacement(s StrictOrder, m *TokenMap) string {
	return formatStrict(s, m.Token)
}

func formatStrict(s StrictOrder, show func(Element) string) string {
	toks := make([]string, len(s))
	for i, e := range s {
		if e == Undefined {
			toks[i] = "<empty>"
		} else {
			toks[i] = show(e)
		}
	}
	return strings.Join(toks, " ")
}

// GoString formats an element with its underlying integer for debug dumps
// (the %#v verb).
func (e Element) GoString() string { return "e" + strconv.Itoa(int(e)) }
