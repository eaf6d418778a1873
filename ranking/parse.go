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
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// grammar:
//
//	ranking := token (SP token)*
//	token    := atom | "(" atom (SP atom)+ ")"
//	atom     := [A-Za-z0-9]+
var rankingGrammar = regexp.MustCompile(
	`^(?:[A-Za-z0-9]+|\([A-Za-z0-9]+(?: [A-Za-z0-9]+)+\))(?: (?:[A-Za-z0-9]+|\([A-Za-z0-9]+(?: [A-Za-z0-9]+)+\)))*$`,
)

// ErrInputFormat is returned when a ranking string fails the grammar above.
var ErrInputFormat = errors.New("ranking: malformed ranking string")

// Parse parses s into a PartialOrder, interning every atom through m. Atoms
// are alphanumeric words; parenthesised groups of two or more atoms denote a
// tie group, bare atoms denote singleton groups.
func Parse(s string, m *TokenMap) (PartialOrder, error) {
	if !rankingGrammar.MatchString(s) {
		return nil, errors.Wrapf(ErrInputFormat, "%q must be alphanumeric tokens, optionally grouped in parens", s)
	}

	var out PartialOrder
	inGroup := false

	for _, token := range strings.Fields(s) {
		startsGroup := strings.HasPrefix(token, "(")
		endsGroup := strings.HasSuffix(token, ")")
		core := strings.TrimSuffix(strings.TrimPrefix(token, "("), ")")
		elem := m.Intern(core)

		switch {
		case startsGroup && !endsGroup:
			// "(x" -> begin a new group containing x
			out = append(out, TieGroup{elem})
			inGroup = true
		case !startsGroup && endsGroup && inGroup:
			// "y)" -> close the group with y
			out[len(out)-1] = append(out[len(out)-1], elem)
			inGroup = false
		case startsGroup && endsGroup:
			// "(z)": not reached, the grammar rejects one-atom groups in parens
			out = append(out, TieGroup{elem})
		case !startsGroup && !endsGroup && inGroup:
			// inside a group: append
			out[len(out)-1] = append(out[len(out)-1], elem)
		case !startsGroup && !endsGroup && !inGroup:
			// standalone atom: new singleton group
			out = append(out, TieGroup{elem})
		default:
			return nil, errors.Newf("ranking: unreachable token shape %q", token)
		}
	}

	return out, nil
}
