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

package solverio

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrParseOutput is returned when a solver's stdout does not match the
// expected line-prefix grammar.
var ErrParseOutput = errors.New("solverio: malformed solver output")

// ParseAlgoOutput parses a solver's captured stdout. A "skipped" line
// short-circuits parsing wherever it appears (the solver declined the case,
// e.g. too many linear extensions); otherwise tmin/minp/tmax/maxp must all
// be present, and a repeated label keeps its last value.
func ParseAlgoOutput(stdout string) (AlgoOut, error) {
	var out AlgoOut
	var haveTMin, haveMinP, haveTMax, haveMaxP bool

	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		prefix, rest, ok := strings.Cut(line, " ")
		if !ok {
			prefix, rest = line, ""
		}

		switch prefix {
		case "skipped":
			return AlgoOut{Skipped: true, SkipReason: rest}, nil
		case "tmin":
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return AlgoOut{}, errors.Wrapf(ErrParseOutput, "tmin: %q", rest)
			}
			out.TauMin = v
			haveTMin = true
		case "minp":
			out.MinWitness = rest
			haveMinP = true
		case "tmax":
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return AlgoOut{}, errors.Wrapf(ErrParseOutput, "tmax: %q", rest)
			}
			out.TauMax = v
			haveTMax = true
		case "maxp":
			out.MaxWitness = rest
			haveMaxP = true
		default:
			return AlgoOut{}, errors.Wrapf(ErrParseOutput, "unrecognised line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return AlgoOut{}, errors.Wrap(ErrParseOutput, err.Error())
	}

	if !(haveTMin && haveMinP && haveTMax && haveMaxP) {
		return AlgoOut{}, errors.Wrapf(ErrParseOutput, "missing one of tmin/minp/tmax/maxp in: %q", stdout)
	}
	return out, nil
}
