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

// Package solverio parses the line-oriented stdout contract solver
// binaries invoked through runner.Run are expected to produce: "tmin",
// "minp", "tmax", "maxp" lines, or a single "skipped" line when the solver
// refuses the case.
package solverio

// AlgoOut is one solver invocation's parsed result.
type AlgoOut struct {
	Skipped    bool
	SkipReason string

	TauMin      float64
	MinWitness  string
	TauMax      float64
	MaxWitness  string
}
