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

package verify

import (
	"fmt"
	"math"

	"github.com/ranktau/ranktau/solverio"
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Verify compares got, a parsed solver AlgoOut, against tc's golden
// record. It resolves to exactly one of five statuses:
//
//   - Skipped: the solver declined the case (too many linear extensions or
//     witnesses); never a failure.
//   - Empty: the golden record carries no witnesses to check against
//     (degenerate case, e.g. a single-item ranking); trivially passes.
//   - Complete: both bounds are within Epsilon of golden and both witnesses
//     are members of their golden witness sets.
//   - Pass: both bounds are within tolerance but a witness could not be
//     confirmed a golden member (the solver may have found a different,
//     equally valid optimum the golden list didn't enumerate).
//   - Fail: a bound is out of tolerance.
func Verify(tc TestCase, got solverio.AlgoOut) TestResult {
	if got.Skipped {
		return TestResult{Case: tc.Name, Status: StatusSkipped, Detail: got.SkipReason, Solver: got}
	}
	if len(tc.GoldenMinWitness) == 0 && len(tc.GoldenMaxWitness) == 0 {
		return TestResult{Case: tc.Name, Status: StatusEmpty, Solver: got}
	}

	minOK := math.Abs(got.TauMin-tc.GoldenTauMin) <= Epsilon
	maxOK := math.Abs(got.TauMax-tc.GoldenTauMax) <= Epsilon

	if !minOK || !maxOK {
		return TestResult{
			Case:   tc.Name,
			Status: StatusFail,
			Fail:   FailTauMismatch,
			Detail: fmt.Sprintf("min: got %.6f want %.6f; max: got %.6f want %.6f", got.TauMin, tc.GoldenTauMin, got.TauMax, tc.GoldenTauMax),
			Solver: got,
		}
	}

	minMember := contains(tc.GoldenMinWitness, got.MinWitness)
	maxMember := contains(tc.GoldenMaxWitness, got.MaxWitness)

	if minMember && maxMember {
		return TestResult{Case: tc.Name, Status: StatusComplete, Solver: got}
	}

	return TestResult{
		Case:   tc.Name,
		Status: StatusPass,
		Fail:   FailWitnessNotMember,
		Detail: fmt.Sprintf("witness not confirmed: minp=%q maxp=%q", got.MinWitness, got.MaxWitness),
		Solver: got,
	}
}
