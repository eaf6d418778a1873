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

// Package verify checks a solver's output against a golden test case: the
// claimed bounds must fall within tolerance of the golden bounds, and the
// claimed witnesses must be members of the golden witness set.
package verify

import "github.com/ranktau/ranktau/solverio"

// Epsilon is the floating-point tolerance bound comparisons are made at.
const Epsilon = 1e-6

// TestCase is one golden record: the two input rankings and the set of
// acceptable witnesses at each bound (a bound can be tied by more than one
// linear extension, any of which is an acceptable answer).
type TestCase struct {
	Name string
	A, B string

	GoldenTauMin     float64
	GoldenMinWitness []string
	GoldenTauMax     float64
	GoldenMaxWitness []string
}

// FailType classifies why a verification failed.
type FailType int

const (
	// FailNone means the result was not a failure.
	FailNone FailType = iota
	// FailTauMismatch means a reported tau fell outside tolerance of the
	// golden value.
	FailTauMismatch
	// FailWitnessNotMember means a reported witness was not in the golden
	// witness set for its bound.
	FailWitnessNotMember
)

func (f FailType) String() string {
	switch f {
	case FailTauMismatch:
		return "tau mismatch"
	case FailWitnessNotMember:
		return "witness not a member"
	default:
		return "none"
	}
}

// Status is the outcome taxonomy a single verification run resolves to.
type Status string

const (
	// StatusComplete means both bounds matched golden and both witnesses
	// were confirmed members of their golden witness sets.
	StatusComplete Status = "Complete"
	// StatusPass means both bounds matched golden but at least one witness
	// could not be confirmed a golden member.
	StatusPass    Status = "Pass"
	StatusSkipped Status = "Skipped"
	StatusEmpty   Status = "Empty"
	StatusFail    Status = "Fail"
)

// TestResult is the outcome of verifying one solver AlgoOut against its
// TestCase.
type TestResult struct {
	Case    string
	Status  Status
	Fail    FailType
	Detail  string
	Solver  solverio.AlgoOut
}

// CsvRow flattens a TestResult into the columns ranktau-verify's
// --report-csv writes.
type CsvRow struct {
	Case   string
	Status string
	Fail   string
	Detail string
}

// Row converts r to its CSV representation.
func (r TestResult) Row() CsvRow {
	return CsvRow{
		Case:   r.Case,
		Status: string(r.Status),
		Fail:   r.Fail.String(),
		Detail: r.Detail,
	}
}
