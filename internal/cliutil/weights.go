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

// Package cliutil holds the small pieces of flag-parsing glue shared by
// every ranktau command: resolving a --weight name to a kendall.Weight and
// a --variant name to a kendall.Variant.
package cliutil

import (
	"github.com/cockroachdb/errors"

	"github.com/ranktau/ranktau/kendall"
)

// ErrUnknownWeight is returned for a --weight name not in the catalogue.
var ErrUnknownWeight = errors.New("cliutil: unknown weight function")

// ErrUnknownVariant is returned for a --variant name not in {a, b}.
var ErrUnknownVariant = errors.New("cliutil: unknown tau variant")

// WeightByName resolves a named weight function from the catalogue in
// package kendall.
func WeightByName(name string) (kendall.Weight, error) {
	switch name {
	case "unweighted", "":
		return kendall.Unweighted, nil
	case "hyperbolic-add":
		return kendall.HyperbolicAdditive, nil
	case "hyperbolic-mult":
		return kendall.HyperbolicMultiplicative, nil
	case "hyperbolic-sym-mult":
		return kendall.HyperbolicSymMult, nil
	case "ap":
		return kendall.AP, nil
	case "ap-high":
		return kendall.APHigh, nil
	case "rbo":
		return kendall.RBO(0.9), nil
	case "rbo-other":
		return kendall.RBOOther(0.5), nil
	case "inv-left":
		return kendall.InvLeft, nil
	case "inv-right":
		return kendall.InvRight, nil
	case "left":
		return kendall.Left, nil
	case "right":
		return kendall.Right, nil
	case "sum":
		return kendall.Sum, nil
	case "zero":
		return kendall.Zero, nil
	case "inv-log":
		return kendall.InvLog, nil
	case "threshold-bin":
		return kendall.ThresholdBin, nil
	case "threshold":
		return kendall.Threshold, nil
	case "expo-thresh":
		return kendall.ExpoThresh, nil
	default:
		return nil, errors.Wrapf(ErrUnknownWeight, "%q", name)
	}
}

// VariantByName resolves "a" or "b" to a kendall.Variant. "w" is
// deliberately unsupported.
func VariantByName(name string) (kendall.Variant, error) {
	switch name {
	case "a", "":
		return kendall.VariantA, nil
	case "b":
		return kendall.VariantB, nil
	default:
		return 0, errors.Wrapf(ErrUnknownVariant, "%q", name)
	}
}
