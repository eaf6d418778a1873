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

// Package rklog configures the op/go-logging backend shared by every
// ranktau binary: NewLogger(level, module) and ParseTime for
// human-readable durations.
package rklog

import (
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} %{module}:%{color:reset} %{message}`,
)

// NewLogger returns a logger scoped to module, levelled at level (one of
// op/go-logging's named levels). An unparseable level falls back to INFO
// rather than failing the caller.
func NewLogger(level, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	logging.SetBackend(leveled)
	return logging.MustGetLogger(module)
}

// ParseTime decomposes d into whole hours, minutes, and seconds, for
// progress lines like "42 cases in 1h01m01s".
func ParseTime(d time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(d.Seconds())
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return hours, minutes, seconds
}

// FormatElapsed renders d as "HhMMmSSs" for log lines.
func FormatElapsed(d time.Duration) string {
	h, m, s := ParseTime(d)
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
