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

// Package runner invokes an external bound-solver binary as a subprocess
// and captures its output, the Go side of the verification harness's
// process boundary.
package runner

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// ErrProcessFailed is returned when the subprocess exits non-zero.
var ErrProcessFailed = errors.New("runner: subprocess exited non-zero")

// Case is one invocation of a solver binary: the two ranking strings passed
// as positional arguments, plus any extra flags the binary accepts.
type Case struct {
	Binary string
	Args   []string
}

// Executor abstracts subprocess invocation so callers driving a batch of
// cases can substitute a test double for an actual OS process.
type Executor interface {
	Run(ctx context.Context, c Case) (string, error)
}

// OSExecutor is the real Executor: it runs c as an actual OS subprocess.
type OSExecutor struct{}

// Run implements Executor by delegating to the package-level Run.
func (OSExecutor) Run(ctx context.Context, c Case) (string, error) {
	return Run(ctx, c)
}

// Run executes c and returns its captured stdout. Stderr is attached to the
// returned error for diagnostics when the process fails.
func Run(ctx context.Context, c Case) (string, error) {
	cmd := exec.CommandContext(ctx, c.Binary, c.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ErrProcessFailed, "%s %v: %v: %s", c.Binary, c.Args, err, stderr.String())
	}
	return stdout.String(), nil
}
