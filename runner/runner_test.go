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

package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesStdout(t *testing.T) {
	out, err := Run(context.Background(), Case{
		Binary: "echo",
		Args:   []string{"hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunWrapsNonZeroExit(t *testing.T) {
	_, err := Run(context.Background(), Case{
		Binary: "false",
	})
	assert.ErrorIs(t, err, ErrProcessFailed)
}

func TestRunWrapsMissingBinary(t *testing.T) {
	_, err := Run(context.Background(), Case{
		Binary: "this-binary-does-not-exist-anywhere",
	})
	assert.Error(t, err)
}
