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
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"
)

var csvHeader = []string{"case", "status", "fail", "detail"}

// WriteCSV writes rows as a CSV report with a fixed header, the format
// ranktau-verify's --report-csv flag produces.
func WriteCSV(w io.Writer, rows []TestResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "verify: write csv header")
	}
	for _, r := range rows {
		row := r.Row()
		if err := cw.Write([]string{row.Case, row.Status, row.Fail, row.Detail}); err != nil {
			return errors.Wrapf(err, "verify: write csv row for case %q", row.Case)
		}
	}
	cw.Flush()
	return cw.Error()
}
