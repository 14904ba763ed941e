// Copyright 2021 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVRenderer renders a table as comma-separated values with the header
// as the first record.
type CSVRenderer struct{}

// Render writes t to w.
func (r *CSVRenderer) Render(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(r.record(t, &Row{cells: t.header()})); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writer.Write(r.record(t, row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (r *CSVRenderer) record(t *Table, row *Row) []string {
	rec := make([]string, 0, t.Width())
	for i := 0; i < t.Width(); i++ {
		switch c := row.cell(i).(type) {
		case textCell:
			rec = append(rec, string(c))
		case numberCell:
			rec = append(rec, strconv.FormatInt(int64(c), 10))
		}
	}
	return rec
}
