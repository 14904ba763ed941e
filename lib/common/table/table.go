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

// Package table lays out rows of text and amounts in aligned columns.
package table

// Alignment is the alignment of a column.
type Alignment int

const (
	// Left aligns to the left.
	Left Alignment = iota
	// Right aligns to the right.
	Right
)

// Column is a titled table column.
type Column struct {
	Title string
	Align Alignment
}

// Table is a header followed by rows of cells.
type Table struct {
	columns []Column
	rows    []*Row
}

// New creates a table with the given columns.
func New(columns ...Column) *Table {
	return &Table{columns: columns}
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.columns)
}

// AddRow adds a row. Missing trailing cells render empty.
func (t *Table) AddRow() *Row {
	r := &Row{cells: make([]cell, 0, t.Width())}
	t.rows = append(t.rows, r)
	return r
}

func (t *Table) header() []cell {
	res := make([]cell, 0, len(t.columns))
	for _, c := range t.columns {
		res = append(res, textCell(c.Title))
	}
	return res
}

// Row is a table row.
type Row struct {
	cells []cell
}

// AddText adds a text cell.
func (r *Row) AddText(content string) *Row {
	r.cells = append(r.cells, textCell(content))
	return r
}

// AddNumber adds an amount cell.
func (r *Row) AddNumber(n int64) *Row {
	r.cells = append(r.cells, numberCell(n))
	return r
}

// cell returns the cell of row r in column i.
func (r *Row) cell(i int) cell {
	if i < len(r.cells) {
		return r.cells[i]
	}
	return textCell("")
}

type cell interface {
	isCell()
}

type textCell string

func (textCell) isCell() {}

type numberCell int64

func (numberCell) isCell() {}
