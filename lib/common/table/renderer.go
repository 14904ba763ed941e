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
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// TextRenderer renders a table as a boxed text grid.
type TextRenderer struct {
	Color bool
	// Format formats the numbers. Numbers are printed in base 10 if
	// Format is nil.
	Format func(int64) string
}

// Render writes t to w.
func (r *TextRenderer) Render(t *Table, w io.Writer) error {
	var (
		green = color.New(color.FgGreen)
		red   = color.New(color.FgRed)
	)
	if r.Color {
		green.EnableColor()
		red.EnableColor()
	} else {
		green.DisableColor()
		red.DisableColor()
	}

	widths := make([]int, t.Width())
	for i, c := range t.columns {
		widths[i] = utf8.RuneCountInString(c.Title)
	}
	for _, row := range t.rows {
		for i := range widths {
			if l := utf8.RuneCountInString(r.text(row.cell(i))); widths[i] < l {
				widths[i] = l
			}
		}
	}

	rule := r.rule(widths)
	if err := writeString(w, rule); err != nil {
		return err
	}
	header := &Row{cells: t.header()}
	if err := r.renderRow(w, t, header, widths, nil, nil); err != nil {
		return err
	}
	if err := writeString(w, rule); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := r.renderRow(w, t, row, widths, green, red); err != nil {
			return err
		}
	}
	if err := writeString(w, rule); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func (r *TextRenderer) rule(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
	return b.String()
}

func (r *TextRenderer) renderRow(w io.Writer, t *Table, row *Row, widths []int, pos, neg *color.Color) error {
	if err := writeString(w, "|"); err != nil {
		return err
	}
	for i, width := range widths {
		var (
			c   = row.cell(i)
			s   = r.text(c)
			pad = strings.Repeat(" ", width-utf8.RuneCountInString(s))
		)
		align := t.columns[i].Align
		if _, ok := c.(numberCell); ok {
			align = Right
		}
		if align == Right {
			if err := writeString(w, " "+pad); err != nil {
				return err
			}
		} else if err := writeString(w, " "); err != nil {
			return err
		}
		if err := r.renderCell(w, c, s, pos, neg); err != nil {
			return err
		}
		if align == Left {
			if err := writeString(w, pad); err != nil {
				return err
			}
		}
		if err := writeString(w, " |"); err != nil {
			return err
		}
	}
	return writeString(w, "\n")
}

func (r *TextRenderer) renderCell(w io.Writer, c cell, s string, pos, neg *color.Color) error {
	n, ok := c.(numberCell)
	if !ok || pos == nil {
		return writeString(w, s)
	}
	var err error
	switch {
	case n < 0:
		_, err = neg.Fprint(w, s)
	case n == 0:
		_, err = fmt.Fprint(w, s)
	default:
		_, err = pos.Fprint(w, s)
	}
	return err
}

func (r *TextRenderer) text(c cell) string {
	switch t := c.(type) {
	case textCell:
		return string(t)
	case numberCell:
		if r.Format == nil {
			return strconv.FormatInt(int64(t), 10)
		}
		return r.Format(int64(t))
	}
	return ""
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
