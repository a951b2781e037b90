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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
)

// TextRenderer renders a table to text.
type TextRenderer struct {
	Color bool
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Render renders the table to w.
func (r *TextRenderer) Render(t *Table, w io.Writer) error {
	color.NoColor = !r.Color

	widths := make([]int, t.Width())
	for _, row := range t.rows {
		for i, c := range row.cells {
			if l := minLength(c); widths[i] < l {
				widths[i] = l
			}
		}
	}
	for _, row := range t.rows {
		if len(row.cells) == 0 {
			continue
		}
		if err := r.renderRow(row, widths, w); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderRow(row *Row, widths []int, w io.Writer) error {
	var (
		first = row.cells[0]
		last  = row.cells[len(row.cells)-1]
	)
	if first.isSep() {
		if err := writeString(w, "+-"); err != nil {
			return err
		}
	} else {
		if err := writeString(w, "| "); err != nil {
			return err
		}
	}
	for i, c := range row.cells {
		if err := r.renderCell(c, widths[i], w); err != nil {
			return err
		}
		if i < len(row.cells)-1 {
			if err := writeString(w, createSep(c, row.cells[i+1])); err != nil {
				return err
			}
		}
	}
	if last.isSep() {
		return writeString(w, "-+\n")
	}
	return writeString(w, " |\n")
}

func (r *TextRenderer) renderCell(c cell, l int, w io.Writer) error {
	switch t := c.(type) {

	case emptyCell:
		return writeSpace(w, l)

	case SeparatorCell:
		return writeStrings(w, "-", l)

	case textCell:
		var before int
		switch t.Align {
		case Right:
			before = l - utf8.RuneCountInString(t.Content)
		case Center:
			before = (l - utf8.RuneCountInString(t.Content)) / 2
		}
		if err := writeSpace(w, before); err != nil {
			return err
		}
		if err := writeString(w, t.Content); err != nil {
			return err
		}
		return writeSpace(w, l-before-utf8.RuneCountInString(t.Content))

	case amountCell:
		s := addThousandsSep(formatCents(t.cents))
		if err := writeSpace(w, l-utf8.RuneCountInString(s)); err != nil {
			return err
		}
		var err error
		switch {
		case t.cents.IsNegative():
			_, err = red.Fprint(w, s)
		case t.cents.IsPositive():
			_, err = green.Fprint(w, s)
		default:
			_, err = io.WriteString(w, s)
		}
		return err
	}
	return fmt.Errorf("%v is not a valid cell type", c)
}

func writeStrings(w io.Writer, s string, l int) error {
	for i := 0; i < l; i++ {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSpace(w io.Writer, l int) error {
	return writeStrings(w, " ", l)
}

func minLength(c cell) int {
	switch t := c.(type) {
	case textCell:
		return utf8.RuneCountInString(t.Content)
	case amountCell:
		return utf8.RuneCountInString(addThousandsSep(formatCents(t.cents)))
	}
	return 0
}

func createSep(c1, c2 cell) string {
	switch {
	case c1.isSep() && c2.isSep():
		return "-+-"
	case c1.isSep():
		return "-+ "
	case c2.isSep():
		return " +-"
	default:
		return " | "
	}
}

func addThousandsSep(e string) string {
	index := strings.Index(e, ".")
	if index < 0 {
		index = len(e)
	}
	var (
		b  strings.Builder
		ok bool
	)
	for i, ch := range e {
		if i >= index && ch != '-' {
			b.WriteString(e[i:])
			break
		}
		if (index-i)%3 == 0 && ok {
			b.WriteRune(',')
		}
		b.WriteRune(ch)
		if unicode.IsDigit(ch) {
			ok = true
		}
	}
	return b.String()
}
