// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Every cell in a column is padded to the width of the widest cell
// in that column, so the column separators of all rows line up. A row
// may end with a suffix, such as a LaTeX row terminator, which is
// printed after the row's last cell.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	cells []textCell
	cols  int
	ends  map[int]string

	curRow, curCol int
	started        bool
}

type textCell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
}

type CellOption func(c *textCell)

// LeftMargin sets the text printed before a cell, such as a column
// separator. It is padded to the widest margin of its column.
func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

var (
	Left  CellOption = func(c *textCell) { c.alignment = alignLeft }
	Right            = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if t.started {
		t.curRow++
	}
	t.started = true
	t.curCol = 0
	return t
}

// Cell adds a cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if !t.started {
		t.Row()
	}
	lMargin := " "
	if t.curCol == 0 {
		lMargin = ""
	}
	t.cells = append(t.cells, textCell{t.curRow, t.curCol, value, lMargin, alignLeft})
	for _, o := range opts {
		o(&t.cells[len(t.cells)-1])
	}
	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// End sets the suffix printed at the end of the current row.
func (t *Table) End(suffix string) *Table {
	if !t.started {
		t.Row()
	}
	if t.ends == nil {
		t.ends = make(map[int]string)
	}
	t.ends[t.curRow] = suffix
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	if !t.started {
		return nil
	}

	lmargin := make([]int, t.cols)
	for _, cell := range t.cells {
		lmargin[cell.col] = max(utf8.RuneCountInString(cell.leftMargin), lmargin[cell.col])
	}
	ws := make([]int, t.cols)
	for _, cell := range t.cells {
		ws[cell.col] = max(ws[cell.col], utf8.RuneCountInString(cell.value))
	}

	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})

	var b strings.Builder
	next := 0
	for row := 0; row <= t.curRow; row++ {
		for ; next < len(t.cells) && t.cells[next].row == row; next++ {
			cell := t.cells[next]
			b.WriteString(alignRight.pad(cell.leftMargin, lmargin[cell.col]))
			b.WriteString(cell.alignment.pad(cell.value, ws[cell.col]))
		}
		line := b.String()
		if t.ends[row] == "" {
			// Don't print padding at the end of lines.
			line = strings.TrimRight(line, " ")
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", line, t.ends[row]); err != nil {
			return err
		}
		b.Reset()
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
