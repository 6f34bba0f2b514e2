// SPDX-License-Identifier: MIT

// Package densemat - human-readable grid rendering.
//
// This surface is boundary-adjacent: it only consumes At-level data and the
// shape, carries no invariants of its own, and is excluded from the
// algorithmic core. Column width is measured in terminal cells via
// golang.org/x/text/width so East Asian wide and fullwidth runes in text
// cells count as two columns and the grid stays aligned.

package densemat

import (
	"io"
	"strings"

	"golang.org/x/text/width"
)

// displayWidth returns the terminal column width of s: wide and fullwidth
// runes count as two cells, everything else as one.
// Complexity: O(len(s)).
func displayWidth(s string) int {
	var w int
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}

	return w
}

// MaxElementWidth scans all cells and returns the largest rendered display
// width. Pure query used only for grid alignment; an empty matrix reports 0.
// Complexity: O(rows*cols) plus rendering cost per cell.
func (m *Matrix) MaxElementWidth() int {
	var maxw, w int
	for idx := range m.cells { // flat walk 0..n-1
		if w = displayWidth(m.cells[idx].String()); w > maxw {
			maxw = w
		}
	}

	return maxw
}

// Format writes the matrix as an aligned grid: each cell is rendered, then
// padded with the separator repeated until the column reaches
// MaxElementWidth() plus the configured padding; rows end with a newline.
// Alignment padding goes after the cell (left-aligned, the default) or
// before it (WithLeftAlign(false)); the padding-sized gap always trails.
// With the defaults (single-space separator, padding 1) this reproduces the
// classic space-aligned dump.
//
// Output-only: the matrix is never read beyond At-level access and never
// mutated. Write errors from w are returned as-is.
// Complexity: O(rows*cols) cell renders plus two full scans.
func (m *Matrix) Format(w io.Writer, opts ...FormatOption) error {
	cfg := gatherFormatOptions(opts)
	maxw := m.MaxElementWidth()

	var (
		b    strings.Builder
		i, j int
		s    string
	)
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		b.Reset()
		for j = 0; j < m.cols; j++ {
			s = m.cells[i*m.cols+j].String()
			if cfg.leftAlign {
				b.WriteString(s)
				// Pad to the column width, then add the configured gap.
				b.WriteString(strings.Repeat(cfg.separator, maxw-displayWidth(s)+cfg.padding))
			} else {
				b.WriteString(strings.Repeat(cfg.separator, maxw-displayWidth(s)))
				b.WriteString(s)
				b.WriteString(strings.Repeat(cfg.separator, cfg.padding))
			}
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

// String renders the grid with default options. Intended for debugging and
// logs, not hot paths. Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	_ = m.Format(&b) // strings.Builder never returns a write error

	return b.String()
}
