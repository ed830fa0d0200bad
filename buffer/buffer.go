// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/buffer.go
// Summary: Codepoint-indexed document model for texedit.
// Usage: Mutated by the editor session; every index is a rune position.
// Notes: Bounds are the caller's contract. The session checks boundaries
// before calling, so an out-of-range index here is a defect and panics.

package buffer

// TabStop is the column granularity used by TabInsert.
const TabStop = 4

// Document is an ordered, never-empty list of lines. Lines are rune
// slices so that insertion and removal are counted in codepoints, not
// bytes, regardless of how the file was encoded on disk.
type Document struct {
	lines [][]rune
}

// New returns a document holding a single empty line.
func New() *Document {
	return &Document{lines: [][]rune{{}}}
}

// FromStrings builds a document from ordered lines. An empty slice
// yields the single-empty-line document.
func FromStrings(lines []string) *Document {
	if len(lines) == 0 {
		return New()
	}
	d := &Document{lines: make([][]rune, 0, len(lines))}
	for _, l := range lines {
		d.lines = append(d.lines, []rune(l))
	}
	return d
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns line y. The returned slice is the live backing store;
// callers must not retain it across mutations.
func (d *Document) Line(y int) []rune {
	d.checkLine(y)
	return d.lines[y]
}

// LineLen returns the codepoint length of line y.
func (d *Document) LineLen(y int) int {
	d.checkLine(y)
	return len(d.lines[y])
}

// Insert places one codepoint at (y, x), shifting the tail right.
// Newlines are never inserted here; Enter goes through SplitLine.
func (d *Document) Insert(y, x int, r rune) {
	d.checkPos(y, x)
	if r == '\n' {
		panic("buffer: Insert called with newline, use SplitLine")
	}
	line := d.lines[y]
	line = append(line, 0)
	copy(line[x+1:], line[x:])
	line[x] = r
	d.lines[y] = line
}

// SplitLine truncates line y at x and inserts the remainder as line y+1.
func (d *Document) SplitLine(y, x int) {
	d.checkPos(y, x)
	line := d.lines[y]
	rest := append([]rune(nil), line[x:]...)
	d.lines[y] = line[:x]
	d.lines = append(d.lines, nil)
	copy(d.lines[y+2:], d.lines[y+1:])
	d.lines[y+1] = rest
}

// MergeLine appends line y+1 to line y and removes line y+1.
func (d *Document) MergeLine(y int) {
	d.checkLine(y)
	if y+1 >= len(d.lines) {
		panic("buffer: MergeLine on last line")
	}
	d.lines[y] = append(d.lines[y], d.lines[y+1]...)
	d.lines = append(d.lines[:y+1], d.lines[y+2:]...)
}

// RemoveRune deletes the codepoint at (y, x), shifting the tail left.
func (d *Document) RemoveRune(y, x int) {
	d.checkLine(y)
	if x < 0 || x >= len(d.lines[y]) {
		panic("buffer: RemoveRune index out of range")
	}
	d.lines[y] = append(d.lines[y][:x], d.lines[y][x+1:]...)
}

// RemoveRange deletes codepoints [start, end) from line y.
func (d *Document) RemoveRange(y, start, end int) {
	d.checkLine(y)
	if start < 0 || end < start || end > len(d.lines[y]) {
		panic("buffer: RemoveRange out of range")
	}
	d.lines[y] = append(d.lines[y][:start], d.lines[y][end:]...)
}

// TabInsert inserts spaces up to the next tab stop and returns how many
// were inserted. Never zero: a full stop of spaces when already aligned.
func (d *Document) TabInsert(y, x int) int {
	d.checkPos(y, x)
	n := TabStop - x%TabStop
	for i := 0; i < n; i++ {
		d.Insert(y, x+i, ' ')
	}
	return n
}

// Strings returns the document content as ordered lines.
func (d *Document) Strings() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = string(l)
	}
	return out
}

func (d *Document) checkLine(y int) {
	if y < 0 || y >= len(d.lines) {
		panic("buffer: line index out of range")
	}
}

func (d *Document) checkPos(y, x int) {
	d.checkLine(y)
	if x < 0 || x > len(d.lines[y]) {
		panic("buffer: column index out of range")
	}
}
