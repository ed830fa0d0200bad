// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/sink.go
// Summary: Terminal render sink: executes the session's redraw
// descriptions as ANSI escape sequences.
// Usage: Implements editor.Renderer. Buffered; the session flushes
// once per applied command.
// Notes: Buffer line y paints on screen row y-scrollY+2; row 1 is the
// header. Display columns come from rune widths, indices stay runes.

package render

import (
	"bufio"
	"io"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texedit/buffer"
	"github.com/framegrace/texedit/highlight"
)

// Sink writes the visible portion of a document to a terminal.
type Sink struct {
	w   *bufio.Writer
	doc *buffer.Document
	cls *highlight.Classifier

	width   int // terminal columns
	rows    int // terminal rows, header included
	scrollY int
	title   string
}

// NewSink builds a sink over w for a width x rows terminal. title is
// shown in the header; cls may be nil to disable keyword coloring.
func NewSink(w io.Writer, doc *buffer.Document, cls *highlight.Classifier, width, rows int, title string) *Sink {
	if title == "" {
		title = "<unnamed file>"
	}
	return &Sink{
		w:     bufio.NewWriterSize(w, 8192),
		doc:   doc,
		cls:   cls,
		width: width,
		rows:  rows,
		title: title,
	}
}

// height is the number of text rows below the header.
func (s *Sink) height() int { return s.rows - 1 }

func (s *Sink) screenRow(y int) int { return y - s.scrollY + 2 }

// screenCol returns the 1-based display column of codepoint x on line y.
func (s *Sink) screenCol(y, x int) int {
	col := 1
	for _, r := range s.doc.Line(y)[:x] {
		col += runewidth.RuneWidth(r)
	}
	return col
}

// Init clears the screen, paints the header and background, draws the
// visible document and leaves the cursor at the top of the text area.
func (s *Sink) Init() error {
	s.w.WriteString(hideCursor)
	s.w.WriteString(clearAll)

	// Header: title across row 1.
	s.w.WriteString(moveTo(1, 1))
	s.w.WriteString(bg(colorSurface0) + fg(colorSubtext0))
	s.w.WriteString(runewidth.FillRight(runewidth.Truncate(s.title, s.width, ""), s.width))

	s.w.WriteString(bg(colorBase) + fg(colorText))
	s.LinesFrom(0)
	s.w.WriteString(moveTo(2, 1))
	s.w.WriteString(showCursor)
	return s.w.Flush()
}

// LineTail repaints line y from codepoint fromX and clears to EOL.
func (s *Sink) LineTail(y, fromX int) {
	row := s.screenRow(y)
	if row < 2 || row > s.rows {
		return
	}
	s.w.WriteString(moveTo(row, s.screenCol(y, fromX)))
	s.w.WriteString(string(s.doc.Line(y)[fromX:]))
	s.w.WriteString(clearRight)
}

// LinesFrom repaints visible lines y downward. Rows past the last line
// get the beyond-EOF background.
func (s *Sink) LinesFrom(y int) {
	if y < s.scrollY {
		y = s.scrollY
	}
	bottom := s.scrollY + s.height()
	for ; y < bottom; y++ {
		row := s.screenRow(y)
		s.w.WriteString(moveTo(row, 1))
		if y < s.doc.LineCount() {
			s.w.WriteString(string(s.doc.Line(y)))
			s.w.WriteString(clearRight)
			s.highlightLine(y)
		} else {
			s.w.WriteString(bg(colorMantle))
			s.w.WriteString(clearRight)
			s.w.WriteString(bg(colorBase))
		}
	}
}

// Scroll shifts the text region by one row with the terminal scroll
// region, avoiding a full repaint.
func (s *Sink) Scroll(delta int) {
	s.scrollY += delta
	s.w.WriteString(scrollRegion(2, s.rows))
	if delta > 0 {
		s.w.WriteString(scrollUp(delta))
	} else if delta < 0 {
		s.w.WriteString(scrollDown(-delta))
	}
	s.w.WriteString(resetScrollRegion)
}

// SetScroll repositions the viewport for a jump; the session follows
// with LinesFrom.
func (s *Sink) SetScroll(scrollY int) {
	s.scrollY = scrollY
}

// Cursor places the terminal cursor at buffer position (x, y).
func (s *Sink) Cursor(x, y int) {
	s.w.WriteString(moveTo(s.screenRow(y), s.screenCol(y, x)))
}

// Highlight re-colorizes the keywords of line y in place.
func (s *Sink) Highlight(y int) {
	row := s.screenRow(y)
	if row < 2 || row > s.rows {
		return
	}
	s.highlightLine(y)
}

func (s *Sink) highlightLine(y int) {
	if s.cls == nil {
		return
	}
	line := s.doc.Line(y)
	row := s.screenRow(y)
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && !unicode.IsSpace(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			s.paintWord(row, y, line[start:i], start)
			start = -1
		}
	}
}

func (s *Sink) paintWord(row, y int, word []rune, start int) {
	color, ok := classColor(s.cls.Classify(string(word)))
	if !ok {
		return
	}
	s.w.WriteString(moveTo(row, s.screenCol(y, start)))
	s.w.WriteString(fg(color))
	s.w.WriteString(string(word))
	s.w.WriteString(fg(colorText))
}

func classColor(c highlight.Class) (RGB, bool) {
	switch c {
	case highlight.ClassKeyword:
		return colorBlue, true
	case highlight.ClassType:
		return colorYellow, true
	case highlight.ClassLiteral:
		return colorCyan, true
	case highlight.ClassSpecial:
		return colorRed, true
	}
	return RGB{}, false
}

func (s *Sink) Flush() error {
	return s.w.Flush()
}
