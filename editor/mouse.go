// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/mouse.go
// Summary: Mouse handling: cursor placement and viewport scrolling.
// Notes: Terminal cells are 1-based with the header on row 1; display
// columns map to codepoint indices through rune widths.

package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texedit/input"
)

func (s *Session) mouse(ev input.MouseEvent) {
	switch ev.Action {
	case input.MousePress, input.MouseDrag:
		if ev.Button == input.MouseLeft {
			s.placeCursorAt(ev.X, ev.Y)
		}
	case input.MouseScrollUp:
		s.scrollViewport(-1)
	case input.MouseScrollDown:
		s.scrollViewport(1)
	}
	// Releases, hovers and the remaining buttons decode but do nothing.
}

// placeCursorAt moves the cursor to the buffer position under the
// pointer. Clicks on the header row or past the last text row clamp to
// the viewport first, then to the document shape, so the cursor never
// leaves the visible text area.
func (s *Session) placeCursorAt(col, row int) {
	y := s.scrollY + row - 2 // row 1 is the header
	if y < s.scrollY {
		y = s.scrollY
	}
	if bottom := s.scrollY + s.height - 1; y > bottom {
		y = bottom
	}
	if y >= s.doc.LineCount() {
		y = s.doc.LineCount() - 1
	}
	x := columnToIndex(s.doc.Line(y), col)
	s.cursor = Cursor{X: x, Y: y, LastX: x}
}

// scrollViewport shifts the view one row and pulls the cursor along so
// it stays visible.
func (s *Session) scrollViewport(delta int) {
	switch {
	case delta < 0 && s.scrollY > 0:
		s.scrollY--
		s.rend.Scroll(-1)
		s.rend.LineTail(s.scrollY, 0)
	case delta > 0 && s.scrollY+s.height < s.doc.LineCount():
		s.scrollY++
		s.rend.Scroll(1)
		s.rend.LineTail(s.scrollY+s.height-1, 0)
	default:
		return
	}
	if s.cursor.Y < s.scrollY {
		s.cursor.Y = s.scrollY
		s.clampSticky()
	} else if s.cursor.Y >= s.scrollY+s.height {
		s.cursor.Y = s.scrollY + s.height - 1
		s.clampSticky()
	}
}

// columnToIndex converts a 1-based display column into a codepoint
// index on line, accounting for wide runes.
func columnToIndex(line []rune, col int) int {
	w := 1
	for i, r := range line {
		rw := runewidth.RuneWidth(r)
		if w+rw > col {
			return i
		}
		w += rw
	}
	return len(line)
}
