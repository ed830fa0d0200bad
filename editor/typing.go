// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/typing.go
// Summary: Buffer mutations: insert, split, merge and erase commands.
// Notes: Redraw stays minimal: a line tail for in-line edits, the
// visible remainder for structural changes.

package editor

func (s *Session) insertRune(r rune) {
	s.doc.Insert(s.cursor.Y, s.cursor.X, r)
	s.cursor.X++
	s.cursor.LastX = s.cursor.X
	s.markDirty()
	s.rend.LineTail(s.cursor.Y, s.cursor.X-1)
	s.rend.Highlight(s.cursor.Y)
}

func (s *Session) insertTab() {
	n := s.doc.TabInsert(s.cursor.Y, s.cursor.X)
	s.rend.LineTail(s.cursor.Y, s.cursor.X)
	s.cursor.X += n
	s.cursor.LastX = s.cursor.X
	s.markDirty()
}

func (s *Session) enter() {
	s.doc.SplitLine(s.cursor.Y, s.cursor.X)
	s.cursor.Y++
	s.cursor.X = 0
	s.cursor.LastX = 0
	s.markDirty()
	s.ensureVisible()
	s.rend.LinesFrom(s.cursor.Y - 1)
	s.rend.Highlight(s.cursor.Y - 1)
}

// eraseLeft removes the codepoint before the cursor, merging with the
// previous line when at column 0 and wrapping is allowed.
func (s *Session) eraseLeft(wrap bool) {
	switch {
	case s.cursor.X > 0:
		s.cursor.X--
		s.doc.RemoveRune(s.cursor.Y, s.cursor.X)
		s.markDirty()
		s.rend.LineTail(s.cursor.Y, s.cursor.X)
		s.rend.Highlight(s.cursor.Y)
	case wrap && s.cursor.Y > 0:
		s.mergeUp()
	}
	s.cursor.LastX = s.cursor.X
}

// mergeUp joins the cursor line onto the previous one.
func (s *Session) mergeUp() {
	prevLen := s.doc.LineLen(s.cursor.Y - 1)
	s.doc.MergeLine(s.cursor.Y - 1)
	s.cursor.Y--
	s.cursor.X = prevLen
	s.markDirty()
	s.ensureVisible()
	s.rend.LinesFrom(s.cursor.Y)
	s.rend.Highlight(s.cursor.Y)
}

// eraseRight removes the codepoint under the cursor, merging with the
// next line when at line end and wrapping is allowed.
func (s *Session) eraseRight(wrap bool) {
	switch {
	case s.cursor.X < s.doc.LineLen(s.cursor.Y):
		s.doc.RemoveRune(s.cursor.Y, s.cursor.X)
		s.markDirty()
		s.rend.LineTail(s.cursor.Y, s.cursor.X)
		s.rend.Highlight(s.cursor.Y)
	case wrap && s.cursor.Y < s.doc.LineCount()-1:
		s.doc.MergeLine(s.cursor.Y)
		s.markDirty()
		s.rend.LinesFrom(s.cursor.Y)
		s.rend.Highlight(s.cursor.Y)
	}
	s.cursor.LastX = s.cursor.X
}

func (s *Session) eraseWordLeft() {
	if s.cursor.X == 0 {
		if s.prefs.WrapEraseWordLeft && s.cursor.Y > 0 {
			s.mergeUp()
		}
		s.cursor.LastX = s.cursor.X
		return
	}
	start := leftWordBoundary(s.doc.Line(s.cursor.Y), s.cursor.X)
	s.doc.RemoveRange(s.cursor.Y, start, s.cursor.X)
	s.cursor.X = start
	s.cursor.LastX = start
	s.markDirty()
	s.rend.LineTail(s.cursor.Y, s.cursor.X)
	s.rend.Highlight(s.cursor.Y)
}

func (s *Session) eraseWordRight() {
	lineLen := s.doc.LineLen(s.cursor.Y)
	if s.cursor.X == lineLen {
		if s.prefs.WrapEraseWordRight && s.cursor.Y < s.doc.LineCount()-1 {
			s.doc.MergeLine(s.cursor.Y)
			s.markDirty()
			s.rend.LinesFrom(s.cursor.Y)
			s.rend.Highlight(s.cursor.Y)
		}
		s.cursor.LastX = s.cursor.X
		return
	}
	end := rightWordBoundary(s.doc.Line(s.cursor.Y), s.cursor.X)
	s.doc.RemoveRange(s.cursor.Y, s.cursor.X, end)
	s.cursor.LastX = s.cursor.X
	s.markDirty()
	s.rend.LineTail(s.cursor.Y, s.cursor.X)
	s.rend.Highlight(s.cursor.Y)
}

// eraseToLineStart removes everything left of the cursor (Alt+Backspace).
func (s *Session) eraseToLineStart() {
	if s.cursor.X > 0 {
		s.doc.RemoveRange(s.cursor.Y, 0, s.cursor.X)
		s.cursor.X = 0
		s.markDirty()
		s.rend.LineTail(s.cursor.Y, 0)
		s.rend.Highlight(s.cursor.Y)
	}
	s.cursor.LastX = s.cursor.X
}

// eraseToLineEnd removes everything right of the cursor (Alt+Delete).
func (s *Session) eraseToLineEnd() {
	lineLen := s.doc.LineLen(s.cursor.Y)
	if s.cursor.X < lineLen {
		s.doc.RemoveRange(s.cursor.Y, s.cursor.X, lineLen)
		s.markDirty()
		s.rend.LineTail(s.cursor.Y, s.cursor.X)
		s.rend.Highlight(s.cursor.Y)
	}
	s.cursor.LastX = s.cursor.X
}
