// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/cursor.go
// Summary: Cursor motion: plain, word, line and document jumps.
// Notes: Motions past the document edges are no-ops that still update
// the sticky column, matching the invariant in session.go.

package editor

// moveLeft steps one column left. Both the wrapping and non-wrapping
// primitives exist because word motion selects wrapping deliberately,
// independent of the user preference for plain motion.
func (s *Session) moveLeft(wrap bool) {
	switch {
	case s.cursor.X > 0:
		s.cursor.X--
	case wrap && s.cursor.Y > 0:
		s.cursor.Y--
		s.cursor.X = s.doc.LineLen(s.cursor.Y)
		s.ensureVisible()
	}
	s.cursor.LastX = s.cursor.X
}

func (s *Session) moveRight(wrap bool) {
	switch {
	case s.cursor.X < s.doc.LineLen(s.cursor.Y):
		s.cursor.X++
	case wrap && s.cursor.Y < s.doc.LineCount()-1:
		s.cursor.Y++
		s.cursor.X = 0
		s.ensureVisible()
	}
	s.cursor.LastX = s.cursor.X
}

func (s *Session) moveUp() {
	if s.cursor.Y == 0 {
		if s.prefs.UpToLineStartAtFirstLine {
			s.cursor.X = 0
		}
		s.cursor.LastX = s.cursor.X
		return
	}
	s.cursor.Y--
	s.clampSticky()
	if s.prefs.ScrollUpAtEdge {
		s.ensureVisible()
	} else if s.cursor.Y < s.scrollY {
		s.cursor.Y = s.scrollY
		s.clampSticky()
	}
}

func (s *Session) moveDown() {
	if s.cursor.Y == s.doc.LineCount()-1 {
		if s.prefs.DownToLineEndAtLastLine {
			s.cursor.X = s.doc.LineLen(s.cursor.Y)
		}
		s.cursor.LastX = s.cursor.X
		return
	}
	s.cursor.Y++
	s.clampSticky()
	if s.prefs.ScrollDownAtEdge {
		s.ensureVisible()
	} else if s.cursor.Y >= s.scrollY+s.height {
		s.cursor.Y = s.scrollY + s.height - 1
		s.clampSticky()
	}
}

// clampSticky applies the sticky column rule after a vertical move:
// x becomes min(max(x, lastX), line length). lastX changes only when
// the move itself was clamped, so that moving through short lines and
// back restores the original column.
func (s *Session) clampSticky() {
	lineLen := s.doc.LineLen(s.cursor.Y)
	if s.cursor.LastX > s.cursor.X {
		s.cursor.X = s.cursor.LastX
		if s.cursor.X > lineLen {
			s.cursor.X = lineLen
		}
	} else if s.cursor.X > lineLen {
		s.cursor.LastX = s.cursor.X
		s.cursor.X = lineLen
	}
}

// moveWordLeft lands one past the whitespace run preceding the word to
// the left. At column 0 it degrades to single-step wrapping motion.
func (s *Session) moveWordLeft() {
	if s.cursor.X == 0 {
		s.moveLeft(s.prefs.WrapWordLeft)
		return
	}
	s.cursor.X = leftWordBoundary(s.doc.Line(s.cursor.Y), s.cursor.X)
	s.cursor.LastX = s.cursor.X
}

// moveWordRight lands on the whitespace following the word to the
// right. At line end it degrades to single-step wrapping motion.
func (s *Session) moveWordRight() {
	if s.cursor.X == s.doc.LineLen(s.cursor.Y) {
		s.moveRight(s.prefs.WrapWordRight)
		return
	}
	s.cursor.X = rightWordBoundary(s.doc.Line(s.cursor.Y), s.cursor.X)
	s.cursor.LastX = s.cursor.X
}

func (s *Session) moveLineStart() {
	s.cursor.X = 0
	s.cursor.LastX = 0
}

func (s *Session) moveLineEnd() {
	s.cursor.X = s.doc.LineLen(s.cursor.Y)
	s.cursor.LastX = s.cursor.X
}

func (s *Session) moveDocStart() {
	if s.cursor.Y == 0 {
		s.cursor.LastX = s.cursor.X
		return
	}
	s.cursor.Y = 0
	s.clampSticky()
	s.ensureVisible()
}

func (s *Session) moveDocEnd() {
	last := s.doc.LineCount() - 1
	if s.cursor.Y == last {
		s.cursor.LastX = s.cursor.X
		return
	}
	s.cursor.Y = last
	s.clampSticky()
	s.ensureVisible()
}
