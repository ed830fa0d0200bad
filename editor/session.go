// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/session.go
// Summary: Editor session: cursor, viewport, and command dispatch.
// Usage: One Session per process; Apply is called once per decoded
// Command and drives buffer mutations plus the minimal redraw.
// Notes: Session checks every boundary before touching the buffer, so
// buffer contract panics are unreachable from here.

package editor

import (
	"fmt"

	"github.com/framegrace/texedit/buffer"
	"github.com/framegrace/texedit/config"
	"github.com/framegrace/texedit/input"
)

// Cursor is the insertion point in codepoint coordinates. LastX is the
// sticky goal column: vertical motion aims for it, horizontal motion
// and edits reset it.
type Cursor struct {
	X, Y  int
	LastX int
}

// Renderer executes redraw descriptions computed by the session.
// Implementations write terminal escape sequences; tests record calls.
type Renderer interface {
	// Init paints the header, background and initial document.
	Init() error
	// LineTail repaints line y from column fromX and clears to EOL.
	LineTail(y, fromX int)
	// LinesFrom repaints visible lines y downward, clearing vacated rows.
	LinesFrom(y int)
	// Scroll shifts the text region by delta rows using the terminal
	// scroll region. The caller repaints the row that entered.
	Scroll(delta int)
	// SetScroll repositions the viewport without a hardware scroll.
	// The caller follows with LinesFrom to repaint.
	SetScroll(scrollY int)
	// Cursor places the terminal cursor at buffer position (x, y).
	Cursor(x, y int)
	// Highlight re-colorizes keywords on line y.
	Highlight(y int)
	Flush() error
}

// FileStore persists documents as ordered lines.
type FileStore interface {
	Save(path string, lines []string) error
}

// Session owns the document, cursor and viewport for one editing run.
type Session struct {
	doc    *buffer.Document
	cursor Cursor

	scrollY int
	height  int // visible text rows

	rend  Renderer
	store FileStore
	prefs config.Preferences

	path  string
	dirty bool
	saved bool // on-disk content matches the buffer
}

// NewSession builds a session over doc. height is the number of text
// rows (terminal rows minus the header). saved reports whether doc
// matches an existing file at path.
func NewSession(doc *buffer.Document, path string, saved bool, height int, prefs config.Preferences, rend Renderer, store FileStore) *Session {
	if height < 1 {
		height = 1
	}
	return &Session{
		doc:    doc,
		height: height,
		rend:   rend,
		store:  store,
		prefs:  prefs,
		path:   path,
		saved:  saved,
	}
}

// Cursor returns the current cursor state.
func (s *Session) Cursor() Cursor { return s.cursor }

// ScrollY returns the topmost visible line index.
func (s *Session) ScrollY() int { return s.scrollY }

// Doc returns the underlying document.
func (s *Session) Doc() *buffer.Document { return s.doc }

// Saved reports whether the buffer matches the file on disk.
func (s *Session) Saved() bool { return s.saved }

// SetCursor places the cursor, clamping to the document shape. Used to
// restore a remembered position at startup and by mouse placement.
func (s *Session) SetCursor(x, y int) {
	if y < 0 {
		y = 0
	}
	if y >= s.doc.LineCount() {
		y = s.doc.LineCount() - 1
	}
	if x < 0 {
		x = 0
	}
	if x > s.doc.LineLen(y) {
		x = s.doc.LineLen(y)
	}
	s.cursor = Cursor{X: x, Y: y, LastX: x}
	s.ensureVisible()
}

// Apply executes one command. It returns true when the session should
// end; the error is non-nil only for fatal I/O (a failed save).
func (s *Session) Apply(cmd input.Command) (bool, error) {
	switch cmd.Kind {
	case input.Escape:
		if s.prefs.SaveOnExit && s.path != "" {
			if err := s.save(); err != nil {
				return true, err
			}
		}
		return true, nil

	case input.Printable:
		s.insertRune(cmd.Rune)
	case input.Tab:
		s.insertTab()
	case input.Enter:
		s.enter()
	case input.Backspace:
		s.eraseLeft(s.prefs.WrapEraseLeft)
	case input.Delete:
		s.eraseRight(s.prefs.WrapEraseRight)
	case input.CtrlBackspace:
		s.eraseWordLeft()
	case input.CtrlDelete:
		s.eraseWordRight()
	case input.AltBackspace:
		s.eraseToLineStart()
	case input.AltDelete:
		s.eraseToLineEnd()

	case input.ArrowUp:
		s.moveUp()
	case input.ArrowDown:
		s.moveDown()
	case input.ArrowLeft:
		s.moveLeft(s.prefs.WrapMoveLeft)
	case input.ArrowRight:
		s.moveRight(s.prefs.WrapMoveRight)
	case input.CtrlArrowLeft:
		s.moveWordLeft()
	case input.CtrlArrowRight:
		s.moveWordRight()
	case input.Home:
		s.moveLineStart()
	case input.End:
		s.moveLineEnd()
	case input.CtrlHome:
		s.moveDocStart()
	case input.CtrlEnd:
		s.moveDocEnd()

	case input.Save:
		if s.path != "" {
			if err := s.save(); err != nil {
				return true, err
			}
		}
	case input.Mouse:
		s.mouse(cmd.Event)
	}

	s.rend.Cursor(s.cursor.X, s.cursor.Y)
	return false, s.rend.Flush()
}

func (s *Session) save() error {
	if err := s.store.Save(s.path, s.doc.Strings()); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.dirty = false
	s.saved = true
	return nil
}

func (s *Session) markDirty() {
	s.dirty = true
	s.saved = false
}

// ensureVisible keeps cursor.Y inside [scrollY, scrollY+height). Single
// row drift uses a hardware scroll; larger jumps reposition and repaint.
func (s *Session) ensureVisible() {
	switch {
	case s.cursor.Y == s.scrollY-1:
		s.scrollY--
		s.rend.Scroll(-1)
		s.rend.LineTail(s.cursor.Y, 0)
	case s.cursor.Y == s.scrollY+s.height:
		s.scrollY++
		s.rend.Scroll(1)
		s.rend.LineTail(s.cursor.Y, 0)
	case s.cursor.Y < s.scrollY:
		s.scrollY = s.cursor.Y
		s.rend.SetScroll(s.scrollY)
		s.rend.LinesFrom(s.scrollY)
	case s.cursor.Y >= s.scrollY+s.height:
		s.scrollY = s.cursor.Y - s.height + 1
		s.rend.SetScroll(s.scrollY)
		s.rend.LinesFrom(s.scrollY)
	}
}
