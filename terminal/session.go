// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/session.go
// Summary: Scoped terminal state: raw mode, alternate screen, mouse
// reporting, and the bounded lookahead read for escape sequences.
// Usage: Acquire with Open, release with Restore on every exit path.
// Notes: The lookahead uses a read deadline instead of toggling
// O_NONBLOCK; the tty file is registered with the runtime poller.

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// lookaheadTimeout bounds how long we wait for the tail of an escape
// sequence. Long enough for a local terminal, short enough that a bare
// Escape key feels instant.
const lookaheadTimeout = 5 * time.Millisecond

// Session owns the controlling terminal and its saved state.
type Session struct {
	tty      *os.File
	ownsTTY  bool
	oldState *term.State
	mouse    bool
	alt      bool
}

// Open acquires the controlling terminal.
func Open() (*Session, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/tty: %w", err)
	}
	return &Session{tty: tty, ownsTTY: true}, nil
}

// NewSession wraps an existing tty, such as a pty pair in tests.
func NewSession(tty *os.File) *Session {
	return &Session{tty: tty}
}

// EnterRaw switches the terminal to raw mode, remembering the previous
// state for Restore.
func (s *Session) EnterRaw() error {
	st, err := term.MakeRaw(int(s.tty.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.oldState = st
	return nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (s *Session) EnterAltScreen() {
	s.tty.WriteString("\x1b[?1049h")
	s.alt = true
}

// EnableMouse turns on SGR mouse reporting with motion events.
func (s *Session) EnableMouse() {
	s.tty.WriteString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	s.mouse = true
}

// Restore undoes everything EnterRaw, EnterAltScreen and EnableMouse
// did, in reverse order. Safe to call more than once.
func (s *Session) Restore() error {
	var first error
	if s.mouse {
		s.tty.WriteString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
		s.mouse = false
	}
	if s.alt {
		s.tty.WriteString("\x1b[0m\x1b[?1049l")
		s.alt = false
	}
	if s.oldState != nil {
		if err := term.Restore(int(s.tty.Fd()), s.oldState); err != nil && first == nil {
			first = fmt.Errorf("restore terminal state: %w", err)
		}
		s.oldState = nil
	}
	return first
}

// Close releases the tty after Restore.
func (s *Session) Close() error {
	if err := s.Restore(); err != nil {
		return err
	}
	if s.ownsTTY {
		return s.tty.Close()
	}
	return nil
}

// Size returns the terminal dimensions in cells.
func (s *Session) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(s.tty.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return cols, rows, nil
}

// ReadByte blocks for the next input byte.
func (s *Session) ReadByte() (byte, error) {
	if err := s.tty.SetReadDeadline(time.Time{}); err != nil {
		return 0, fmt.Errorf("clear read deadline: %w", err)
	}
	var b [1]byte
	for {
		n, err := s.tty.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// ReadPending reads bytes already queued on the tty without blocking
// beyond the lookahead timeout. A timeout is not an error: it means
// the ESC byte stood alone.
func (s *Session) ReadPending(p []byte) (int, error) {
	if err := s.tty.SetReadDeadline(time.Now().Add(lookaheadTimeout)); err != nil {
		return 0, fmt.Errorf("set read deadline: %w", err)
	}
	defer s.tty.SetReadDeadline(time.Time{})

	n, err := s.tty.Read(p)
	if err != nil {
		if os.IsTimeout(err) {
			return n, nil
		}
		if n > 0 {
			return n, nil
		}
		return 0, err
	}
	return n, nil
}

// Write sends bytes to the terminal, satisfying io.Writer for the
// render sink.
func (s *Session) Write(p []byte) (int, error) {
	return s.tty.Write(p)
}
