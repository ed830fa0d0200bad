// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/command.go
// Summary: Closed command set emitted by the terminal input decoder.
// Usage: Consumed by the editor session; one Command per decoded event.

package input

// Kind identifies a decoded command.
type Kind int

const (
	// Nop is emitted for recognized-but-unused and unrecognized input.
	// The decoder is total: garbage never fails, it decodes to Nop.
	Nop Kind = iota
	// Err marks a failed read; the accompanying error is fatal.
	Err
	Printable
	Enter
	Tab
	Backspace
	Delete
	Escape
	Save
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	CtrlArrowLeft
	CtrlArrowRight
	Home
	End
	CtrlHome
	CtrlEnd
	CtrlBackspace
	CtrlDelete
	AltBackspace
	AltDelete
	Mouse
)

// Command is one semantic editing command. Rune is set for Printable,
// Event for Mouse; both are zero otherwise.
type Command struct {
	Kind  Kind
	Rune  rune
	Event MouseEvent
}

// MouseButton identifies the button carried by an SGR mouse report.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseBack
	MouseForward
)

// MouseAction identifies what the pointer did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
	MouseHover
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a decoded SGR mouse report. X and Y are 1-based
// terminal cell coordinates as sent by the terminal.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
	X, Y   int
}
