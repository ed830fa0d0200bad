// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/mouse.go
// Summary: SGR mouse report sub-parser (ESC [ < action ; x ; y M/m).
// Notes: Malformed reports decode to Nop, never an error.

package input

type mouseState int

const (
	mouseAction mouseState = iota
	mouseX
	mouseY
)

// decodeMouse parses the bytes after "ESC [ <". Three decimal fields
// separated by ';', terminated by 'M' (press/drag) or 'm' (release).
func decodeMouse(seq []byte) Command {
	state := mouseAction
	var fields [3]int
	haveDigit := false

	for _, b := range seq {
		switch {
		case b >= '0' && b <= '9':
			fields[state] = fields[state]*10 + int(b-'0')
			haveDigit = true
		case b == ';':
			if !haveDigit || state == mouseY {
				return Command{Kind: Nop}
			}
			state++
			haveDigit = false
		case b == 'M' || b == 'm':
			if state != mouseY || !haveDigit {
				return Command{Kind: Nop}
			}
			return mouseCommand(fields[0], fields[1], fields[2], b == 'm')
		default:
			return Command{Kind: Nop}
		}
	}
	// Ran out of bytes before the terminator.
	return Command{Kind: Nop}
}

func mouseCommand(action, x, y int, release bool) Command {
	ev := MouseEvent{X: x, Y: y}

	switch action {
	case 35:
		ev.Action = MouseHover
		return Command{Kind: Mouse, Event: ev}
	case 64:
		ev.Action = MouseScrollUp
		return Command{Kind: Mouse, Event: ev}
	case 65:
		ev.Action = MouseScrollDown
		return Command{Kind: Mouse, Event: ev}
	}

	switch action &^ 32 { // bit 5 is the drag flag
	case 0:
		ev.Button = MouseLeft
	case 1:
		ev.Button = MouseMiddle
	case 2:
		ev.Button = MouseRight
	case 128:
		ev.Button = MouseBack
	case 129:
		ev.Button = MouseForward
	default:
		return Command{Kind: Nop}
	}

	switch {
	case release:
		ev.Action = MouseRelease
	case action&32 != 0:
		ev.Action = MouseDrag
	default:
		ev.Action = MousePress
	}
	return Command{Kind: Mouse, Event: ev}
}
