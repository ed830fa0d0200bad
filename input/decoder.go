// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/decoder.go
// Summary: Turns the raw terminal byte stream into Commands.
// Usage: One blocking read per command, plus a bounded non-blocking
// lookahead after ESC to tell a bare Escape from a sequence.
// Notes: The ESC lookahead is a timing heuristic, not a protocol
// guarantee; a slow terminal can split a sequence across reads.

package input

import (
	"log"
	"unicode/utf8"
)

// lookaheadBudget bounds the trailing bytes read after an ESC byte.
// 32 covers every sequence we decode, including long mouse reports.
const lookaheadBudget = 32

// ByteSource supplies raw terminal bytes.
type ByteSource interface {
	// ReadByte blocks until the next byte arrives.
	ReadByte() (byte, error)
	// ReadPending reads whatever bytes are already available without
	// blocking. Zero bytes with a nil error means nothing was pending.
	ReadPending(p []byte) (int, error)
}

// Decoder decodes the byte stream from a ByteSource.
type Decoder struct {
	src ByteSource

	// Debug traces unrecognized sequences through the standard logger.
	Debug bool
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next decodes exactly one Command. The returned error is non-nil only
// for a failed blocking read, which is fatal to the caller's loop.
func (d *Decoder) Next() (Command, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return Command{Kind: Err}, err
	}

	switch b {
	case 8: // Ctrl+Backspace arrives as BS
		return Command{Kind: CtrlBackspace}, nil
	case 9:
		return Command{Kind: Tab}, nil
	case 10, 13:
		return Command{Kind: Enter}, nil
	case 19: // Ctrl+S
		return Command{Kind: Save}, nil
	case 27:
		return d.decodeEscape()
	case 127:
		return Command{Kind: Backspace}, nil
	}
	if b < 32 {
		d.trace("control byte %d", b)
		return Command{Kind: Nop}, nil
	}
	return d.decodeRune(b)
}

// decodeRune completes a UTF-8 sequence whose first byte has been read.
func (d *Decoder) decodeRune(b byte) (Command, error) {
	if b < utf8.RuneSelf {
		return Command{Kind: Printable, Rune: rune(b)}, nil
	}
	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = b
	for len(buf) < utf8.UTFMax && !utf8.FullRune(buf) {
		nb, err := d.src.ReadByte()
		if err != nil {
			return Command{Kind: Err}, err
		}
		buf = append(buf, nb)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		d.trace("invalid UTF-8 %v", buf)
		return Command{Kind: Nop}, nil
	}
	return Command{Kind: Printable, Rune: r}, nil
}

// decodeEscape classifies the bytes following an ESC. No pending bytes
// means the user pressed the Escape key itself.
func (d *Decoder) decodeEscape() (Command, error) {
	var buf [lookaheadBudget]byte
	n, err := d.src.ReadPending(buf[:])
	if err != nil {
		return Command{Kind: Err}, err
	}
	if n == 0 {
		return Command{Kind: Escape}, nil
	}
	tail := buf[:n]

	switch tail[0] {
	case '[':
		if n >= 2 && tail[1] == '<' {
			return decodeMouse(tail[2:]), nil
		}
		return d.decodeCSI(tail[1:]), nil
	case 'O':
		// SS3 function keys F1-F4. Recognized, unused by the editor.
		if n == 2 && tail[1] >= 'P' && tail[1] <= 'S' {
			return Command{Kind: Nop}, nil
		}
	case 127: // ESC DEL
		return Command{Kind: AltBackspace}, nil
	}
	d.trace("unrecognized escape tail %q", tail)
	return Command{Kind: Nop}, nil
}

// decodeCSI parses the bytes after ESC '[': optional numeric parameters
// separated by ';', then a final letter or '~'.
func (d *Decoder) decodeCSI(seq []byte) Command {
	var params []int
	cur, haveDigit := 0, false
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			haveDigit = true
		case b == ';':
			params = append(params, cur)
			cur, haveDigit = 0, false
		case b >= 'A' && b <= 'Z' || b == '~':
			if i != len(seq)-1 {
				d.trace("trailing bytes after CSI final %q", seq)
				return Command{Kind: Nop}
			}
			if haveDigit || len(params) > 0 {
				params = append(params, cur)
			}
			return d.csiCommand(b, params)
		default:
			d.trace("unrecognized CSI byte %q in %q", b, seq)
			return Command{Kind: Nop}
		}
	}
	d.trace("CSI sequence without final byte %q", seq)
	return Command{Kind: Nop}
}

func (d *Decoder) csiCommand(final byte, params []int) Command {
	// Modified keys arrive as "1;<mod>X". 5 is Ctrl, 3 is Alt.
	mod := 0
	if len(params) == 2 {
		mod = params[1]
	}

	switch final {
	case 'A': // Ctrl+Up behaves as Up
		return Command{Kind: ArrowUp}
	case 'B':
		return Command{Kind: ArrowDown}
	case 'C':
		if mod == 5 {
			return Command{Kind: CtrlArrowRight}
		}
		return Command{Kind: ArrowRight}
	case 'D':
		if mod == 5 {
			return Command{Kind: CtrlArrowLeft}
		}
		return Command{Kind: ArrowLeft}
	case 'H':
		if mod == 5 {
			return Command{Kind: CtrlHome}
		}
		return Command{Kind: Home}
	case 'F':
		if mod == 5 {
			return Command{Kind: CtrlEnd}
		}
		return Command{Kind: End}
	case '~':
		if len(params) == 0 {
			return Command{Kind: Nop}
		}
		switch params[0] {
		case 1, 7:
			return Command{Kind: Home}
		case 4, 8:
			return Command{Kind: End}
		case 3:
			switch mod {
			case 5:
				return Command{Kind: CtrlDelete}
			case 3:
				return Command{Kind: AltDelete}
			default: // plain or Shift+Delete
				return Command{Kind: Delete}
			}
		case 2, 5, 6: // Insert, PageUp, PageDown: recognized, unused
			return Command{Kind: Nop}
		}
	}
	d.trace("unrecognized CSI final %q params %v", final, params)
	return Command{Kind: Nop}
}

func (d *Decoder) trace(format string, args ...interface{}) {
	if d.Debug {
		log.Printf("Decoder: "+format, args...)
	}
}
