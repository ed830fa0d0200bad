// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/ansi.go
// Summary: ANSI/VT escape sequence helpers and the editor palette.
// Notes: Palette is Catppuccin Mocha (https://github.com/catppuccin).

package render

import "fmt"

const (
	csi = "\x1b["

	clearRight = csi + "0K"
	clearAll   = csi + "2J"
	hideCursor = csi + "?25l"
	showCursor = csi + "?25h"
)

// RGB is a 24-bit terminal color.
type RGB struct{ R, G, B uint8 }

var (
	colorMantle   = RGB{24, 24, 37}    // beyond-EOF background
	colorBase     = RGB{30, 30, 46}    // text background
	colorSurface0 = RGB{49, 50, 68}    // header background
	colorSubtext0 = RGB{166, 173, 200} // header foreground
	colorText     = RGB{205, 214, 244} // text foreground

	colorRed    = RGB{243, 139, 168}
	colorYellow = RGB{249, 226, 175}
	colorBlue   = RGB{137, 180, 250}
	colorCyan   = RGB{148, 226, 213}
)

func fg(c RGB) string { return fmt.Sprintf("%s38;2;%d;%d;%dm", csi, c.R, c.G, c.B) }
func bg(c RGB) string { return fmt.Sprintf("%s48;2;%d;%d;%dm", csi, c.R, c.G, c.B) }

func moveTo(row, col int) string { return fmt.Sprintf("%s%d;%dH", csi, row, col) }

// scrollRegion restricts hardware scrolling to rows [top, bottom].
func scrollRegion(top, bottom int) string { return fmt.Sprintf("%s%d;%dr", csi, top, bottom) }

// resetScrollRegion restores full-screen scrolling.
const resetScrollRegion = csi + "r"

// scrollUp shifts the scroll region content up n rows (view moves down).
func scrollUp(n int) string { return fmt.Sprintf("%s%dS", csi, n) }

// scrollDown shifts the scroll region content down n rows.
func scrollDown(n int) string { return fmt.Sprintf("%s%dT", csi, n) }
