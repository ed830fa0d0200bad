// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editor/word.go
// Summary: Whitespace-run scans shared by word motion and word erase.

package editor

import "unicode"

// leftWordBoundary scans left from x: first over the whitespace run
// ending exactly at x, then over the adjacent non-whitespace run, and
// lands one past the last whitespace found, or at column 0.
// Requires 0 < x <= len(line).
func leftWordBoundary(line []rune, x int) int {
	i := x
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}
	// i-1 is whitespace; land one past the start of that run.
	j := i
	for j > 0 && unicode.IsSpace(line[j-1]) {
		j--
	}
	return j + 1
}

// rightWordBoundary scans right from x: first over the whitespace run
// starting at x, then over the following non-whitespace run, and lands
// on the next whitespace, or at line end.
// Requires 0 <= x < len(line).
func rightWordBoundary(line []rune, x int) int {
	i := x
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}
