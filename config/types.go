// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed views over the raw config map: alignment and the
// editing preference flags.

package config

import "log"

// Alignment is the horizontal placement of the text area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignRight
)

var alignmentNames = map[string]Alignment{
	"left":         AlignLeft,
	"center-left":  AlignCenterLeft,
	"center":       AlignCenter,
	"center-right": AlignCenterRight,
	"right":        AlignRight,
}

func (a Alignment) String() string {
	for name, v := range alignmentNames {
		if v == a {
			return name
		}
	}
	return "center-left"
}

// Alignment returns the configured horizontal alignment. Only
// center-left affects layout in this release; others warn and load
// anyway so existing config files stay valid.
func (c Config) Alignment() Alignment {
	raw := c.GetString("alignment", "center-left")
	a, ok := alignmentNames[raw]
	if !ok {
		log.Printf("Config: %q is not a valid alignment (left, center-left, center, center-right, right)", raw)
		return AlignCenterLeft
	}
	if a != AlignCenterLeft {
		log.Printf("Config: only center-left alignment is currently implemented")
	}
	return a
}

// Preferences are the behavior flags for motion and erase commands.
// Wrap flags decide whether an operation crosses a line boundary;
// scroll flags decide whether the viewport follows at a screen edge.
type Preferences struct {
	SaveOnExit bool

	WrapMoveLeft  bool
	WrapMoveRight bool
	WrapWordLeft  bool
	WrapWordRight bool

	ScrollUpAtEdge   bool
	ScrollDownAtEdge bool

	UpToLineStartAtFirstLine bool
	DownToLineEndAtLastLine  bool

	WrapEraseLeft      bool
	WrapEraseRight     bool
	WrapEraseWordLeft  bool
	WrapEraseWordRight bool
}

// Preferences extracts the preference flags from the config.
func (c Config) Preferences() Preferences {
	return Preferences{
		SaveOnExit:               c.GetBool("save_on_exit", false),
		WrapMoveLeft:             c.GetBool("move_left_wraps", true),
		WrapMoveRight:            c.GetBool("move_right_wraps", true),
		WrapWordLeft:             c.GetBool("word_left_wraps", true),
		WrapWordRight:            c.GetBool("word_right_wraps", true),
		ScrollUpAtEdge:           c.GetBool("move_up_scrolls", true),
		ScrollDownAtEdge:         c.GetBool("move_down_scrolls", true),
		UpToLineStartAtFirstLine: c.GetBool("up_to_line_start_at_first_line", true),
		DownToLineEndAtLastLine:  c.GetBool("down_to_line_end_at_last_line", true),
		WrapEraseLeft:            c.GetBool("erase_left_wraps", true),
		WrapEraseRight:           c.GetBool("erase_right_wraps", true),
		WrapEraseWordLeft:        c.GetBool("erase_word_left_wraps", true),
		WrapEraseWordRight:       c.GetBool("erase_word_right_wraps", true),
	}
}

func defaultConfig() Config {
	return Config{
		"alignment":                      "center-left",
		"save_on_exit":                   false,
		"move_left_wraps":                true,
		"move_right_wraps":               true,
		"word_left_wraps":                true,
		"word_right_wraps":               true,
		"move_up_scrolls":                true,
		"move_down_scrolls":              true,
		"up_to_line_start_at_first_line": true,
		"down_to_line_end_at_last_line":  true,
		"erase_left_wraps":               true,
		"erase_right_wraps":              true,
		"erase_word_left_wraps":          true,
		"erase_word_right_wraps":         true,
	}
}

// DefaultPreferences returns the preferences used when no config loads.
func DefaultPreferences() Preferences {
	return defaultConfig().Preferences()
}
