// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import "testing"

func TestClassify_FallbackTable(t *testing.T) {
	c := NewClassifier("", nil)
	cases := []struct {
		word string
		want Class
	}{
		{"func", ClassKeyword},
		{"fn", ClassKeyword},
		{"int", ClassType},
		{"true", ClassLiteral},
		{"unsafe", ClassSpecial},
		{"banana", ClassNone},
		{"", ClassNone},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.word); got != tc.want {
			t.Errorf("%q: expected class %d, got %d", tc.word, tc.want, got)
		}
	}
}

func TestClassify_GoFile(t *testing.T) {
	c := NewClassifier("main.go", []byte("package main\n"))
	if c.lexer == nil {
		t.Fatalf("Expected a lexer for main.go")
	}
	cases := []struct {
		word string
		want Class
	}{
		{"func", ClassKeyword},
		{"return", ClassKeyword},
		{"int", ClassType},
		{"true", ClassLiteral},
		{"hello", ClassNone},
		{"funcs", ClassNone}, // keyword prefix is not a keyword
	}
	for _, tc := range cases {
		if got := c.Classify(tc.word); got != tc.want {
			t.Errorf("%q: expected class %d, got %d", tc.word, tc.want, got)
		}
	}
}

func TestClassify_CachesLookups(t *testing.T) {
	c := NewClassifier("", nil)
	c.Classify("func")
	if cl, ok := c.cache["func"]; !ok || cl != ClassKeyword {
		t.Errorf("Expected cached keyword class, got %d (cached=%v)", cl, ok)
	}
}

func TestNewClassifier_UnknownExtension(t *testing.T) {
	c := NewClassifier("notes.xyzzy", []byte("plain text"))
	// Whatever detection decides, classification must stay total.
	if got := c.Classify("qwerty"); got != ClassNone {
		t.Errorf("Expected ClassNone for unknown word, got %d", got)
	}
}
