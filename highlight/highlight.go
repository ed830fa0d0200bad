// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Static keyword classifier for the render sink.
// Usage: Classify is a pure word-at-a-time lookup; no syntax state is
// kept across words or lines. The word tables come from the Chroma
// lexer matching the file's language, detected with go-enry, with a
// built-in generic table as fallback.

package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// Class is the color class a word belongs to.
type Class int

const (
	ClassNone Class = iota
	ClassKeyword
	ClassType
	ClassLiteral
	ClassSpecial
)

// Classifier maps words to color classes for one file.
type Classifier struct {
	lexer chroma.Lexer
	cache map[string]Class
}

// NewClassifier picks a lexer for filename (content aids detection for
// extension-less files). A nil lexer is fine; the fallback table serves.
func NewClassifier(filename string, content []byte) *Classifier {
	c := &Classifier{cache: make(map[string]Class)}
	if filename == "" {
		return c
	}
	lang := enry.GetLanguage(filepath.Base(filename), content)
	if lang != "" {
		c.lexer = lexers.Get(lang)
	}
	return c
}

// Classify returns the color class for a single word.
func (c *Classifier) Classify(word string) Class {
	if word == "" {
		return ClassNone
	}
	if cl, ok := c.cache[word]; ok {
		return cl
	}
	cl := c.classify(word)
	c.cache[word] = cl
	return cl
}

func (c *Classifier) classify(word string) Class {
	if c.lexer == nil {
		return fallbackTable[word]
	}
	it, err := c.lexer.Tokenise(nil, word)
	if err != nil {
		return ClassNone
	}
	// A keyword must tokenize as exactly one token covering the word.
	tok := it()
	if tok == chroma.EOF || strings.TrimRight(tok.Value, "\n") != word {
		return ClassNone
	}
	if next := it(); next != chroma.EOF && strings.TrimSpace(next.Value) != "" {
		return ClassNone
	}
	return tokenClass(tok.Type)
}

func tokenClass(t chroma.TokenType) Class {
	switch {
	case t == chroma.KeywordType:
		return ClassType
	case t == chroma.KeywordConstant, t == chroma.NameConstant:
		return ClassLiteral
	case t == chroma.KeywordPseudo:
		return ClassSpecial
	case t.InCategory(chroma.Keyword):
		return ClassKeyword
	case t == chroma.NameBuiltin:
		return ClassLiteral
	}
	return ClassNone
}

// fallbackTable serves files with no detected language. It is a small
// cross-language union, biased toward the usual suspects.
var fallbackTable = map[string]Class{
	"break": ClassKeyword, "case": ClassKeyword, "const": ClassKeyword,
	"continue": ClassKeyword, "else": ClassKeyword, "enum": ClassKeyword,
	"fn": ClassKeyword, "for": ClassKeyword, "func": ClassKeyword,
	"if": ClassKeyword, "impl": ClassKeyword, "import": ClassKeyword,
	"in": ClassKeyword, "let": ClassKeyword, "loop": ClassKeyword,
	"match": ClassKeyword, "mod": ClassKeyword, "pub": ClassKeyword,
	"return": ClassKeyword, "struct": ClassKeyword, "switch": ClassKeyword,
	"trait": ClassKeyword, "type": ClassKeyword, "use": ClassKeyword,
	"var": ClassKeyword, "while": ClassKeyword,

	"bool": ClassType, "byte": ClassType, "char": ClassType,
	"f32": ClassType, "f64": ClassType, "float64": ClassType,
	"i32": ClassType, "i64": ClassType, "int": ClassType,
	"rune": ClassType, "str": ClassType, "string": ClassType,
	"u32": ClassType, "u64": ClassType, "usize": ClassType,

	"false": ClassLiteral, "nil": ClassLiteral, "none": ClassLiteral,
	"null": ClassLiteral, "true": ClassLiteral,

	"unsafe": ClassSpecial,
}
