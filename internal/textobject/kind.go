// Package textobject resolves text objects against single ranges.
//
// A text object is addressed by a one-character code: w (word), W (WORD),
// p (paragraph), t f a c T e (syntax nodes), m (closest bracket pair),
// g (diff hunk) or any other non-alphanumeric character, which acts as its
// own delimiter pair. Parse turns a code into a Kind and Resolve maps a
// Range through it.
//
// Resolution never mutates anything. Unavailable capabilities, such as a
// missing syntax tree or no enclosing pair, leave the range unchanged. The
// one exception is the diff object, which reports ErrDiffUnavailable when
// the document has no diff so that callers can abort the whole command.
package textobject

import (
	"fmt"

	"github.com/dshills/textobj/internal/syntax"
)

// Span selects how much of an object is taken.
type Span uint8

const (
	// Inside takes the object's interior.
	Inside Span = iota
	// Around takes the object with its delimiters or surrounding whitespace.
	Around
)

// String returns a string representation of the span.
func (s Span) String() string {
	if s == Around {
		return "around"
	}
	return "inside"
}

// Tag identifies the resolution strategy of a Kind.
type Tag uint8

const (
	// TagNone resolves to the input range unchanged.
	TagNone Tag = iota
	TagWord
	TagBigWord
	TagParagraph
	TagSyntaxNode
	TagClosestPair
	TagLiteralPair
	TagChangedHunk

	tagCount
)

var tagNames = [tagCount]string{
	TagNone:        "none",
	TagWord:        "word",
	TagBigWord:     "WORD",
	TagParagraph:   "paragraph",
	TagSyntaxNode:  "node",
	TagClosestPair: "closest-pair",
	TagLiteralPair: "pair",
	TagChangedHunk: "change",
}

// String returns a string representation of the tag.
func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// Kind is a parsed object code. Name is set for TagSyntaxNode and Char for
// TagLiteralPair.
type Kind struct {
	Tag  Tag
	Name string
	Char rune
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k.Tag {
	case TagSyntaxNode:
		return fmt.Sprintf("node(%s)", k.Name)
	case TagLiteralPair:
		return fmt.Sprintf("pair(%q)", k.Char)
	}
	return k.Tag.String()
}

// NeedsDiff reports whether resolving k requires a diff handle.
func (k Kind) NeedsDiff() bool {
	return k.Tag == TagChangedHunk
}

// IsLiteral reports whether k treats its code character as a delimiter.
func (k Kind) IsLiteral() bool {
	return k.Tag == TagLiteralPair
}

var codes = map[rune]Kind{
	'w': {Tag: TagWord},
	'W': {Tag: TagBigWord},
	'p': {Tag: TagParagraph},
	't': {Tag: TagSyntaxNode, Name: syntax.ObjectClass},
	'f': {Tag: TagSyntaxNode, Name: syntax.ObjectFunction},
	'a': {Tag: TagSyntaxNode, Name: syntax.ObjectParameter},
	'c': {Tag: TagSyntaxNode, Name: syntax.ObjectComment},
	'T': {Tag: TagSyntaxNode, Name: syntax.ObjectTest},
	'e': {Tag: TagSyntaxNode, Name: syntax.ObjectEntry},
	'm': {Tag: TagClosestPair},
	'g': {Tag: TagChangedHunk},
}

// Parse maps an object code to its Kind. Unassigned ASCII letters and
// digits parse to TagNone; every other character is a literal delimiter.
func Parse(ch rune) Kind {
	if k, ok := codes[ch]; ok {
		return k
	}
	if isASCIIAlnum(ch) {
		return Kind{Tag: TagNone}
	}
	return Kind{Tag: TagLiteralPair, Char: ch}
}

func isASCIIAlnum(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}
