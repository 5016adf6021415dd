package bbcode

import (
	"fmt"
)

// Position of a node or error within the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Node is an element of a parsed document.
//
// It will be one of *Tag, *Text or *EscapedBracket.
type Node interface {
	// Position of the first byte of the node in the input.
	Position() Position
	node()
}

// Document is the result of a parse: the ordered top-level nodes of the
// input. It is immutable once returned.
type Document struct {
	Nodes []Node
}

// Tag is a matched "[name(=attr)]...[/closing]" span.
//
// Name and ClosingName are scanned independently; the grammar does not
// require them to be equal and the parser never compares them.
type Tag struct {
	Pos Position

	Name string
	// Attribute is nil when no "=" was present, and points to the raw
	// (possibly empty) value between "=" and "]" otherwise.
	Attribute   *string
	Children    []Node
	ClosingName string
}

func (t *Tag) Position() Position { return t.Pos }
func (t *Tag) node()              {}

// Text is a maximal run of characters not containing "[".
type Text struct {
	Pos Position

	Value string
}

func (t *Text) Position() Position { return t.Pos }
func (t *Text) node()              {}

// EscapedBracket is the two-byte sequence "\[", standing for a literal
// "[" in the output text. The parser does not unescape it; the node type
// exists so consumers can distinguish it from ordinary text.
type EscapedBracket struct {
	Pos Position
}

func (e *EscapedBracket) Position() Position { return e.Pos }
func (e *EscapedBracket) node()              {}
