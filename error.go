package bbcode

import (
	"fmt"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() Position
}

// FormatError formats an error in the form "pos: message".
func FormatError(pos Position, message string) string {
	if pos == (Position{}) {
		return message
	}
	return fmt.Sprintf("%s: %s", pos, message)
}

// UnmatchedInputError is returned by Parse when no grammar alternative
// matches at some position before the end of the input.
//
// This is the only failure the grammar itself can produce: a lone "[" that
// cannot begin a tag, an unterminated tag block, or any other residue left
// once tag, escape and text have all been tried.
type UnmatchedInputError struct {
	Pos Position
}

func (u *UnmatchedInputError) Error() string { return FormatError(u.Pos, u.Message()) }

func (u *UnmatchedInputError) Message() string { return "unmatched input" }

func (u *UnmatchedInputError) Position() Position { return u.Pos }

// MaxDepthError is returned when tag nesting exceeds the configured
// MaxDepth limit.
type MaxDepthError struct {
	Pos   Position
	Limit int
}

func (m *MaxDepthError) Error() string { return FormatError(m.Pos, m.Message()) }

func (m *MaxDepthError) Message() string {
	return fmt.Sprintf("tag nesting exceeded limit (max %d)", m.Limit)
}

func (m *MaxDepthError) Position() Position { return m.Pos }

// TagLimitError is returned when the number of parsed tags exceeds the
// configured MaxTags limit.
type TagLimitError struct {
	Pos   Position
	Limit int
}

func (t *TagLimitError) Error() string { return FormatError(t.Pos, t.Message()) }

func (t *TagLimitError) Message() string {
	return fmt.Sprintf("tag count exceeded limit (max %d)", t.Limit)
}

func (t *TagLimitError) Position() Position { return t.Pos }

// InputLimitError is returned, before any parsing occurs, when the input
// is larger than the configured MaxInputSize.
type InputLimitError struct {
	Limit int
	Size  int
}

func (i *InputLimitError) Error() string { return i.Message() }

func (i *InputLimitError) Message() string {
	return fmt.Sprintf("input size %d exceeded limit (max %d)", i.Size, i.Limit)
}

func (i *InputLimitError) Position() Position { return Position{} }
