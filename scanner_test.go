package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPositionTracking(t *testing.T) {
	c := newCursor("", "a\nbé")
	c.next() // a
	assert.Equal(t, Position{Offset: 1, Line: 1, Column: 2}, c.pos)
	c.next() // \n
	assert.Equal(t, Position{Offset: 2, Line: 2, Column: 1}, c.pos)
	c.next() // b
	c.next() // é, first byte
	c.next() // é, continuation byte does not advance the column
	assert.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, c.pos)
	assert.True(t, c.eof())
}

func TestCursorCheckpointRestore(t *testing.T) {
	c := newCursor("", "[b]")
	mark := c
	c.next()
	c.next()
	c = mark
	assert.Equal(t, 0, c.pos.Offset)
	assert.Equal(t, byte('['), c.peek())
}

func TestScanTagNameStopsAtDelimiters(t *testing.T) {
	for input, expected := range map[string]string{
		"b]":    "b",
		"b=1]":  "b",
		"b/c]":  "b",
		"b c]":  "b",
		"a[b]":  "a[b",
		"]":     "",
		"quote": "quote",
	} {
		c := newCursor("", input)
		assert.Equal(t, expected, c.scanTagName(), "input %q", input)
	}
}

func TestScanCloseNamePermitsSlashAndEquals(t *testing.T) {
	c := newCursor("", "b/c=d]")
	assert.Equal(t, "b/c=d", c.scanCloseName())
}

func TestScanAttributeVerbatim(t *testing.T) {
	c := newCursor("", " red blue\t]")
	assert.Equal(t, " red blue\t", c.scanAttribute())
	assert.Equal(t, byte(']'), c.peek())
}

func TestScanTextStopsAtBracket(t *testing.T) {
	c := newCursor("", `a]= /\x[b`)
	assert.Equal(t, `a]= /\x`, c.scanText())
	assert.Equal(t, byte('['), c.peek())
}
