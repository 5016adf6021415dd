package bbcode

// cursor scans bytes from the input while maintaining a Position.
//
// A cursor is a value: copying it checkpoints the scan, and assigning the
// copy back restores it. Tag-block matching relies on this to roll back a
// failed attempt completely before the next grammar alternative is tried.
type cursor struct {
	input string
	pos   Position
}

func newCursor(filename, input string) cursor {
	return cursor{
		input: input,
		pos:   Position{Filename: filename, Line: 1, Column: 1},
	}
}

func (c *cursor) eof() bool {
	return c.pos.Offset >= len(c.input)
}

// peek at the next byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos.Offset]
}

// next consumes and returns the next byte. Must not be called at EOF.
func (c *cursor) next() byte {
	b := c.input[c.pos.Offset]
	c.pos.Offset++
	switch {
	case b == '\n':
		c.pos.Line++
		c.pos.Column = 1
	case b&0xc0 == 0x80:
		// UTF-8 continuation byte; column counts runes, not bytes.
	default:
		c.pos.Column++
	}
	return b
}

// expect consumes the next byte if it equals b.
func (c *cursor) expect(b byte) bool {
	if c.peek() != b {
		return false
	}
	c.next()
	return true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// skipSpace skips separator whitespace between the structural tokens of a
// tag block. The scan* methods below never skip internally: whitespace is
// either a separator here, or data.
func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.peek()) {
		c.next()
	}
}

// scanTagName scans an opening tag name: one or more bytes, none of which
// is "=", "]", "/" or whitespace. Returns "" if no byte qualifies.
func (c *cursor) scanTagName() string {
	start := c.pos.Offset
	for !c.eof() {
		b := c.peek()
		if b == '=' || b == ']' || b == '/' || isSpace(b) {
			break
		}
		c.next()
	}
	return c.input[start:c.pos.Offset]
}

// scanCloseName scans a closing tag name: one or more bytes, none of which
// is "]" or whitespace. Unlike opening names, "/" and "=" are permitted.
func (c *cursor) scanCloseName() string {
	start := c.pos.Offset
	for !c.eof() {
		b := c.peek()
		if b == ']' || isSpace(b) {
			break
		}
		c.next()
	}
	return c.input[start:c.pos.Offset]
}

// scanAttribute scans an attribute value: everything up to, but not
// including, the next "]". The value is stored verbatim, whitespace
// included.
func (c *cursor) scanAttribute() string {
	start := c.pos.Offset
	for !c.eof() && c.peek() != ']' {
		c.next()
	}
	return c.input[start:c.pos.Offset]
}

// scanText scans a maximal run of bytes not containing "[".
func (c *cursor) scanText() string {
	start := c.pos.Offset
	for !c.eof() && c.peek() != '[' {
		c.next()
	}
	return c.input[start:c.pos.Offset]
}
