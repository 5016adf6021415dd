package bbcode

import (
	"io"
	"io/ioutil"
)

// DefaultMaxDepth is the tag nesting limit applied unless overridden with
// the MaxDepth option. Nesting depth equals call-stack depth in the
// tag-block matcher, so untrusted input is bounded by default.
const DefaultMaxDepth = 200

// A Parser for BBCode markup.
//
// A Parser is stateless once constructed and is safe for concurrent use.
type Parser struct {
	maxDepth     int
	maxTags      int
	maxInputSize int
	filename     string
	trace        io.Writer
}

// New constructs a Parser, applying any options.
func New(options ...Option) (*Parser, error) {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics if it returns an error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads all of r and parses it.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseString(string(b))
}

// ParseBytes parses b.
func (p *Parser) ParseBytes(b []byte) (*Document, error) {
	return p.ParseString(string(b))
}

// ParseString parses input into a Document.
//
// The entire input must be consumed by the grammar. If no alternative
// matches at some position before the end of input the returned error is
// an *UnmatchedInputError carrying that position.
func (p *Parser) ParseString(input string) (*Document, error) {
	if p.maxInputSize > 0 && len(input) > p.maxInputSize {
		return nil, &InputLimitError{Limit: p.maxInputSize, Size: len(input)}
	}
	s := &state{p: p, cur: newCursor(p.filename, input)}
	nodes, err := s.parseContent(0)
	if err != nil {
		return nil, err
	}
	if !s.cur.eof() {
		return nil, &UnmatchedInputError{Pos: s.cur.pos}
	}
	return &Document{Nodes: nodes}, nil
}

// state for a single parse.
type state struct {
	p    *Parser
	cur  cursor
	tags int
}

// parseContent applies content dispatch repeatedly until no alternative
// matches, returning the nodes matched so far. The caller decides whether
// stopping short of its delimiter (or EOF) is an error.
func (s *state) parseContent(depth int) ([]Node, error) {
	var nodes []Node
	for {
		node, err := s.parseNode(depth)
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nodes, nil
		}
		nodes = append(nodes, node)
	}
}

// parseNode is the ordered-choice content dispatch: tag block, then
// escaped bracket, then text run. The first alternative to match wins. A
// nil, nil return means nothing matched at the current position.
func (s *state) parseNode(depth int) (Node, error) {
	if s.cur.eof() {
		return nil, nil
	}
	node, err := s.parseTagBlock(depth)
	if node != nil || err != nil {
		return node, err
	}
	if node := s.parseEscapedBracket(); node != nil {
		return node, nil
	}
	if node := s.parseText(); node != nil {
		return node, nil
	}
	return nil, nil
}

// parseTagBlock matches "[" name ("=" attr)? "]" content* "[/" name "]".
//
// Whitespace is skipped between structural tokens but never inside them.
// On any mismatch the cursor is restored to the checkpoint taken before
// the "[" so the outer dispatch sees no partial consumption. Limit
// violations are not mismatches: they abort the parse.
func (s *state) parseTagBlock(depth int) (Node, error) {
	mark := s.cur
	pos := s.cur.pos
	if !s.cur.expect('[') {
		return nil, nil
	}
	s.cur.skipSpace()
	name := s.cur.scanTagName()
	if name == "" {
		s.cur = mark
		return nil, nil
	}
	s.cur.skipSpace()
	var attribute *string
	if s.cur.expect('=') {
		value := s.cur.scanAttribute()
		attribute = &value
	}
	if !s.cur.expect(']') {
		s.cur = mark
		return nil, nil
	}
	if s.p.maxDepth > 0 && depth >= s.p.maxDepth {
		return nil, &MaxDepthError{Pos: pos, Limit: s.p.maxDepth}
	}
	s.tags++
	if s.p.maxTags > 0 && s.tags > s.p.maxTags {
		return nil, &TagLimitError{Pos: pos, Limit: s.p.maxTags}
	}
	s.tracef(depth, "open tag %q", name)
	children, err := s.parseContent(depth + 1)
	if err != nil {
		return nil, err
	}
	if !s.cur.expect('[') || !s.cur.expect('/') {
		s.tracef(depth, "tag %q not closed, rolling back", name)
		s.cur = mark
		return nil, nil
	}
	s.cur.skipSpace()
	closing := s.cur.scanCloseName()
	if closing == "" {
		s.cur = mark
		return nil, nil
	}
	s.cur.skipSpace()
	if !s.cur.expect(']') {
		s.cur = mark
		return nil, nil
	}
	s.tracef(depth, "close tag %q", closing)
	return &Tag{Pos: pos, Name: name, Attribute: attribute, Children: children, ClosingName: closing}, nil
}

// parseEscapedBracket matches exactly the two bytes `\[`. There is no
// general escape mechanism; `\]` and friends are plain text.
func (s *state) parseEscapedBracket() Node {
	mark := s.cur
	pos := s.cur.pos
	if !s.cur.expect('\\') || !s.cur.expect('[') {
		s.cur = mark
		return nil
	}
	return &EscapedBracket{Pos: pos}
}

// parseText matches a maximal non-empty run of bytes up to the next "["
// or EOF. "]", "/", "=" and whitespace are ordinary text here.
func (s *state) parseText() Node {
	pos := s.cur.pos
	value := s.cur.scanText()
	if value == "" {
		return nil
	}
	return &Text{Pos: pos, Value: value}
}

var defaultParser = MustNew()

// Parse reads all of r and parses it with a default Parser.
func Parse(r io.Reader) (*Document, error) { return defaultParser.Parse(r) }

// ParseString parses input with a default Parser.
func ParseString(input string) (*Document, error) { return defaultParser.ParseString(input) }

// ParseBytes parses b with a default Parser.
func ParseBytes(b []byte) (*Document, error) { return defaultParser.ParseBytes(b) }
