package bbcode

import (
	"bytes"
	"fmt"
)

// String reconstructs source for the document by concatenating the spans
// of its nodes in order. Separator whitespace inside tag delimiters is not
// retained by the tree, so the result is the canonical spelling: parsing
// "[ b ]x[/ b ]" and printing it yields "[b]x[/b]". For input written
// without separator whitespace the result is byte-identical to the input.
func (d *Document) String() string {
	var buf bytes.Buffer
	for _, n := range d.Nodes {
		writeNode(&buf, n)
	}
	return buf.String()
}

func (t *Tag) String() string {
	var buf bytes.Buffer
	writeNode(&buf, t)
	return buf.String()
}

func (t *Text) String() string { return t.Value }

func (e *EscapedBracket) String() string { return `\[` }

func writeNode(buf *bytes.Buffer, n Node) {
	switch n := n.(type) {
	case *Tag:
		buf.WriteByte('[')
		buf.WriteString(n.Name)
		if n.Attribute != nil {
			buf.WriteByte('=')
			buf.WriteString(*n.Attribute)
		}
		buf.WriteByte(']')
		for _, child := range n.Children {
			writeNode(buf, child)
		}
		fmt.Fprintf(buf, "[/%s]", n.ClosingName)

	case *Text:
		buf.WriteString(n.Value)

	case *EscapedBracket:
		buf.WriteString(`\[`)
	}
}
