package bbcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbcode-go/bbcode"
)

func roundTrip(t *testing.T, input string) string {
	t.Helper()
	doc, err := bbcode.ParseString(input)
	require.NoError(t, err)
	return doc.String()
}

func TestStringRoundTrip(t *testing.T) {
	// Canonical inputs reproduce byte for byte.
	for _, input := range []string{
		"",
		"plain ]=/ text",
		"[b]x[/b]",
		"[size=12]x[/size]",
		"[size=]x[/size]",
		"[b]x[/c]",
		"[a][b]x[/b][/a]",
		`\[b]`,
		`[quote=a b c]x[/quote]\[done`,
	} {
		assert.Equal(t, input, roundTrip(t, input), "input %q", input)
	}
}

func TestStringCanonicalisesSeparatorWhitespace(t *testing.T) {
	assert.Equal(t, "[b]x[/b]", roundTrip(t, "[ b ]x[/ b ]"))
}

func TestNodeString(t *testing.T) {
	doc, err := bbcode.ParseString(`[b=1]x[/c]\[y`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, "[b=1]x[/c]", doc.Nodes[0].(*bbcode.Tag).String())
	assert.Equal(t, `\[`, doc.Nodes[1].(*bbcode.EscapedBracket).String())
	assert.Equal(t, "y", doc.Nodes[2].(*bbcode.Text).String())
}
