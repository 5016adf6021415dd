package bbcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbcode-go/bbcode"
)

func TestErrorReporting(t *testing.T) {
	_, err := bbcode.ParseString("a[b")
	require.Error(t, err)
	perr, ok := err.(bbcode.Error)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, "unmatched input", perr.Message())
	assert.Equal(t, "1:2: unmatched input", perr.Error())
	assert.Equal(t, 1, perr.Position().Offset)
}

func TestLimitErrorsImplementError(t *testing.T) {
	for _, err := range []bbcode.Error{
		&bbcode.MaxDepthError{Pos: bbcode.Position{Line: 1, Column: 7, Offset: 6}, Limit: 2},
		&bbcode.TagLimitError{Limit: 3},
		&bbcode.InputLimitError{Limit: 10, Size: 50},
	} {
		assert.NotEmpty(t, err.Message())
		assert.Contains(t, err.Error(), err.Message())
	}
}

func TestMaxDepthErrorMessage(t *testing.T) {
	err := &bbcode.MaxDepthError{Pos: bbcode.Position{Line: 2, Column: 3}, Limit: 4}
	assert.Equal(t, "2:3: tag nesting exceeded limit (max 4)", err.Error())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "boom", bbcode.FormatError(bbcode.Position{}, "boom"))
	pos := bbcode.Position{Filename: "f.bb", Line: 3, Column: 9}
	assert.Equal(t, "f.bb:3:9: boom", bbcode.FormatError(pos, "boom"))
}
