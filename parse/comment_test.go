package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentBetweenText(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("text<!-- hidden -->more"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 3)
	assert.Equal(t, "text", textValue(out.Nodes[0]))
	assert.Equal(t, NodeComment, out.Nodes[1].Type())
	assert.Equal(t, "more", textValue(out.Nodes[2]))
}

func TestCommentUnterminatedClosesAtEOF(t *testing.T) {
	input := "<!-- never closes"
	out := Parse(DefaultConfiguration(), []byte(input))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	c, ok := out.Nodes[0].(*CommentNode)
	require.True(t, ok, "expected CommentNode, got %T", out.Nodes[0])
	assert.Equal(t, 0, c.Start)
	assert.Equal(t, len(input), c.End)
}
