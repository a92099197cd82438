package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectRecognized(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("#REDIRECT [[Target Page]]"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	r, ok := out.Nodes[0].(*RedirectNode)
	require.True(t, ok, "expected RedirectNode, got %T", out.Nodes[0])
	assert.Equal(t, "Target Page", string(r.Target))
}

func TestRedirectUnrecognizedKeywordFallsBackToList(t *testing.T) {
	// "NotAKeyword" isn't a configured redirect word, so the leading '#'
	// is reinterpreted as an ordinary numbered-list marker instead.
	out := Parse(DefaultConfiguration(), []byte("#NotAKeyword foo"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	list, ok := out.Nodes[0].(*OrderedListNode)
	require.True(t, ok, "expected OrderedListNode, got %T", out.Nodes[0])
	require.Len(t, list.Items, 1)
	assert.Equal(t, "NotAKeyword foo", textValue(list.Items[0].Nodes[0]))
}

func TestRedirectMissingTargetFallsBackToList(t *testing.T) {
	// A recognized keyword with no "[[...]]" target right after it is not a
	// redirect either; the '#' still falls back to list-item parsing.
	out := Parse(DefaultConfiguration(), []byte("#REDIRECT nowhere"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	list, ok := out.Nodes[0].(*OrderedListNode)
	require.True(t, ok, "expected OrderedListNode, got %T", out.Nodes[0])
	require.Len(t, list.Items, 1)
	assert.Equal(t, "REDIRECT nowhere", textValue(list.Items[0].Nodes[0]))
}
