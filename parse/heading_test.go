package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingBasic(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("== Title ==\ntext"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 2)

	h, ok := out.Nodes[0].(*HeadingNode)
	require.True(t, ok, "expected a HeadingNode, got %T", out.Nodes[0])
	assert.Equal(t, 2, h.Level)
	require.Len(t, h.Nodes, 1)
	assert.Equal(t, "Title", textValue(h.Nodes[0]))

	assert.Equal(t, NodeText, out.Nodes[1].Type())
}

func TestHeadingMismatchedLevelCorrects(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("=== Title ==\n"))
	require.Len(t, out.Nodes, 1)
	h := out.Nodes[0].(*HeadingNode)
	assert.Equal(t, 2, h.Level)
	assert.Equal(t, []WarningMessage{WarningUnexpectedHeadingLevelCorrecting}, messages(out.Warnings))
	// The opening run was longer than the closing one by one '=': that
	// surplus character (plus the space after it) surfaces as leading text
	// rather than being silently dropped.
	require.Len(t, h.Nodes, 1)
	assert.Equal(t, "= Title", textValue(h.Nodes[0]))
}

func TestHeadingMismatchedLevelSurfacesSurplusMarkersAsText(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("==== H ===\n"))
	require.Len(t, out.Nodes, 1)
	h := out.Nodes[0].(*HeadingNode)
	assert.Equal(t, 3, h.Level)
	require.Len(t, h.Nodes, 1)
	assert.Equal(t, "= H", textValue(h.Nodes[0]))
}

func TestHeadingOpeningRunCappedAtSix(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("======= x =======\n"))
	require.Len(t, out.Nodes, 1)
	h := out.Nodes[0].(*HeadingNode)
	assert.Equal(t, 6, h.Level)
	// The 7th leading '=' was never part of the opening marker, so it
	// surfaces as content; the 7th trailing '=' is still consumed as part
	// of the (now over-long) closing delimiter.
	require.Len(t, h.Nodes, 1)
	assert.Equal(t, "= x", textValue(h.Nodes[0]))
}

func TestHeadingNoClosingRunRewinds(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("== Title\n"))
	assert.Equal(t, []WarningMessage{WarningInvalidHeadingSyntaxRewinding}, messages(out.Warnings))
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, NodeText, out.Nodes[0].Type())
	assert.Equal(t, "== Title", textValue(out.Nodes[0]))
}

func TestHeadingLevelsOneThroughSix(t *testing.T) {
	for level := 1; level <= 6; level++ {
		marker := ""
		for i := 0; i < level; i++ {
			marker += "="
		}
		input := marker + "x" + marker
		out := Parse(DefaultConfiguration(), []byte(input))
		require.Empty(t, out.Warnings, "level %d", level)
		require.Len(t, out.Nodes, 1, "level %d", level)
		h := out.Nodes[0].(*HeadingNode)
		assert.Equal(t, level, h.Level)
		assert.Equal(t, 0, h.Start)
		assert.Equal(t, len(input), h.End)
	}
}
