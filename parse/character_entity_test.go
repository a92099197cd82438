package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterEntityRecognized(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("&amp;"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	e, ok := out.Nodes[0].(*CharacterEntityNode)
	require.True(t, ok, "expected CharacterEntityNode, got %T", out.Nodes[0])
	assert.Equal(t, '&', e.Character)
}

func TestCharacterEntityUnrecognizedIsLiteral(t *testing.T) {
	input := "&foo;"
	out := Parse(DefaultConfiguration(), []byte(input))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, input, textValue(out.Nodes[0]))
}
