package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicWordRecognized(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("__NOTOC__"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, NodeMagicWord, out.Nodes[0].Type())
}

func TestMagicWordUnrecognizedIsLiteral(t *testing.T) {
	input := "__BOGUS__"
	out := Parse(DefaultConfiguration(), []byte(input))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, input, textValue(out.Nodes[0]))
}

func TestMagicWordMissingClosingUnderscoresIsLiteral(t *testing.T) {
	input := "__NOTOC_"
	out := Parse(DefaultConfiguration(), []byte(input))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, input, textValue(out.Nodes[0]))
}
