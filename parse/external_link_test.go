package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalLinkWithDisplayText(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("[https://example.com home page]"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	l, ok := out.Nodes[0].(*ExternalLinkNode)
	require.True(t, ok, "expected ExternalLinkNode, got %T", out.Nodes[0])
	require.Len(t, l.Nodes, 1)
	assert.Equal(t, "https://example.com home page", textValue(l.Nodes[0]))
}

func TestExternalLinkBareURL(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("[http://example.com]"))
	require.Len(t, out.Nodes, 1)
	l := out.Nodes[0].(*ExternalLinkNode)
	require.Len(t, l.Nodes, 1)
	assert.Equal(t, "http://example.com", textValue(l.Nodes[0]))
}

func TestExternalLinkUnrecognizedProtocolIsText(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("[gopher://example.com text]"))
	require.Empty(t, out.Warnings)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, NodeText, out.Nodes[0].Type())
	assert.Equal(t, "[gopher://example.com text]", textValue(out.Nodes[0]))
}

func TestExternalLinkUnterminatedAtEndOfLineRewinds(t *testing.T) {
	input := "[https://example.com broken\nnext line"
	out := Parse(DefaultConfiguration(), []byte(input))
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, WarningInvalidLinkSyntax, out.Warnings[0].Message)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, input, textValue(out.Nodes[0]))
}

func TestExternalLinkProtocolRelative(t *testing.T) {
	out := Parse(DefaultConfiguration(), []byte("[//example.com display]"))
	require.Len(t, out.Nodes, 1)
	l, ok := out.Nodes[0].(*ExternalLinkNode)
	require.True(t, ok, "expected ExternalLinkNode, got %T", out.Nodes[0])
	require.Len(t, l.Nodes, 1)
	assert.Equal(t, "//example.com display", textValue(l.Nodes[0]))
}
