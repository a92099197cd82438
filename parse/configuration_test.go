package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindProtocolLongestMatchCaseInsensitive(t *testing.T) {
	c := DefaultConfiguration()
	length, ok := c.FindProtocol([]byte("HTTPS://example.com"))
	require := assert.New(t)
	require.True(ok)
	require.Equal(len("https://"), length)
}

func TestFindProtocolNoMatch(t *testing.T) {
	c := DefaultConfiguration()
	_, ok := c.FindProtocol([]byte("gopher://example.com"))
	assert.False(t, ok)
}

func TestFindCharacterEntityPicksLongestCandidate(t *testing.T) {
	c := DefaultConfiguration()
	length, ch, ok := c.FindCharacterEntity([]byte("amp;rest"))
	require := assert.New(t)
	require.True(ok)
	require.Equal('&', ch)
	require.Equal(len("amp;"), length)
}

func TestFindCharacterEntityRequiresSemicolon(t *testing.T) {
	c := DefaultConfiguration()
	_, _, ok := c.FindCharacterEntity([]byte("amp rest"))
	assert.False(t, ok)
}

func TestFindMagicWordMatchesConfiguredWord(t *testing.T) {
	c := DefaultConfiguration()
	length, ok := c.FindMagicWord([]byte("NOTOC__"))
	require := assert.New(t)
	require.True(ok)
	require.Equal(len("NOTOC"), length)
}

func TestTagClassForDistinguishesOrdinaryFromExtension(t *testing.T) {
	c := DefaultConfiguration()
	class, ok := c.TagClassFor("b")
	require := assert.New(t)
	require.True(ok)
	require.Equal(TagClassTag, class)

	class, ok = c.TagClassFor("ref")
	require.True(ok)
	require.Equal(TagClassExtensionTag, class)

	_, ok = c.TagClassFor("bogus")
	require.False(ok)
}

func TestNamespaceForNormalizesAliases(t *testing.T) {
	c := DefaultConfiguration()
	ns, ok := c.NamespaceFor("image")
	require := assert.New(t)
	require.True(ok)
	require.Equal("File", ns.Name)
}

func TestIsRedirectKeywordCaseInsensitive(t *testing.T) {
	c := DefaultConfiguration()
	assert.True(t, c.IsRedirectKeyword([]byte("redirect")))
	assert.True(t, c.IsRedirectKeyword([]byte("REDIRECT")))
	assert.False(t, c.IsRedirectKeyword([]byte("forward")))
}
