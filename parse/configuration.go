package parse

import (
	"bytes"
	"strings"

	"golang.org/x/net/html/atom"
)

// Namespace is a configured link-target prefix, e.g. "File" or "Category".
type Namespace struct {
	Name string
}

// TagClass classifies a recognized HTML-like tag name.
type TagClass int

const (
	// TagClassTag is a bare tag that never nests content in the parse
	// tree; it is emitted as a lone StartTag/EndTag node.
	TagClassTag TagClass = iota
	// TagClassExtensionTag is a tag whose body is opaque to this parser
	// and is matched by name, producing a single Tag node.
	TagClassExtensionTag
)

// Configuration is the external lookup oracle the core recognizers consult.
// It never mutates during a parse and is safe to share across concurrent
// calls to Parse. All lookups are pure functions of their inputs.
type Configuration struct {
	// Protocols are URL schemes recognized as external link openers,
	// e.g. "http:", "https:", "//". Matching is the longest matching
	// entry, ASCII case-insensitive.
	Protocols []string

	// CharacterEntities maps an entity name (without the leading '&' or
	// trailing ';') to its decoded scalar value.
	CharacterEntities map[string]rune

	// MagicWords are the accepted "__WORD__" identifiers, without the
	// surrounding underscores.
	MagicWords []string

	// TagNameMap classifies a lowercase tag name.
	TagNameMap map[string]TagClass

	// Namespaces maps a lowercase link-target prefix to its Namespace.
	Namespaces map[string]Namespace

	// RedirectMagicWords are the accepted redirect keywords (e.g.
	// "REDIRECT"), compared case-insensitively.
	RedirectMagicWords []string
}

// FindProtocol returns the length of the longest configured protocol that
// is a prefix of data, matched case-insensitively. ok is false if none
// matches.
func (c *Configuration) FindProtocol(data []byte) (matchLength int, ok bool) {
	best := -1
	for _, p := range c.Protocols {
		if len(p) > len(data) {
			continue
		}
		if strings.EqualFold(string(data[:len(p)]), p) {
			if len(p) > best {
				best = len(p)
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// FindCharacterEntity looks for a configured entity name immediately
// following the '&' at the start of data, terminated by ';'. matchLength
// includes the terminating ';'.
func (c *Configuration) FindCharacterEntity(data []byte) (matchLength int, character rune, ok bool) {
	best := -1
	var bestChar rune
	for name, ch := range c.CharacterEntities {
		candidate := name + ";"
		if len(candidate) > len(data) {
			continue
		}
		if string(data[:len(candidate)]) == candidate && len(candidate) > best {
			best = len(candidate)
			bestChar = ch
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestChar, true
}

// FindMagicWord looks for a configured magic word name immediately
// following the opening "__" at the start of data. The caller is
// responsible for verifying the closing "__" follows the match.
func (c *Configuration) FindMagicWord(data []byte) (matchLength int, ok bool) {
	best := -1
	for _, w := range c.MagicWords {
		if len(w) > len(data) {
			continue
		}
		if string(data[:len(w)]) == w && len(w) > best {
			best = len(w)
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// TagClassFor classifies an already-lowercased tag name.
func (c *Configuration) TagClassFor(nameLower string) (TagClass, bool) {
	class, ok := c.TagNameMap[nameLower]
	return class, ok
}

// NamespaceFor looks up a namespace by an already-lowercased prefix.
func (c *Configuration) NamespaceFor(prefixLower string) (Namespace, bool) {
	ns, ok := c.Namespaces[prefixLower]
	return ns, ok
}

// IsRedirectKeyword reports whether word is a configured redirect magic
// word, compared case-insensitively.
func (c *Configuration) IsRedirectKeyword(word []byte) bool {
	for _, k := range c.RedirectMagicWords {
		if len(k) == len(word) && bytes.EqualFold(word, []byte(k)) {
			return true
		}
	}
	return false
}

// DefaultConfiguration returns a small, ready-to-use Configuration seeded
// with the common wikitext protocols, entities, magic words, tag
// classifications, and namespaces. Callers that need a different tag or
// namespace vocabulary should build their own Configuration from scratch.
func DefaultConfiguration() *Configuration {
	tagNames := map[string]TagClass{}
	// Ordinary HTML-like tags: verify each candidate is a real HTML tag
	// name via golang.org/x/net/html/atom before classifying it.
	for _, name := range []string{
		"b", "i", "u", "s", "small", "big", "sub", "sup", "span",
		"div", "p", "br", "hr", "code", "blockquote", "center",
	} {
		if atom.Lookup([]byte(name)) != 0 {
			tagNames[name] = TagClassTag
		}
	}
	// Extension tags: wiki-specific, opaque-bodied constructs that
	// golang.org/x/net/html/atom has no notion of.
	for _, name := range []string{"nowiki", "math", "ref", "gallery", "pre", "source", "syntaxhighlight"} {
		tagNames[name] = TagClassExtensionTag
	}

	return &Configuration{
		Protocols: []string{
			"http://", "https://", "ftp://", "mailto:", "//", "irc://", "news:",
		},
		CharacterEntities: map[string]rune{
			"amp":   '&',
			"lt":    '<',
			"gt":    '>',
			"quot":  '"',
			"nbsp":  ' ',
			"ndash": '–',
			"mdash": '—',
		},
		MagicWords: []string{
			"NOTOC", "TOC", "FORCETOC", "NOEDITSECTION", "NOGALLERY",
		},
		TagNameMap: tagNames,
		Namespaces: map[string]Namespace{
			"file":     {Name: "File"},
			"image":    {Name: "File"},
			"category": {Name: "Category"},
		},
		RedirectMagicWords: []string{"REDIRECT"},
	}
}
