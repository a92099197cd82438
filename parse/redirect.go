package parse

// parseRedirect recognizes a redirect directive at the very start of the
// input: "#" followed by a configured redirect keyword, optional
// whitespace, and a link target in "[[...]]". position is the offset of
// the '#'. Anything that does not match this exact shape is left entirely
// alone: the caller falls back to ordinary beginning-of-line parsing
// starting at the '#'.
func parseRedirect(s *state, position int) {
	wordStart := position + 1
	wordEnd := wordStart
	for {
		b, ok := s.byteAt(wordEnd)
		if !ok || !isASCIILetter(b) {
			break
		}
		wordEnd++
	}
	if wordEnd == wordStart || !s.configuration.IsRedirectKeyword(s.input[wordStart:wordEnd]) {
		return
	}

	afterWord := wordEnd
	for {
		b, ok := s.byteAt(afterWord)
		if !ok || (b != '\t' && b != ' ') {
			break
		}
		afterWord++
	}

	b0, ok0 := s.byteAt(afterWord)
	b1, ok1 := s.byteAt(afterWord + 1)
	if !ok0 || b0 != '[' || !ok1 || b1 != '[' {
		return
	}

	targetStart := afterWord + 2
	targetEnd := targetStart
	for {
		b, ok := s.byteAt(targetEnd)
		if !ok || b == '\n' {
			return
		}
		if b == ']' {
			if b2, ok2 := s.byteAt(targetEnd + 1); ok2 && b2 == ']' {
				break
			}
		}
		targetEnd++
	}

	s.flush(position)
	s.nodes = append(s.nodes, &RedirectNode{
		span:   span{Start: position, End: targetEnd + 2},
		Target: s.input[targetStart:targetEnd],
	})
	s.scanPosition = targetEnd + 2
	s.flushedPosition = s.scanPosition
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
