package parse

// isTagNameTerminator reports whether b ends a tag name per the terminator
// byte classes: tab, newline, space, '/', or '>'.
func isTagNameTerminator(b byte) bool {
	switch b {
	case '\t', '\n', ' ', '/', '>':
		return true
	default:
		return false
	}
}

// scanTagName reads a tag name starting at position and returns it and the
// position immediately after it. The as-is bytes are tried directly
// against the configuration's (already-lowercase) tag name map by the
// caller first; lowercasing only happens if that lookup misses.
func scanTagName(s *state, position int) (raw []byte, end int) {
	start := position
	for {
		b, ok := s.byteAt(position)
		if !ok || isTagNameTerminator(b) {
			break
		}
		position++
	}
	return s.input[start:position], position
}

func toLowerASCII(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func lookupTagClass(s *state, raw []byte) (name string, class TagClass, ok bool) {
	if class, ok := s.configuration.TagClassFor(string(raw)); ok {
		return string(raw), class, true
	}
	lower := toLowerASCII(raw)
	if class, ok := s.configuration.TagClassFor(lower); ok {
		return lower, class, true
	}
	return lower, 0, false
}

// skipTagAttributes advances past a tag's attribute section starting right
// after its name, returning the position of the closing '>' and whether
// the tag was self-closed with "/>".
func skipTagAttributes(s *state, position int) (closeAngle int, selfClosed bool, ok bool) {
	for {
		b, found := s.byteAt(position)
		if !found {
			return 0, false, false
		}
		if b == '>' {
			return position, false, true
		}
		if b == '/' {
			if next, found2 := s.byteAt(position + 1); found2 && next == '>' {
				return position + 1, true, true
			}
		}
		position++
	}
}

// parseStartTag handles '<' followed by anything other than "<!--" or "</".
// A recognized ordinary tag emits a standalone StartTagNode; a recognized
// extension tag opens an opaque-body Tag frame (or, if self-closed, an
// empty Tag node immediately). An unrecognized name is treated as literal
// text.
func parseStartTag(s *state) {
	nameStart := s.scanPosition + 1
	raw, afterName := scanTagName(s, nameStart)
	if len(raw) == 0 {
		s.scanPosition++
		return
	}
	name, class, ok := lookupTagClass(s, raw)
	if !ok {
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: afterName, Message: WarningUnrecognizedTagName})
		s.scanPosition++
		return
	}
	closeAngle, selfClosed, ok := skipTagAttributes(s, afterName)
	if !ok {
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: afterName, Message: WarningInvalidTagSyntax})
		s.scanPosition++
		return
	}

	switch class {
	case TagClassTag:
		start := s.scanPosition
		s.flush(start)
		s.scanPosition = closeAngle + 1
		s.nodes = append(s.nodes, &StartTagNode{span: span{Start: start, End: s.scanPosition}, Name: name})
		s.flushedPosition = s.scanPosition
	case TagClassExtensionTag:
		start := s.scanPosition
		if selfClosed {
			s.flush(start)
			s.scanPosition = closeAngle + 1
			s.nodes = append(s.nodes, &TagNode{span: span{Start: start, End: s.scanPosition}, Name: name})
			s.flushedPosition = s.scanPosition
			return
		}
		s.pushOpen(openTag, tagPayload{name: name}, closeAngle+1)
	}
}

// parseEndTag handles "</". A recognized ordinary tag always just emits a
// standalone EndTagNode (tags never nest in this model). An extension tag
// name reaching here means there was no matching open Tag frame (the
// scanner that matches an extension tag's body handles closing it directly
// and never falls through to this function), so it is a stray end tag.
func parseEndTag(s *state) {
	nameStart := s.scanPosition + 2
	raw, afterName := scanTagName(s, nameStart)
	if len(raw) == 0 {
		s.scanPosition++
		return
	}
	name, class, ok := lookupTagClass(s, raw)
	if !ok {
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: afterName, Message: WarningUnrecognizedTagName})
		s.scanPosition++
		return
	}
	end := skipWhitespaceForwards(s.input, afterName)
	closeByte, found := s.byteAt(end)
	if !found || closeByte != '>' {
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: afterName, Message: WarningInvalidTagSyntax})
		s.scanPosition++
		return
	}

	switch class {
	case TagClassTag:
		start := s.scanPosition
		s.flush(start)
		s.scanPosition = end + 1
		s.nodes = append(s.nodes, &EndTagNode{span: span{Start: start, End: s.scanPosition}, Name: name})
		s.flushedPosition = s.scanPosition
	case TagClassExtensionTag:
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: end + 1, Message: WarningUnexpectedEndTag})
		s.scanPosition++
	}
}

// matchExtensionTagClose reports whether input[position:] opens a
// "</name>" sequence matching name (case-insensitively, with optional
// whitespace before '>'), returning the position right after the '>' if so.
func matchExtensionTagClose(s *state, position int, name string) (end int, ok bool) {
	b0, ok0 := s.byteAt(position)
	b1, ok1 := s.byteAt(position + 1)
	if !ok0 || b0 != '<' || !ok1 || b1 != '/' {
		return 0, false
	}
	raw, afterName := scanTagName(s, position+2)
	if toLowerASCII(raw) != name {
		return 0, false
	}
	closePos := skipWhitespaceForwards(s.input, afterName)
	b, ok := s.byteAt(closePos)
	if !ok || b != '>' {
		return 0, false
	}
	return closePos + 1, true
}

// scanExtensionTagBody advances through the opaque body of an open
// extension Tag frame until its matching end tag (or EOF), treating every
// byte in between as literal text regardless of what it would otherwise
// trigger in the main dispatch loop. The one exception is an HTML comment:
// it is scanned up to its own "-->" terminator and kept as a Comment node,
// unless the tag's own end tag appears inside it first, in which case the
// comment is cut short there and that end tag closes the frame (see
// scanCommentInExtensionTag).
func scanExtensionTagBody(s *state) {
	top := s.top()
	tp := top.payload.(tagPayload)
	for {
		b, ok := s.byteAt(s.scanPosition)
		if !ok {
			frame := s.popOpen()
			s.warnings = append(s.warnings, Warning{Start: frame.start, End: s.scanPosition, Message: WarningMissingEndTagRewinding})
			s.rewind(frame.nodes, frame.start)
			return
		}
		if b == '<' {
			if b1, ok1 := s.byteAt(s.scanPosition + 1); ok1 && b1 == '!' {
				if b2, ok2 := s.byteAt(s.scanPosition + 2); ok2 && b2 == '-' {
					if b3, ok3 := s.byteAt(s.scanPosition + 3); ok3 && b3 == '-' {
						scanCommentInExtensionTag(s, tp.name)
						continue
					}
				}
			}
			if end, ok := matchExtensionTagClose(s, s.scanPosition, tp.name); ok {
				s.flush(s.scanPosition)
				frame := s.popOpen()
				content := s.nodes
				s.scanPosition = end
				s.flushedPosition = end
				s.nodes = append(frame.nodes, &TagNode{span: span{Start: frame.start, End: end}, Name: tp.name, Nodes: content})
				return
			}
		}
		s.scanPosition++
	}
}

// scanCommentInExtensionTag scans a "<!--" comment found while an extension
// Tag frame's body is being collected. If the tag's own "</name>" end tag
// appears before the comment's closing "-->", the comment is cut short right
// before it (emitting EndTagInComment) so the embedded end tag is left for
// the caller's next iteration to match and close the frame normally, rather
// than being swallowed as comment text. An unterminated comment is left for
// the caller's own EOF handling.
func scanCommentInExtensionTag(s *state, tagName string) {
	start := s.scanPosition
	s.flush(start)
	position := start + 4
	for {
		b, ok := s.byteAt(position)
		if !ok {
			s.scanPosition = position
			return
		}
		if b == '-' {
			if b1, ok1 := s.byteAt(position + 1); ok1 && b1 == '-' {
				if b2, ok2 := s.byteAt(position + 2); ok2 && b2 == '>' {
					position += 3
					s.nodes = append(s.nodes, &CommentNode{span: span{Start: start, End: position}})
					s.scanPosition = position
					s.flushedPosition = position
					return
				}
			}
		}
		if b == '<' {
			if _, ok := matchExtensionTagClose(s, position, tagName); ok {
				s.nodes = append(s.nodes, &CommentNode{span: span{Start: start, End: position}})
				s.warnings = append(s.warnings, Warning{Start: position, End: position, Message: WarningEndTagInComment})
				s.scanPosition = position
				s.flushedPosition = position
				return
			}
		}
		position++
	}
}
