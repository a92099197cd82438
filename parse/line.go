package parse

// noLineStart is the sentinel used in place of Rust's Option<usize> "None"
// for the lineStartPosition parameter of parseBeginningOfLine.
const noLineStart = -1

// parseBeginningOfLine consumes leading whitespace of a new line and
// classifies the first significant byte. lineStartPosition is noLineStart
// when there is no previous line to consider for a paragraph break (the
// very first line of input, or a line introduced by a construct that
// already handled its own leading edge); otherwise it is the position right
// before the line break that ended the previous line.
func parseBeginningOfLine(s *state, lineStartPosition int) {
	hasLineBreak := false
outer:
	for {
		b, ok := s.byteAt(s.scanPosition)
		if !ok {
			if lineStartPosition == noLineStart {
				s.flushedPosition = s.scanPosition
			}
			return
		}
		switch b {
		case '\t':
			s.scanPosition++
			for {
				b2, ok2 := s.byteAt(s.scanPosition)
				if !ok2 || b2 == '\n' {
					continue outer
				}
				if b2 == '\t' || b2 == ' ' {
					s.scanPosition++
					continue
				}
				break outer
			}
		case '\n':
			if hasLineBreak {
				s.warnings = append(s.warnings, Warning{
					Start:   s.scanPosition,
					End:     s.scanPosition + 1,
					Message: WarningRepeatedEmptyLine,
				})
			}
			hasLineBreak = true
			s.scanPosition++
		case ' ':
			s.scanPosition++
			startPosition := s.scanPosition
			for {
				b2, ok2 := s.byteAt(s.scanPosition)
				if !ok2 {
					return
				}
				if b2 == '\n' {
					break
				}
				if b2 == '\t' || b2 == ' ' {
					s.scanPosition++
					continue
				}
				if b2 == '{' {
					if b3, ok3 := s.byteAt(s.scanPosition + 1); ok3 && b3 == '|' {
						startTable(s, lineStartPosition)
						return
					}
				}
				if lineStartPosition != noLineStart {
					position := s.skipWhitespaceBackwards(lineStartPosition)
					s.flush(position)
				}
				s.flushedPosition = s.scanPosition
				s.pushOpen(openPreformatted, nil, startPosition)
				return
			}
		case '#', '*', ':', ';':
			if lineStartPosition != noLineStart {
				position := s.skipWhitespaceBackwards(lineStartPosition)
				s.flush(position)
			}
			s.flushedPosition = s.scanPosition
			listRunStart := len(s.stack)
			for listRunStart > 0 && isListKind(s.stack[listRunStart-1].kind) {
				listRunStart--
			}
			for depth := 0; parseListItemStart(s, listRunStart, depth); depth++ {
			}
			skipListSpaces(s)
			return
		case '-':
			b1, ok1 := s.byteAt(s.scanPosition + 1)
			b2, ok2 := s.byteAt(s.scanPosition + 2)
			b3, ok3 := s.byteAt(s.scanPosition + 3)
			if ok1 && b1 == '-' && ok2 && b2 == '-' && ok3 && b3 == '-' {
				if lineStartPosition != noLineStart {
					position := s.skipWhitespaceBackwards(lineStartPosition)
					s.flush(position)
				}
				start := s.scanPosition
				s.scanPosition += 4
				for {
					c, ok := s.byteAt(s.scanPosition)
					if !ok || c != '-' {
						break
					}
					s.scanPosition++
				}
				s.nodes = append(s.nodes, &HorizontalDividerNode{span: span{Start: start, End: s.scanPosition}})
				for {
					c, ok := s.byteAt(s.scanPosition)
					if !ok {
						break
					}
					if c == '\t' || c == ' ' {
						s.scanPosition++
						continue
					}
					if c == '\n' {
						s.scanPosition++
						s.skipEmptyLines()
						break
					}
					break
				}
				s.flushedPosition = s.scanPosition
				return
			}
			break outer
		case '=':
			if lineStartPosition != noLineStart {
				position := s.skipWhitespaceBackwards(lineStartPosition)
				s.flush(position)
			}
			parseHeadingStart(s)
			return
		case '{':
			if b1, ok1 := s.byteAt(s.scanPosition + 1); ok1 && b1 == '|' {
				startTable(s, lineStartPosition)
				return
			}
			break outer
		default:
			break outer
		}
	}
	switch lineStartPosition {
	case noLineStart:
		s.flushedPosition = s.scanPosition
	default:
		if hasLineBreak {
			flushPosition := s.skipWhitespaceBackwards(lineStartPosition)
			s.flush(flushPosition)
			s.nodes = append(s.nodes, &ParagraphBreakNode{span: span{Start: lineStartPosition, End: s.scanPosition}})
			s.flushedPosition = s.scanPosition
		}
	}
}

// parseEndOfLine dispatches a '\n' (or EOF) byte to the handler owned by
// the innermost open construct.
func parseEndOfLine(s *state) {
	top := s.top()
	if top == nil {
		position := s.scanPosition
		s.scanPosition = position + 1
		parseBeginningOfLine(s, position)
		return
	}
	switch top.kind {
	case openDefinitionList, openOrderedList, openUnorderedList:
		parseListEndOfLine(s)
	case openExternalLink:
		parseExternalLinkEndOfLine(s)
	case openHeading:
		parseHeadingEnd(s)
	case openLink, openParameter, openTemplate:
		// Links, parameters, and templates tolerate an embedded line break
		// as ordinary content; extension tags never reach here, since the
		// main dispatch loop routes their opaque body through
		// scanExtensionTagBody before a '\n' is ever inspected here.
		s.scanPosition++
	case openPreformatted:
		parsePreformattedEndOfLine(s)
	case openTable:
		parseTableEndOfLine(s, true)
	}
}

func parsePreformattedEndOfLine(s *state) {
	if next, ok := s.byteAt(s.scanPosition + 1); ok && next == ' ' {
		position := s.scanPosition + 2
		for {
			b, ok := s.byteAt(position)
			if !ok {
				break
			}
			switch b {
			case '\t', ' ':
				position++
				continue
			case '{':
				if b2, ok2 := s.byteAt(position + 1); ok2 && b2 == '|' {
					goto closePreformatted
				}
			case '|':
				if b2, ok2 := s.byteAt(position + 1); ok2 && b2 == '}' && len(s.stack) > 1 {
					if s.stack[len(s.stack)-2].kind == openTable {
						goto closePreformatted
					}
				}
			}
			// Any other content: a continuation line of the preformatted
			// block; keep the newline as text, elide the leading space, and
			// keep going.
			lineBreakEnd := s.scanPosition + 1
			s.flush(lineBreakEnd)
			s.scanPosition += 2
			s.flushedPosition = s.scanPosition
			return
		}
	}
closePreformatted:
	frame := s.popOpen()
	position := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(position)
	s.scanPosition++
	nodes := s.nodes
	s.nodes = frame.nodes
	s.nodes = append(s.nodes, &PreformattedNode{span: span{Start: frame.start, End: s.scanPosition}, Nodes: nodes})
	s.skipEmptyLines()
}
