package parse

// parseListItemStart consumes exactly one list-marker byte at scanPosition.
// listRunStart is the stack index where the current line's contiguous run of
// list frames begins, and depth is how many marker bytes this line has
// already consumed. A marker at listRunStart+depth that matches an
// already-open frame there re-enters it; otherwise a new, deeper frame is
// opened. It reports whether a marker byte was consumed, so callers loop
// while true, incrementing depth each time.
func parseListItemStart(s *state, listRunStart, depth int) bool {
	b, ok := s.byteAt(s.scanPosition)
	if !ok {
		return false
	}
	var kind openKind
	defType := DefinitionListDetails
	switch b {
	case '#':
		kind = openOrderedList
	case '*':
		kind = openUnorderedList
	case ':':
		kind = openDefinitionList
	case ';':
		kind = openDefinitionList
		defType = DefinitionListTerm
	default:
		return false
	}

	index := listRunStart + depth
	if index < len(s.stack) && s.stack[index].kind == kind {
		if kind == openDefinitionList {
			dp := s.stack[index].payload.(definitionListPayload)
			dp.pendingType = defType
			s.stack[index].payload = dp
		}
		s.scanPosition++
		s.flushedPosition = s.scanPosition
		return true
	}

	var payload any
	if kind == openDefinitionList {
		payload = definitionListPayload{pendingType: defType}
	} else {
		payload = listPayload{}
	}
	s.pushOpen(kind, payload, s.scanPosition+1)
	return true
}

// skipListSpaces elides a single space after a line's run of list markers.
func skipListSpaces(s *state) {
	if b, ok := s.byteAt(s.scanPosition); ok && b == ' ' {
		s.scanPosition++
	}
	s.flushedPosition = s.scanPosition
}

func isListKind(kind openKind) bool {
	switch kind {
	case openOrderedList, openUnorderedList, openDefinitionList:
		return true
	default:
		return false
	}
}

// closeListFrame commits nodes as frame's current item, appending it to
// frame's own item list. The caller resets the working buffer afterward.
func closeListFrame(frame *openNode, nodes []Node) {
	switch frame.kind {
	case openOrderedList, openUnorderedList:
		lp := frame.payload.(listPayload)
		lp.items = append(lp.items, ListItem{Nodes: nodes})
		frame.payload = lp
	case openDefinitionList:
		dp := frame.payload.(definitionListPayload)
		dp.items = append(dp.items, DefinitionListItem{Type: dp.pendingType, Nodes: nodes})
		frame.payload = dp
	}
}

// finalizeListFrame builds the completed Node for a popped list frame.
func finalizeListFrame(frame openNode, end int) Node {
	switch frame.kind {
	case openOrderedList:
		lp := frame.payload.(listPayload)
		return &OrderedListNode{span: span{Start: frame.start, End: end}, Items: lp.items}
	case openUnorderedList:
		lp := frame.payload.(listPayload)
		return &UnorderedListNode{span: span{Start: frame.start, End: end}, Items: lp.items}
	case openDefinitionList:
		dp := frame.payload.(definitionListPayload)
		return &DefinitionListNode{span: span{Start: frame.start, End: end}, Items: dp.items}
	default:
		panic("parse: finalizeListFrame called on a non-list frame")
	}
}

// peekListMarkerKinds classifies the run of list-marker bytes starting at
// position without consuming them.
func peekListMarkerKinds(s *state, position int) []openKind {
	var kinds []openKind
	for {
		b, ok := s.byteAt(position)
		if !ok {
			return kinds
		}
		switch b {
		case '#':
			kinds = append(kinds, openOrderedList)
		case '*':
			kinds = append(kinds, openUnorderedList)
		case ':', ';':
			kinds = append(kinds, openDefinitionList)
		default:
			return kinds
		}
		position++
	}
}

// parseListEndOfLine closes out list frames the next line's marker prefix no
// longer supports, and hands off to the next line's beginning-of-line
// recognition. A frame is only fully closed (its current item committed and
// the frame popped) when the next line abandons it entirely. A frame whose
// depth the next line still matches stays open across the line break: if the
// next line goes deeper still, the new nested list becomes part of this
// frame's still-open current item rather than starting a sibling item; only
// when the next line's marker run ends at exactly this depth does the
// current item close to make room for a sibling.
func parseListEndOfLine(s *state) {
	textEnd := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(textEnd)

	nextKinds := peekListMarkerKinds(s, s.scanPosition+1)
	nextDepth := len(nextKinds)

	listRunStart := len(s.stack)
	for listRunStart > 0 && isListKind(s.stack[listRunStart-1].kind) {
		listRunStart--
	}
	listDepth := len(s.stack) - listRunStart

	commonDepth := 0
	for commonDepth < listDepth && commonDepth < nextDepth &&
		s.stack[listRunStart+commonDepth].kind == nextKinds[commonDepth] {
		commonDepth++
	}

	for len(s.stack) > listRunStart+commonDepth {
		frame := s.popOpen()
		closeListFrame(&frame, s.nodes)
		node := finalizeListFrame(frame, textEnd)
		s.nodes = append(frame.nodes, node)
	}

	if commonDepth > 0 && commonDepth == nextDepth {
		closeListFrame(&s.stack[len(s.stack)-1], s.nodes)
		s.nodes = nil
	}

	position := s.scanPosition
	s.scanPosition = position + 1
	parseBeginningOfLine(s, noLineStart)
}
