package parse

// parseHeadingStart consumes a line-leading run of '=' bytes and opens a
// Heading frame. The frame's declared level is the length of that run; it
// is reconciled against the closing run's length in parseHeadingEnd.
func parseHeadingStart(s *state) {
	start := s.scanPosition
	level := 0
	for level < 6 {
		b, ok := s.byteAt(start + level)
		if !ok || b != '=' {
			break
		}
		level++
	}
	contentStart := start + level
	for {
		b, ok := s.byteAt(contentStart)
		if !ok || (b != '\t' && b != ' ') {
			break
		}
		contentStart++
	}
	s.pushOpen(openHeading, headingPayload{level: level}, contentStart)
}

// parseHeadingEnd is reached when a '\n' (or EOF) is seen while the
// innermost open construct is a Heading. It measures the trailing run of
// '=' immediately before the line break (ignoring intervening whitespace),
// reconciles it against the opening level, and closes the heading. A
// closing run shorter than the opening one corrects the level down; no
// closing run at all abandons the heading entirely as plain text.
func parseHeadingEnd(s *state) {
	frame := s.top()
	payload := frame.payload.(headingPayload)

	contentEnd := s.skipWhitespaceBackwards(s.scanPosition)
	trailingEnd := contentEnd
	closingLevel := 0
	for trailingEnd > 0 && s.input[trailingEnd-1] == '=' {
		closingLevel++
		trailingEnd--
	}
	// The run of '=' found here may belong to the heading content itself
	// (e.g. "== a == b ==") rather than closing the heading; only the
	// contiguous trailing run is ever considered, matching how a reader
	// would parse the closing marker.
	textEnd := s.skipWhitespaceBackwards(trailingEnd)

	if closingLevel == 0 {
		open := s.popOpen()
		s.warnings = append(s.warnings, Warning{
			Start:   open.start,
			End:     s.scanPosition,
			Message: WarningInvalidHeadingSyntaxRewinding,
		})
		s.rewind(open.nodes, open.start)
		return
	}

	level := payload.level
	if closingLevel < level {
		level = closingLevel
	}
	if level != payload.level || closingLevel != payload.level {
		s.warnings = append(s.warnings, Warning{
			Start:   frame.start,
			End:     s.scanPosition,
			Message: WarningUnexpectedHeadingLevelCorrecting,
		})
	}

	if closingLevel < payload.level {
		// The closing run was shorter than the opening one: the opening
		// '=' characters beyond the corrected level never belonged to the
		// markup, they belong to the heading's own content.
		innerStart := frame.start + level
		switch {
		case len(s.nodes) == 0:
			s.flushedPosition = innerStart
		default:
			if text, ok := s.nodes[0].(*TextNode); ok {
				text.Start = innerStart
				text.Value = s.input[innerStart:text.End]
			} else {
				end := s.skipWhitespaceForwards(frame.start + payload.level)
				leading := &TextNode{span: span{Start: innerStart, End: end}, Value: s.input[innerStart:end]}
				s.nodes = append([]Node{leading}, s.nodes...)
			}
		}
	}

	s.flush(textEnd)
	open := s.popOpen()
	nodes := s.nodes
	s.nodes = open.nodes
	s.nodes = append(s.nodes, &HeadingNode{
		span:  span{Start: open.start, End: s.scanPosition},
		Level: level,
		Nodes: nodes,
	})

	for {
		b, ok := s.byteAt(s.scanPosition)
		if !ok || (b != '\t' && b != ' ') {
			break
		}
		s.scanPosition++
	}
	if b, ok := s.byteAt(s.scanPosition); ok && b == '\n' {
		s.scanPosition++
	}
	s.flushedPosition = s.scanPosition
	s.skipEmptyLines()
}
