package parse

// parseExternalLinkStart opens an ExternalLink frame at a lone '[' if it is
// immediately followed by a recognized protocol; otherwise the '[' is
// ordinary text.
func parseExternalLinkStart(s *state) {
	rest := s.input[s.scanPosition+1:]
	if _, ok := s.configuration.FindProtocol(rest); !ok {
		s.scanPosition++
		return
	}
	s.pushOpen(openExternalLink, nil, s.scanPosition+1)
}

// parseExternalLinkEnd closes an ExternalLink frame at ']'.
func parseExternalLinkEnd(s *state, start int, outerNodes []Node) {
	content := s.nodes
	end := s.scanPosition
	s.scanPosition++
	s.nodes = append(outerNodes, &ExternalLinkNode{
		span:  span{Start: start, End: s.scanPosition},
		Nodes: flushInto(content, s.input, s.flushedPosition, end),
	})
	s.flushedPosition = s.scanPosition
}

// flushInto appends a trailing Text node over [flushedPosition, end) to
// nodes, if any bytes remain unflushed.
func flushInto(nodes []Node, input []byte, flushedPosition, end int) []Node {
	if end > flushedPosition {
		nodes = append(nodes, &TextNode{span: span{Start: flushedPosition, End: end}, Value: input[flushedPosition:end]})
	}
	return nodes
}

// parseExternalLinkEndOfLine abandons an ExternalLink left open across a
// line break: external links never span lines.
func parseExternalLinkEndOfLine(s *state) {
	frame := s.popOpen()
	s.warnings = append(s.warnings, Warning{
		Start:   frame.start,
		End:     s.scanPosition,
		Message: WarningInvalidLinkSyntax,
	})
	s.rewind(frame.nodes, frame.start)
}
