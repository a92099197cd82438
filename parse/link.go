package parse

import "strings"

// parseLinkStart opens a Link frame at a "[[" token. The target (and its
// optional namespace prefix) is collected as plain text up to the first
// '|' or the closing "]]"; display content, if a '|' is present, is parsed
// as ordinary wikitext.
func parseLinkStart(s *state) {
	s.pushOpen(openLink, linkPayload{}, s.scanPosition+2)
}

// splitLinkTarget separates an optional "namespace:" prefix off the front
// of a raw link target. The prefix is matched case-insensitively against
// the configuration's namespace table; no match leaves the whole of raw as
// the target.
func splitLinkTarget(s *state, raw []byte) (*Namespace, Text) {
	colon := -1
	for i, b := range raw {
		if b == ':' {
			colon = i
			break
		}
	}
	if colon <= 0 {
		return nil, raw
	}
	prefix := strings.ToLower(string(raw[:colon]))
	if ns, ok := s.configuration.NamespaceFor(prefix); ok {
		target := raw[colon+1:]
		return &ns, target
	}
	return nil, raw
}

// parseLinkTargetSeparator is reached on '|' while the innermost frame is a
// Link whose target has not yet been captured. It splits off the namespace,
// records the target in the frame's payload, and switches to collecting
// display nodes.
func parseLinkTargetSeparator(s *state) {
	top := s.top()
	lp := top.payload.(linkPayload)
	raw := s.input[top.start+2 : s.scanPosition]
	ns, target := splitLinkTarget(s, raw)
	lp.namespace = ns
	lp.target = target
	top.payload = lp
	s.scanPosition++
	s.flushedPosition = s.scanPosition
}

// scanLinkTarget scans the target portion of a Link, reached only while the
// innermost frame is a Link whose target has not yet been captured. Unlike
// display content, the target is never itself parsed as wikitext: it is
// scanned byte-by-byte for its terminator ('|' or "]]") and kept as plain
// text, matching the flat Target field on LinkNode.
func scanLinkTarget(s *state) {
	for {
		b, ok := s.byteAt(s.scanPosition)
		if !ok {
			frame := s.popOpen()
			s.warnings = append(s.warnings, Warning{Start: frame.start, End: s.scanPosition, Message: WarningInvalidLinkSyntax})
			s.rewind(frame.nodes, frame.start)
			return
		}
		switch b {
		case '\n':
			frame := s.popOpen()
			s.warnings = append(s.warnings, Warning{Start: frame.start, End: s.scanPosition, Message: WarningInvalidLinkSyntax})
			s.rewind(frame.nodes, frame.start)
			return
		case '|':
			parseLinkTargetSeparator(s)
			return
		case ']':
			if next, ok := s.byteAt(s.scanPosition + 1); ok && next == ']' {
				frame := s.popOpen()
				lp := frame.payload.(linkPayload)
				parseLinkEnd(s, frame.start, frame.nodes, lp.namespace, lp.target)
				return
			}
			s.scanPosition++
		default:
			s.scanPosition++
		}
	}
}

// parseLinkEnd closes a Link frame at "]]". If no '|' was ever seen, the
// target has not been split out of the accumulated text yet and display
// nodes is nil; the rendered Link then falls back to its target as display
// text, matching a plain "[[Target]]" link.
func parseLinkEnd(s *state, start int, outerNodes []Node, namespace *Namespace, target Text) {
	end := s.scanPosition
	s.flush(end)
	content := s.nodes

	if target == nil {
		raw := s.input[start+2 : end]
		namespace, target = splitLinkTarget(s, raw)
		content = nil
	}

	s.scanPosition = end + 2
	s.nodes = append(outerNodes, &LinkNode{
		span:      span{Start: start, End: s.scanPosition},
		Namespace: namespace,
		Target:    target,
		Nodes:     content,
	})
	s.flushedPosition = s.scanPosition
}
