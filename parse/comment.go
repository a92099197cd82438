package parse

// parseComment consumes a "<!--" ... "-->" span as a single Comment node.
// If the input ends before the closing "-->" is found, the comment still
// closes at end of input rather than rewinding: unlike other unterminated
// constructs a comment has no structural content to lose, so there is
// nothing to recover by treating the "<!--" as literal text.
func parseComment(s *state) {
	start := s.scanPosition
	s.flush(start)
	position := start + 4
	for {
		b, ok := s.byteAt(position)
		if !ok {
			break
		}
		if b == '-' {
			b1, ok1 := s.byteAt(position + 1)
			b2, ok2 := s.byteAt(position + 2)
			if ok1 && b1 == '-' && ok2 && b2 == '>' {
				position += 3
				break
			}
		}
		position++
	}
	s.nodes = append(s.nodes, &CommentNode{span: span{Start: start, End: position}})
	s.scanPosition = position
	s.flushedPosition = position
}
