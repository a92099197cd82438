package parse

// openKind tags the payload carried by an openNode frame. Frames are a
// plain data union switched on by kind rather than a set of interface
// implementations, keeping dispatch a single type switch instead of
// virtual calls.
type openKind int

const (
	openHeading openKind = iota
	openPreformatted
	openOrderedList
	openUnorderedList
	openDefinitionList
	openLink
	openExternalLink
	openTemplate
	openParameter
	openTag
	openTable
)

// headingPayload is the openNode payload for openHeading.
type headingPayload struct {
	level int
}

// listPayload is the openNode payload for openOrderedList / openUnorderedList.
type listPayload struct {
	items []ListItem
}

// definitionListPayload is the openNode payload for openDefinitionList.
// pendingType tracks which marker (';' or ':') introduced the item
// currently being accumulated, since a single frame interleaves terms and
// details.
type definitionListPayload struct {
	items       []DefinitionListItem
	pendingType DefinitionListItemType
}

// linkPayload is the openNode payload for openLink.
type linkPayload struct {
	namespace *Namespace
	target    Text
}

// templatePayload is the openNode payload for openTemplate.
type templatePayload struct {
	name       *[]Node
	parameters []TemplateParameter
}

// parameterPayload is the openNode payload for openParameter.
type parameterPayload struct {
	name    *[]Node
	default_ *[]Node
}

// tagPayload is the openNode payload for openTag.
type tagPayload struct {
	name string
}

// tableState enumerates which sub-buffer of an open table the accumulated
// node buffer currently belongs to.
type tableState int

const (
	tableBefore tableState = iota
	tableAttributes
	tableRow
	tableCaptionFirstLine
	tableCaptionRemainder
	tableCellFirstLine
	tableCellRemainder
	tableHeadingFirstLine
	tableHeadingRemainder
)

// tablePayload is the openNode payload for openTable.
type tablePayload struct {
	attributes             []Node
	before                 []Node
	captions               []TableCaption
	childElementAttributes *[]Node
	rows                   []TableRow
	state                  tableState
}

// openNode is one frame of the open-construct stack. outer nodes and the
// outer start offset are captured here; popping a frame restores them.
type openNode struct {
	nodes   []Node
	start   int
	kind    openKind
	payload any
}

// state is the mutable parser state threaded through every recognizer. It
// is never shared outside a single call to Parse.
type state struct {
	input           []byte
	configuration   *Configuration
	flushedPosition int
	nodes           []Node
	scanPosition    int
	stack           []openNode
	warnings        []Warning
}

// byteAt returns the byte at position, or (0, false) past the end of input.
func (s *state) byteAt(position int) (byte, bool) {
	if position < 0 || position >= len(s.input) {
		return 0, false
	}
	return s.input[position], true
}

// flush appends a Text node over [flushedPosition, end) when non-empty and
// advances flushedPosition to end.
func (s *state) flush(end int) {
	if end > s.flushedPosition {
		s.nodes = append(s.nodes, &TextNode{
			span:  span{Start: s.flushedPosition, End: end},
			Value: s.input[s.flushedPosition:end],
		})
		s.flushedPosition = end
	}
}

// pushOpen flushes up to scanPosition, pushes a new frame capturing the
// current node buffer, and moves the cursor to innerStart.
func (s *state) pushOpen(kind openKind, payload any, innerStart int) {
	s.flush(s.scanPosition)
	s.stack = append(s.stack, openNode{
		nodes:   s.nodes,
		start:   s.scanPosition,
		kind:    kind,
		payload: payload,
	})
	logger.Tracef("push open kind=%d start=%d depth=%d", kind, s.scanPosition, len(s.stack))
	s.nodes = nil
	s.scanPosition = innerStart
	s.flushedPosition = innerStart
}

// popOpen pops and returns the innermost frame. Callers must only call this
// when the stack is known to be non-empty.
func (s *state) popOpen() openNode {
	n := len(s.stack) - 1
	frame := s.stack[n]
	s.stack = s.stack[:n]
	logger.Tracef("pop open kind=%d start=%d depth=%d", frame.kind, frame.start, n)
	return frame
}

// top returns the innermost open frame, or nil if the stack is empty.
func (s *state) top() *openNode {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

// rewind abandons the innermost construct: restores the outer node buffer
// and resumes scanning right after the construct's start offset. If the
// last outer node is a Text node, it is dropped and flushedPosition is
// reset to its start so that span is re-flushed as the construct's opening
// byte is rescanned.
func (s *state) rewind(nodes []Node, position int) {
	logger.Debugf("rewind to position=%d", position)
	s.scanPosition = position + 1
	s.nodes = nodes
	if n := len(s.nodes); n > 0 {
		if text, ok := s.nodes[n-1].(*TextNode); ok {
			s.nodes = s.nodes[:n-1]
			s.flushedPosition = text.Start
			return
		}
	}
	s.flushedPosition = position
}

// skipWhitespaceBackwards returns the smallest position <= from such that
// every byte in [result, from) is '\t', '\n', or ' '.
func (s *state) skipWhitespaceBackwards(from int) int {
	return skipWhitespaceBackwards(s.input, from)
}

// skipWhitespaceForwards returns the smallest position >= from such that
// the byte at result (if any) is not '\t', '\n', or ' '.
func (s *state) skipWhitespaceForwards(from int) int {
	return skipWhitespaceForwards(s.input, from)
}

func skipWhitespaceBackwards(input []byte, position int) int {
	for position > 0 {
		switch input[position-1] {
		case '\t', '\n', ' ':
			position--
		default:
			return position
		}
	}
	return position
}

func skipWhitespaceForwards(input []byte, position int) int {
	for position < len(input) {
		switch input[position] {
		case '\t', '\n', ' ':
			position++
		default:
			return position
		}
	}
	return position
}

// skipEmptyLines resumes beginning-of-line parsing, or table end-of-line
// parsing when the innermost open construct is a table, after a construct
// that consumed its own trailing newline has already advanced past it.
func (s *state) skipEmptyLines() {
	if top := s.top(); top != nil && top.kind == openTable {
		s.scanPosition--
		parseTableEndOfLine(s, false)
		return
	}
	parseBeginningOfLine(s, -1)
}
