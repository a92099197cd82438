package parse

// startTable opens a Table frame at "{|". The remainder of that line, up
// to the first real line break, becomes the table's own Attributes.
func startTable(s *state, lineStartPosition int) {
	if lineStartPosition != noLineStart {
		position := s.skipWhitespaceBackwards(lineStartPosition)
		s.flush(position)
	}
	s.flushedPosition = s.scanPosition
	position := s.scanPosition + 2
	for {
		b, ok := s.byteAt(position)
		if !ok || (b != '\t' && b != ' ') {
			break
		}
		position++
	}
	s.pushOpen(openTable, tablePayload{state: tableAttributes}, position)
}

// appendToCurrentCell folds nodes into the Content of the table's current
// innermost cell (or row/caption, depending on tp.state) and records end.
func appendToCurrentCell(tp *tablePayload, nodes []Node, end int) {
	switch tp.state {
	case tableCellFirstLine, tableCellRemainder, tableHeadingFirstLine, tableHeadingRemainder:
		r := len(tp.rows) - 1
		c := len(tp.rows[r].Cells) - 1
		tp.rows[r].Cells[c].Content = append(tp.rows[r].Cells[c].Content, nodes...)
		tp.rows[r].Cells[c].End = end
	case tableCaptionFirstLine, tableCaptionRemainder:
		n := len(tp.captions) - 1
		tp.captions[n].Content = append(tp.captions[n].Content, nodes...)
		tp.captions[n].End = end
	}
}

// closeCurrentTableContent flushes pending text and folds the node buffer
// accumulated since the last boundary into whatever section of the table
// is currently open, per tp.state.
func closeCurrentTableContent(s *state, tp *tablePayload) {
	end := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(end)
	switch tp.state {
	case tableAttributes:
		tp.attributes = s.nodes
		tp.state = tableBefore
	case tableBefore:
		tp.before = append(tp.before, s.nodes...)
	case tableRow:
		if n := len(tp.rows) - 1; n >= 0 {
			tp.rows[n].Attributes = s.nodes
			tp.rows[n].End = end
		}
		tp.state = tableBefore
	case tableCaptionFirstLine:
		appendToCurrentCell(tp, s.nodes, end)
		tp.state = tableCaptionRemainder
	case tableCaptionRemainder:
		appendToCurrentCell(tp, s.nodes, end)
	case tableCellFirstLine:
		appendToCurrentCell(tp, s.nodes, end)
		tp.state = tableCellRemainder
	case tableCellRemainder:
		appendToCurrentCell(tp, s.nodes, end)
	case tableHeadingFirstLine:
		appendToCurrentCell(tp, s.nodes, end)
		tp.state = tableHeadingRemainder
	case tableHeadingRemainder:
		appendToCurrentCell(tp, s.nodes, end)
	}
	s.nodes = nil
}

func skipInlineTabsAndSpaces(s *state, position int) int {
	for {
		b, ok := s.byteAt(position)
		if !ok || (b != '\t' && b != ' ') {
			break
		}
		position++
	}
	return position
}

func startNewRow(s *state, contentStart int) {
	top := s.top()
	tp := top.payload.(tablePayload)
	tp.rows = append(tp.rows, TableRow{Start: contentStart})
	tp.state = tableRow
	tp.childElementAttributes = nil
	top.payload = tp
	s.scanPosition = contentStart
	s.flushedPosition = contentStart
}

func startCaption(s *state, contentStart int) {
	top := s.top()
	tp := top.payload.(tablePayload)
	tp.captions = append(tp.captions, TableCaption{Start: contentStart})
	tp.state = tableCaptionFirstLine
	tp.childElementAttributes = nil
	top.payload = tp
	s.scanPosition = contentStart
	s.flushedPosition = contentStart
}

func startCell(s *state, contentStart int, newState tableState) {
	top := s.top()
	tp := top.payload.(tablePayload)
	if len(tp.rows) == 0 {
		tp.rows = append(tp.rows, TableRow{Start: contentStart})
	}
	cellType := TableCellOrdinary
	if newState == tableHeadingFirstLine {
		cellType = TableCellHeading
	}
	r := len(tp.rows) - 1
	tp.rows[r].Cells = append(tp.rows[r].Cells, TableCell{Type: cellType, Start: contentStart})
	tp.state = newState
	tp.childElementAttributes = nil
	top.payload = tp
	s.scanPosition = contentStart
	s.flushedPosition = contentStart
}

// closeCellAndStartNext handles an inline "||" (or, for heading cells,
// "!!") cell separator: it closes the current cell and opens a new one of
// the given kind in the same row.
func closeCellAndStartNext(s *state, heading bool) {
	top := s.top()
	tp := top.payload.(tablePayload)
	end := s.scanPosition
	s.flush(end)
	appendToCurrentCell(&tp, s.nodes, end)
	s.nodes = nil
	s.scanPosition += 2

	cellType := TableCellOrdinary
	newState := tableCellFirstLine
	if heading {
		cellType = TableCellHeading
		newState = tableHeadingFirstLine
	}
	r := len(tp.rows) - 1
	tp.rows[r].Cells = append(tp.rows[r].Cells, TableCell{Type: cellType, Start: s.scanPosition})
	tp.state = newState
	tp.childElementAttributes = nil
	top.payload = tp
	s.flushedPosition = s.scanPosition
}

// parseInlineToken handles '|' encountered while a Table is the innermost
// open construct: a cell/caption's attribute separator on its first line,
// or a "||" next-cell separator anywhere in a cell.
func parseInlineToken(s *state) {
	top := s.top()
	tp := top.payload.(tablePayload)

	switch tp.state {
	case tableCellFirstLine, tableHeadingFirstLine:
		if next, ok := s.byteAt(s.scanPosition + 1); ok && next == '|' {
			closeCellAndStartNext(s, tp.state == tableHeadingFirstLine)
			return
		}
		if tp.childElementAttributes == nil {
			end := s.scanPosition
			s.flush(end)
			attrs := s.nodes
			tp.childElementAttributes = &attrs
			r := len(tp.rows) - 1
			c := len(tp.rows[r].Cells) - 1
			tp.rows[r].Cells[c].Attributes = &attrs
			s.nodes = nil
			top.payload = tp
			s.scanPosition++
			s.flushedPosition = s.scanPosition
			return
		}
		s.scanPosition++
	case tableCellRemainder, tableHeadingRemainder:
		if next, ok := s.byteAt(s.scanPosition + 1); ok && next == '|' {
			closeCellAndStartNext(s, tp.state == tableHeadingRemainder)
			return
		}
		s.scanPosition++
	case tableCaptionFirstLine:
		if tp.childElementAttributes == nil {
			end := s.scanPosition
			s.flush(end)
			attrs := s.nodes
			tp.childElementAttributes = &attrs
			n := len(tp.captions) - 1
			tp.captions[n].Attributes = &attrs
			s.nodes = nil
			top.payload = tp
			s.scanPosition++
			s.flushedPosition = s.scanPosition
			return
		}
		s.scanPosition++
	default:
		s.scanPosition++
	}
}

// parseHeadingCell handles an inline "!!" heading-cell separator, the
// heading-row counterpart of "||". It only applies while a heading cell is
// being collected; elsewhere it is ordinary text.
func parseHeadingCell(s *state) {
	top := s.top()
	tp := top.payload.(tablePayload)
	if tp.state != tableHeadingFirstLine && tp.state != tableHeadingRemainder {
		s.scanPosition++
		return
	}
	closeCellAndStartNext(s, true)
}

func closeTable(s *state, end int) {
	frame := s.popOpen()
	tp := frame.payload.(tablePayload)
	s.scanPosition = end
	s.nodes = append(frame.nodes, &TableNode{
		span:       span{Start: frame.start, End: end},
		Attributes: tp.attributes,
		Captions:   tp.captions,
		Rows:       tp.rows,
	})
	s.flushedPosition = s.scanPosition
}

// parseTableEndOfLine is reached on '\n' (or EOF) while a Table is the
// innermost open construct. consumeNewline is false when the caller (a
// construct that already advanced past its own trailing newline) has
// stepped scanPosition back by one so this function's view of "positioned
// at the line break" stays uniform.
func parseTableEndOfLine(s *state, consumeNewline bool) {
	top := s.top()
	tp := top.payload.(tablePayload)
	prevState := tp.state
	lineBreakStart := s.scanPosition
	closeCurrentTableContent(s, &tp)
	top.payload = tp

	if consumeNewline {
		s.scanPosition++
	}
	lineBreakEnd := s.scanPosition
	position := skipInlineTabsAndSpaces(s, s.scanPosition)

	b, ok := s.byteAt(position)
	switch {
	case !ok:
		frame := s.popOpen()
		s.warnings = append(s.warnings, Warning{Start: frame.start, End: position, Message: WarningMissingEndTagRewinding})
		s.rewind(frame.nodes, frame.start)
	case b == '|':
		next, okNext := s.byteAt(position + 1)
		switch {
		case okNext && next == '}':
			closeTable(s, position+2)
		case okNext && next == '-':
			startNewRow(s, skipInlineTabsAndSpaces(s, position+2))
		case okNext && next == '+':
			startCaption(s, skipInlineTabsAndSpaces(s, position+2))
		default:
			startCell(s, position+1, tableCellFirstLine)
		}
	case b == '!':
		startCell(s, position+1, tableHeadingFirstLine)
	case prevState == tableCellFirstLine || prevState == tableHeadingFirstLine:
		// The line break did not introduce a new row, cell, or closing
		// delimiter: the cell's content continues past it as a new
		// paragraph rather than ending the cell.
		appendToCurrentCell(&tp, []Node{&ParagraphBreakNode{span: span{Start: lineBreakStart, End: lineBreakEnd}}}, lineBreakEnd)
		top.payload = tp
		s.scanPosition = lineBreakEnd
		s.flushedPosition = lineBreakEnd
	case tp.state == tableBefore:
		s.warnings = append(s.warnings, Warning{Start: s.scanPosition, End: position, Message: WarningStrayTextInTable})
		s.scanPosition = position
		s.flushedPosition = position
	default:
		s.scanPosition = position
		s.flushedPosition = position
	}
}
