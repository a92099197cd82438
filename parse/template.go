package parse

// parseTemplateStart opens a Template frame at "{{", or a Parameter frame
// if a third '{' immediately follows ("{{{").
func parseTemplateStart(s *state) {
	if b, ok := s.byteAt(s.scanPosition + 2); ok && b == '{' {
		s.pushOpen(openParameter, parameterPayload{}, s.scanPosition+3)
		return
	}
	s.pushOpen(openTemplate, templatePayload{}, s.scanPosition+2)
}

// parseTemplateSeparator is reached on '|' while the innermost frame is a
// Template. The first '|' closes off the accumulated Name; every
// subsequent '|' closes the previous parameter's Value and starts a new
// parameter.
func parseTemplateSeparator(s *state) {
	top := s.top()
	tp := top.payload.(templatePayload)
	s.flush(s.scanPosition)

	if tp.name == nil {
		name := s.nodes
		tp.name = &name
	} else if n := len(tp.parameters); n > 0 {
		tp.parameters[n-1].Value = s.nodes
		tp.parameters[n-1].End = s.scanPosition
	}
	s.nodes = nil
	tp.parameters = append(tp.parameters, TemplateParameter{Start: s.scanPosition + 1})
	top.payload = tp

	s.scanPosition++
	s.flushedPosition = s.scanPosition
}

// parseParameterNameEnd is reached on '=' anywhere in the input. Only a
// Template whose current parameter has not already been named treats it
// specially, splitting the accumulated nodes into that parameter's Name;
// every other context treats '=' as ordinary text.
func parseParameterNameEnd(s *state) {
	top := s.top()
	if top == nil || top.kind != openTemplate {
		s.scanPosition++
		return
	}
	tp := top.payload.(templatePayload)
	if len(tp.parameters) == 0 {
		s.scanPosition++
		return
	}
	current := &tp.parameters[len(tp.parameters)-1]
	if current.Name != nil {
		s.scanPosition++
		return
	}
	s.flush(s.scanPosition)
	name := s.nodes
	current.Name = &name
	s.nodes = nil
	top.payload = tp

	s.scanPosition++
	s.flushedPosition = s.scanPosition
}

// parseParameterSeparator is reached on '|' while the innermost frame is a
// Parameter whose default has not yet been opened. It closes off the
// accumulated Name and starts collecting Default content.
func parseParameterSeparator(s *state) {
	top := s.top()
	pp := top.payload.(parameterPayload)
	s.flush(s.scanPosition)
	name := s.nodes
	pp.name = &name
	defaultNodes := []Node{}
	pp.default_ = &defaultNodes
	top.payload = pp
	s.nodes = nil

	s.scanPosition++
	s.flushedPosition = s.scanPosition
}

// parseTemplateEnd handles both "}}" (Template) and "}}}" (Parameter)
// closing tokens, dispatching on the innermost open frame.
func parseTemplateEnd(s *state) {
	top := s.top()
	if top == nil {
		s.scanPosition += 2
		return
	}
	switch top.kind {
	case openTemplate:
		closeTemplate(s)
	case openParameter:
		if b, ok := s.byteAt(s.scanPosition + 2); ok && b == '}' {
			closeParameter(s)
		} else {
			frame := s.popOpen()
			s.warnings = append(s.warnings, Warning{
				Start:   frame.start,
				End:     s.scanPosition + 2,
				Message: WarningUnexpectedEndTagRewinding,
			})
			s.rewind(frame.nodes, frame.start)
		}
	default:
		s.scanPosition += 2
	}
}

func closeTemplate(s *state) {
	s.flush(s.scanPosition)
	frame := s.popOpen()
	tp := frame.payload.(templatePayload)

	var name []Node
	if tp.name == nil {
		name = s.nodes
	} else if n := len(tp.parameters); n > 0 {
		tp.parameters[n-1].Value = s.nodes
		tp.parameters[n-1].End = s.scanPosition
		name = *tp.name
	} else {
		name = *tp.name
	}

	s.scanPosition += 2
	s.nodes = append(frame.nodes, &TemplateNode{
		span:       span{Start: frame.start, End: s.scanPosition},
		Name:       name,
		Parameters: tp.parameters,
	})
	s.flushedPosition = s.scanPosition
}

func closeParameter(s *state) {
	s.flush(s.scanPosition)
	frame := s.popOpen()
	pp := frame.payload.(parameterPayload)

	var name []Node
	var defaultValue *[]Node
	if pp.name == nil {
		name = s.nodes
	} else {
		name = *pp.name
		*pp.default_ = s.nodes
		defaultValue = pp.default_
	}

	s.scanPosition += 3
	s.nodes = append(frame.nodes, &ParameterNode{
		span:    span{Start: frame.start, End: s.scanPosition},
		Name:    name,
		Default: defaultValue,
	})
	s.flushedPosition = s.scanPosition
}
