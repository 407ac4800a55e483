package streamxml

// scanEndTag handles the "< followed by /" dispatch branch: `</name>`,
// with optional trailing whitespace before '>'.
func (p *RawParser) scanEndTag() (Event, bool) {
	rem := p.buf.remaining()
	finished := p.buf.eof

	i := 2 // rem[0:2] == "</"
	if i >= len(rem) {
		return p.scanNeedMore(finished)
	}
	if !isNameStart(rem[i]) {
		return p.scanError(InvalidName, "expected a name to start after '</'")
	}
	nameStart := i
	i++
	for {
		if i >= len(rem) {
			return p.scanNeedMore(finished)
		}
		if !isNameChar(rem[i]) {
			break
		}
		i++
		if i-nameStart > p.opts.maxNameLen {
			return p.scanError(LimitExceeded, "element name exceeds configured limit")
		}
	}
	nameEnd := i

	for {
		if i >= len(rem) {
			return p.scanNeedMore(finished)
		}
		if !isSpace(rem[i]) {
			break
		}
		i++
	}
	if rem[i] != '>' {
		return p.scanError(MalformedMarkup, "expected '>' to end end tag")
	}
	i++

	name := p.arena.dupe(rem[nameStart:nameEnd])
	p.queue.push(newElementEnd(name, OriginExplicit))
	p.buf.consume(i)
	return Event{}, false
}
