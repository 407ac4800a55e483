package streamxml

import "bytes"

const procInstSuffix = "?>"

// scanProcInst handles the "< followed by ?" dispatch branch: a processing
// instruction <?target data?>. The target is a name (subject to the same
// length bound as element/attribute names); everything after the first run
// of whitespace following it is opaque data, emitted verbatim.
//
// Grounded on decoder.go's parseProcInst (target up to first space, body up
// to the "?>" terminator).
func (p *RawParser) scanProcInst() (Event, bool) {
	rem := p.buf.remaining()
	idx := bytes.Index(rem[2:], []byte(procInstSuffix))
	if idx == -1 {
		return p.scanNeedMore(p.buf.eof)
	}
	end := 2 + idx // exclusive end of interior, relative to rem
	interior := rem[2:end]

	if len(interior) == 0 || !isNameStart(interior[0]) {
		return p.scanError(InvalidName, "expected a target name after '<?'")
	}
	j := 1
	for j < len(interior) && isNameChar(interior[j]) {
		j++
		if j > p.opts.maxNameLen {
			return p.scanError(LimitExceeded, "processing instruction target exceeds configured limit")
		}
	}
	target := interior[:j]
	for j < len(interior) && isSpace(interior[j]) {
		j++
	}
	data := interior[j:]

	if p.opts.emitPI {
		dupTarget := p.arena.dupe(target)
		dupData := p.arena.dupe(data)
		p.queue.push(newProcessingInstruction(dupTarget, dupData))
	}
	p.buf.consume(end + len(procInstSuffix))
	return Event{}, false
}
