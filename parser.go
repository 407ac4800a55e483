package streamxml

// RawParser recognizes XML constructs in a byte stream delivered in
// arbitrary chunks and emits a lazy sequence of raw events. It never
// blocks: Feed always succeeds (except on allocation failure), and
// NextEvent returns EventNeedMoreInput rather than waiting when the
// cursor sits at a partial construct.
//
// Grounded on bored-engineer/fastxml's Decoder (decoder.go) and Scanner
// (scanner.go) for the cursor-plus-dispatch shape, generalized from
// whole-buffer parsing to incremental Feed/NextEvent with suspension,
// which none of the retrieved examples implement at this granularity (see
// DESIGN.md).
type RawParser struct {
	opts  parserOptions
	buf   inputBuffer
	arena payloadArena
	queue eventQueue

	// attrScratch is reused across start-tag scans to avoid reallocating
	// the attribute-span slice for every element, in the spirit of the
	// teacher's attrsPool (xml.go) adapted from a sync.Pool (needed there
	// because multiple goroutines cast tokens concurrently) to a plain
	// reused field, since a RawParser is single-owner per spec.md §5.
	attrScratch []attrSpan
}

// NewRawParser creates a RawParser configured by opts. With no options,
// it parses XML with the default limits in options.go.
func NewRawParser(opts ...Option) *RawParser {
	p := &RawParser{opts: defaultParserOptions()}
	for _, o := range opts {
		o(&p.opts)
	}
	return p
}

// Feed appends bytes to the parser's input buffer. It never blocks.
func (p *RawParser) Feed(b []byte) {
	p.buf.feed(b)
}

// Finish marks the end of the input stream. Subsequent dispatch converts
// incomplete constructs into UnexpectedEof errors and drains the buffer.
func (p *RawParser) Finish() {
	p.buf.finish()
}

// Reset returns the parser to its initial state, reclaiming the payload
// arena and event queue while retaining their backing capacity.
func (p *RawParser) Reset() {
	p.buf.reset()
	p.arena.reset()
	p.queue.reset()
	p.attrScratch = p.attrScratch[:0]
}

// NextEvent advances the state machine until it can return exactly one
// event: any Event variant, EventNeedMoreInput (only when not finished),
// or EventEndOfStream (only when finished, all bytes consumed, and the
// queue is empty).
func (p *RawParser) NextEvent() Event {
	for {
		if !p.queue.empty() {
			return p.queue.pop()
		}
		if ev, done := p.step(); done {
			return ev
		}
		p.buf.compact()
	}
}

// step runs one dispatch attempt. It returns (event, true) when that event
// should be returned to the caller immediately (EventNeedMoreInput,
// EventEndOfStream, or a directly-produced Error); it returns (_, false)
// after queuing zero or more events (or silently consuming a suppressed
// comment/CDATA/PI), in which case NextEvent loops to drain the queue or
// try again.
func (p *RawParser) step() (Event, bool) {
	if p.opts.mode != ModeXML {
		return newError(Unsupported, "only XML mode is implemented", p.buf.offset), true
	}

	b, ok := p.buf.at(0)
	if !ok {
		if p.buf.eof {
			return endOfStreamEvent, true
		}
		return needMoreInputEvent, true
	}
	if b != '<' {
		return p.scanText()
	}

	b1, ok1 := p.buf.at(1)
	if !ok1 {
		return p.scanNeedMore(p.buf.eof)
	}
	switch b1 {
	case '/':
		return p.scanEndTag()
	case '!':
		return p.scanBang()
	case '?':
		return p.scanProcInst()
	default:
		return p.scanStartTag()
	}
}

// scanNeedMore is the shared "ran out of buffered bytes mid-construct"
// handler: EventNeedMoreInput while the stream is open, or an
// UnexpectedEof Error (draining the remaining buffer) once finished.
func (p *RawParser) scanNeedMore(finished bool) (Event, bool) {
	if finished {
		return p.failUnexpectedEOF()
	}
	return needMoreInputEvent, true
}

// failUnexpectedEOF reports the partial construct starting at the current
// cursor as UnexpectedEof and consumes the remaining buffered bytes so
// subsequent calls return EventEndOfStream.
func (p *RawParser) failUnexpectedEOF() (Event, bool) {
	ev := newError(UnexpectedEof, "unexpected end of input", p.buf.offset)
	p.buf.consume(p.buf.len())
	return ev, true
}

// scanError reports a structural violation at the current construct's
// start offset and consumes exactly one byte, guaranteeing forward
// progress: the next dispatch begins one byte further into the stream.
func (p *RawParser) scanError(kind ErrorKind, message string) (Event, bool) {
	ev := newError(kind, message, p.buf.offset)
	p.buf.consume(1)
	return ev, true
}
