package streamxml

import "bytes"

// maxUtf8Lookback bounds how far the text cut backs off over trailing UTF-8
// continuation bytes, per spec.md §4.3.
const maxUtf8Lookback = 4

// scanText handles the "byte at cursor is not '<'" dispatch branch.
//
// It advances to the next '<' or to the configured soft cap, whichever is
// smaller. Only a cut forced by the cap can land mid-codepoint (a cut at
// '<' is always a complete codepoint boundary in valid UTF-8, and a cut at
// finish-drain is the genuine end of input with nothing left to wait for),
// so the continuation-byte look-back is applied only to cap-forced cuts.
func (p *RawParser) scanText() (Event, bool) {
	rem := p.buf.remaining()
	idx := bytes.IndexByte(rem, '<')

	switch {
	case idx != -1 && idx <= p.opts.maxTextChunk:
		return p.emitText(rem[:idx], false)
	case idx != -1:
		return p.emitText(rem[:p.opts.maxTextChunk], true)
	case len(rem) >= p.opts.maxTextChunk:
		return p.emitText(rem[:p.opts.maxTextChunk], true)
	case p.buf.eof:
		return p.emitText(rem, false)
	default:
		return needMoreInputEvent, true
	}
}

func (p *RawParser) emitText(cut []byte, capCut bool) (Event, bool) {
	n := len(cut)
	if capCut {
		n = backOffContinuationBytes(cut)
	}
	dup := p.arena.dupe(cut[:n])
	p.buf.consume(n)
	p.queue.push(newText(dup))
	return Event{}, false
}

// backOffContinuationBytes returns the length to emit from cut so the
// emission ends on a complete codepoint boundary: when cut ends inside a
// multi-byte UTF-8 sequence, that sequence's trailing continuation bytes
// (top two bits '10') and its lead byte are left for the next emission.
// It looks back at most maxUtf8Lookback bytes. If the look-back would
// leave a zero-length emission, it instead emits the single raw byte at
// cut[0], preserving forward progress even when the cap is pathologically
// small.
func backOffContinuationBytes(cut []byte) int {
	n := len(cut)
	limit := n
	if limit > maxUtf8Lookback {
		limit = maxUtf8Lookback
	}
	back := 0
	for back < limit && isContinuationByte(cut[n-1-back]) {
		back++
	}
	if back < limit && cut[n-1-back] >= 0xC0 {
		seqLen := 2
		if lead := cut[n-1-back]; lead >= 0xF0 {
			seqLen = 4
		} else if lead >= 0xE0 {
			seqLen = 3
		}
		if back+1 < seqLen {
			back++
		} else {
			back = 0
		}
	}
	n -= back
	if n == 0 {
		n = 1
	}
	return n
}
