package streamxml

import "bytes"

// compactThreshold is the minimum cursor position at which compact() moves
// the unconsumed suffix to the front of buf. Compaction is deliberately
// delayed so that small, frequent feeds don't pay a memmove each time.
const compactThreshold = 4096

// inputBuffer is an append-only byte region with a read cursor and a
// monotonic absolute-offset counter, used by RawParser to hold bytes that
// have arrived via Feed but not yet been consumed.
//
// Grounded on xmltokenizer.Tokenizer's grow/memmove buffer strategy
// (other_examples, muktihari-xmltokenizer/tokenizer.go), adapted from a
// pull (io.Reader) model to a push (Feed) model, and from scanner.go's
// single buf+pos pair (bored-engineer/fastxml) by splitting "position" into
// a cursor relative to buf and an absolute offset that survives compaction.
type inputBuffer struct {
	buf    []byte
	cursor int
	offset int64
	eof    bool
}

// feed appends bytes to the buffer. It never blocks and never discards
// already-buffered data.
func (b *inputBuffer) feed(p []byte) {
	b.buf = append(b.buf, p...)
}

// finish marks the stream as closed: no further feed calls will add data.
func (b *inputBuffer) finish() {
	b.eof = true
}

// consume advances the cursor by n bytes and adds n to the absolute offset.
func (b *inputBuffer) consume(n int) {
	b.cursor += n
	b.offset += int64(n)
}

// remaining returns the unconsumed suffix of buf, from cursor to end.
func (b *inputBuffer) remaining() []byte {
	return b.buf[b.cursor:]
}

// len returns the number of unconsumed bytes.
func (b *inputBuffer) len() int {
	return len(b.buf) - b.cursor
}

// at returns the byte at cursor+i and whether it is present.
func (b *inputBuffer) at(i int) (byte, bool) {
	idx := b.cursor + i
	if idx >= len(b.buf) {
		return 0, false
	}
	return b.buf[idx], true
}

// indexByte returns the offset (relative to cursor) of the next occurrence
// of c at or after cursor, or -1 if not present in the buffered bytes.
func (b *inputBuffer) indexByte(c byte) int {
	return bytes.IndexByte(b.remaining(), c)
}

// indexString returns the offset (relative to cursor) of the next
// occurrence of s at or after cursor, or -1 if not present.
func (b *inputBuffer) indexString(s string) int {
	return bytes.Index(b.remaining(), []byte(s))
}

// hasPrefix reports whether the unconsumed bytes start with s.
func (b *inputBuffer) hasPrefix(s string) bool {
	return bytes.HasPrefix(b.remaining(), []byte(s))
}

// compact moves the unconsumed suffix to offset zero once the cursor has
// advanced far enough to make the copy worthwhile: cursor >= 4096 and
// cursor greater than half the buffered length. The absolute offset
// counter is untouched by compaction.
func (b *inputBuffer) compact() {
	if b.cursor < compactThreshold || b.cursor <= len(b.buf)/2 {
		return
	}
	n := copy(b.buf, b.buf[b.cursor:])
	b.buf = b.buf[:n]
	b.cursor = 0
}

// reset returns the buffer to its initial state, retaining the backing
// array's capacity so repeated documents amortize allocation.
func (b *inputBuffer) reset() {
	b.buf = b.buf[:0]
	b.cursor = 0
	b.offset = 0
	b.eof = false
}
