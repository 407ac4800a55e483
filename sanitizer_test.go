package streamxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushAll feeds every event in events into s and returns everything
// NextEvent yields up to and including EventEndOfStream. It assumes the
// caller already ended events with an EventEndOfStream.
func pushAll(t *testing.T, s *Sanitizer, events []Event) []Event {
	t.Helper()
	for _, ev := range events {
		s.Push(ev)
	}
	var out []Event
	for {
		ev := s.NextEvent()
		if ev.Kind == EventNeedMoreInput {
			require.Fail(t, "sanitizer starved of output after a finished input sequence")
		}
		out = append(out, ev)
		if ev.Kind == EventEndOfStream {
			return out
		}
		require.Less(t, len(out), 10000, "runaway sanitize loop")
	}
}

func TestSanitizerWellFormedDocumentPassesThrough(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newAttribute([]byte("b"), []byte("c")),
		newText([]byte("hi")),
		newElementEnd([]byte("a"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.Len(t, out, 5)
	assert.Equal(t, EventElementStart, out[0].Kind)
	assert.Equal(t, EventAttribute, out[1].Kind)
	assert.Equal(t, EventText, out[2].Kind)
	assert.Equal(t, EventElementEnd, out[3].Kind)
	assert.Equal(t, EventEndOfStream, out[4].Kind)
}

func TestSanitizerDuplicateAttributeNameErrors(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newAttribute([]byte("b"), []byte("1")),
		newAttribute([]byte("b"), []byte("2")),
		newElementEnd([]byte("a"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.GreaterOrEqual(t, len(out), 3)
	assert.Equal(t, EventError, out[2].Kind)
	assert.Equal(t, MalformedMarkup, out[2].ErrKind)
}

func TestSanitizerMismatchedEndTagErrors(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newElementEnd([]byte("z"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, EventError, out[1].Kind)
	assert.Equal(t, MalformedMarkup, out[1].ErrKind)
}

func TestSanitizerTextOutsideRootErrors(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newText([]byte("hello")),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.GreaterOrEqual(t, len(out), 1)
	assert.Equal(t, EventError, out[0].Kind)
	assert.Equal(t, MalformedMarkup, out[0].ErrKind)
}

func TestSanitizerWhitespaceOutsideRootIsTolerated(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newText([]byte("  \n")),
		newElementStart([]byte("a"), OriginExplicit),
		newElementEnd([]byte("a"), OriginExplicit),
		newText([]byte("\t")),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	for _, ev := range out {
		assert.NotEqual(t, EventError, ev.Kind)
	}
}

func TestSanitizerMultipleRootsErrors(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newElementEnd([]byte("a"), OriginExplicit),
		newElementStart([]byte("b"), OriginExplicit),
		newElementEnd([]byte("b"), OriginExplicit),
		endOfStreamEvent,
	}
	// The rejected <b> is never pushed, so its end tag is reported too.
	out := pushAll(t, s, in)
	var errs int
	for _, ev := range out {
		if ev.Kind == EventError {
			errs++
			assert.Equal(t, MalformedMarkup, ev.ErrKind)
		}
	}
	assert.Equal(t, 2, errs)
}

func TestSanitizerUnclosedElementAtFinish(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, EventError, out[len(out)-2].Kind)
	assert.Equal(t, UnexpectedEof, out[len(out)-2].ErrKind)
}

func TestSanitizerMissingRootAtFinish(t *testing.T) {
	s := NewSanitizer()
	out := pushAll(t, s, []Event{endOfStreamEvent})
	require.Len(t, out, 2)
	assert.Equal(t, EventError, out[0].Kind)
	assert.Equal(t, MalformedMarkup, out[0].ErrKind)
}

func TestSanitizerMaxDepthLimit(t *testing.T) {
	s := NewSanitizer(WithMaxDepth(1))
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newElementStart([]byte("b"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	var found bool
	for _, ev := range out {
		if ev.Kind == EventError && ev.ErrKind == LimitExceeded {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSanitizerFailFastSuppressesFurtherEventsAfterError(t *testing.T) {
	s := NewSanitizer(WithFailFast(true))
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newElementEnd([]byte("wrong"), OriginExplicit),
		newText([]byte("should be dropped")),
		newElementStart([]byte("b"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.Len(t, out, 3)
	assert.Equal(t, EventError, out[1].Kind)
	assert.Equal(t, EventEndOfStream, out[2].Kind)
}

func TestSanitizerFailFastFinishDoesNotResurrectErrors(t *testing.T) {
	// Once fail_fast has stopped the stream on a mismatched end tag, the
	// unclosed "a" element on the stack must not also produce an
	// UnexpectedEof at Finish.
	s := NewSanitizer(WithFailFast(true))
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newElementEnd([]byte("wrong"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	require.Len(t, out, 3)
	assert.Equal(t, EventError, out[1].Kind)
	assert.Equal(t, EventEndOfStream, out[2].Kind)
}

func TestSanitizerAttributeWithoutStartTagErrors(t *testing.T) {
	s := NewSanitizer()
	in := []Event{
		newElementStart([]byte("a"), OriginExplicit),
		newText([]byte("x")),
		newAttribute([]byte("b"), []byte("c")),
		newElementEnd([]byte("a"), OriginExplicit),
		endOfStreamEvent,
	}
	out := pushAll(t, s, in)
	var found bool
	for _, ev := range out {
		if ev.Kind == EventError {
			found = true
			assert.Equal(t, MalformedMarkup, ev.ErrKind)
		}
	}
	assert.True(t, found)
}

func TestSanitizerNextEventNeedMoreInputBeforeFinish(t *testing.T) {
	s := NewSanitizer()
	s.Push(newElementStart([]byte("a"), OriginExplicit))
	s.NextEvent() // drain ElementStart
	assert.Equal(t, EventNeedMoreInput, s.NextEvent().Kind)
}

func TestSanitizerReset(t *testing.T) {
	s := NewSanitizer()
	s.Push(newElementStart([]byte("a"), OriginExplicit))
	s.Push(endOfStreamEvent)
	s.Reset()
	out := pushAll(t, s, []Event{
		newElementStart([]byte("b"), OriginExplicit),
		newElementEnd([]byte("b"), OriginExplicit),
		endOfStreamEvent,
	})
	for _, ev := range out {
		assert.NotEqual(t, EventError, ev.Kind)
	}
}
