package streamxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "ElementStart", EventElementStart.String())
	assert.Equal(t, "EndOfStream", EventEndOfStream.String())
	assert.Equal(t, "Unset", eventKindUnset.String())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "MalformedMarkup", MalformedMarkup.String())
	assert.Equal(t, "Unset", errorKindUnset.String())
}

func TestNewElementStart(t *testing.T) {
	ev := newElementStart([]byte("foo"), OriginExplicit)
	assert.Equal(t, EventElementStart, ev.Kind)
	assert.Equal(t, "foo", string(ev.Name))
	assert.Equal(t, OriginExplicit, ev.Origin)
}

func TestNewAttribute(t *testing.T) {
	ev := newAttribute([]byte("key"), []byte("val"))
	assert.Equal(t, EventAttribute, ev.Kind)
	assert.Equal(t, "key", string(ev.Name))
	assert.Equal(t, "val", string(ev.Value))
}

func TestNewError(t *testing.T) {
	ev := newError(LimitExceeded, "too long", 42)
	assert.Equal(t, EventError, ev.Kind)
	assert.Equal(t, LimitExceeded, ev.ErrKind)
	assert.Equal(t, "too long", ev.Message)
	assert.Equal(t, int64(42), ev.Offset)
}

func TestStringZeroCopy(t *testing.T) {
	buf := []byte("hello")
	s := String(buf)
	assert.Equal(t, "hello", s)
}
