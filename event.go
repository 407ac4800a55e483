package streamxml

// EventKind discriminates the variant carried by an Event.
type EventKind uint8

const (
	eventKindUnset EventKind = iota
	EventElementStart
	EventAttribute
	EventElementEnd
	EventText
	EventComment
	EventProcessingInstruction
	EventCdata
	EventError
	EventNeedMoreInput
	EventEndOfStream
)

// String returns a short human-readable name for k, used in error messages
// and test failure output.
func (k EventKind) String() string {
	switch k {
	case EventElementStart:
		return "ElementStart"
	case EventAttribute:
		return "Attribute"
	case EventElementEnd:
		return "ElementEnd"
	case EventText:
		return "Text"
	case EventComment:
		return "Comment"
	case EventProcessingInstruction:
		return "ProcessingInstruction"
	case EventCdata:
		return "Cdata"
	case EventError:
		return "Error"
	case EventNeedMoreInput:
		return "NeedMoreInput"
	case EventEndOfStream:
		return "EndOfStream"
	default:
		return "Unset"
	}
}

// Origin distinguishes element boundaries present in the source from ones
// synthesized by a normalization layer. The raw parser always produces
// OriginExplicit; OriginImplied is reserved for future normalizers and must
// round-trip unchanged through the Sanitizer.
type Origin uint8

const (
	OriginExplicit Origin = iota
	OriginImplied
)

// ErrorKind classifies an EventError's payload.
type ErrorKind uint8

const (
	errorKindUnset ErrorKind = iota
	InvalidUtf8
	MalformedMarkup
	InvalidName
	UnexpectedEof
	LimitExceeded
	Unsupported
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUtf8:
		return "InvalidUtf8"
	case MalformedMarkup:
		return "MalformedMarkup"
	case InvalidName:
		return "InvalidName"
	case UnexpectedEof:
		return "UnexpectedEof"
	case LimitExceeded:
		return "LimitExceeded"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unset"
	}
}

// ParserMode selects the markup dialect a RawParser interprets. Only
// ModeXML is implemented; ModeHTML and ModeAuto surface an Unsupported
// error on the first event.
type ParserMode uint8

const (
	ModeXML ParserMode = iota
	ModeHTML
	ModeAuto
)

// Event is a single unit emitted by the parser pipeline. Its meaning is
// determined by Kind; only the fields relevant to that Kind are populated.
//
// Byte slices (Name, Value, Bytes, Target, Data) are owned by the emitting
// RawParser's payload arena and are valid from emission until that parser's
// next Reset or destruction; Sanitizer forwards them without copying and is
// bound by the same lifetime.
type Event struct {
	Kind EventKind

	// ElementStart, ElementEnd
	Name   []byte
	Origin Origin

	// Attribute
	Value []byte

	// Text, Comment, Cdata
	Bytes []byte

	// ProcessingInstruction
	Target []byte
	Data   []byte

	// Error
	ErrKind ErrorKind
	Message string
	Offset  int64
}

func newElementStart(name []byte, origin Origin) Event {
	return Event{Kind: EventElementStart, Name: name, Origin: origin}
}

func newAttribute(name, value []byte) Event {
	return Event{Kind: EventAttribute, Name: name, Value: value}
}

func newElementEnd(name []byte, origin Origin) Event {
	return Event{Kind: EventElementEnd, Name: name, Origin: origin}
}

func newText(b []byte) Event {
	return Event{Kind: EventText, Bytes: b}
}

func newComment(b []byte) Event {
	return Event{Kind: EventComment, Bytes: b}
}

func newCdata(b []byte) Event {
	return Event{Kind: EventCdata, Bytes: b}
}

func newProcessingInstruction(target, data []byte) Event {
	return Event{Kind: EventProcessingInstruction, Target: target, Data: data}
}

func newError(kind ErrorKind, message string, offset int64) Event {
	return Event{Kind: EventError, ErrKind: kind, Message: message, Offset: offset}
}

var needMoreInputEvent = Event{Kind: EventNeedMoreInput}
var endOfStreamEvent = Event{Kind: EventEndOfStream}
