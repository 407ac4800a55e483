package streamxml

// Default limits applied when a RawParser is constructed with no Options.
// Chosen generously enough for typical documents while still bounding
// worst-case per-event allocation, per spec.md §5.
const (
	defaultMaxNameLen         = 256
	defaultMaxAttrLen         = 4 << 10
	defaultMaxTextChunk       = 8 << 10
	defaultMaxAttrsPerElement = 128
	defaultSanitizerMaxDepth  = 256
)

// parserOptions holds the static, per-instance configuration of a
// RawParser, per spec.md §4.3.
type parserOptions struct {
	mode               ParserMode
	maxNameLen         int
	maxAttrLen         int
	maxTextChunk       int
	maxAttrsPerElement int
	emitComments       bool
	emitPI             bool
	emitCdata          bool
}

func defaultParserOptions() parserOptions {
	return parserOptions{
		mode:               ModeXML,
		maxNameLen:         defaultMaxNameLen,
		maxAttrLen:         defaultMaxAttrLen,
		maxTextChunk:       defaultMaxTextChunk,
		maxAttrsPerElement: defaultMaxAttrsPerElement,
		emitComments:       true,
		emitPI:             true,
		emitCdata:          true,
	}
}

// Option configures a RawParser at construction time.
//
// Grounded on xmltokenizer.Option / WithReadBufferSize (other_examples,
// muktihari-xmltokenizer/tokenizer.go), the closest example of a
// configurable streaming XML reader in the retrieved pack.
type Option func(*parserOptions)

// WithMode selects the markup dialect. Only ModeXML is implemented; the
// others surface an Unsupported error on the first event.
func WithMode(mode ParserMode) Option {
	return func(o *parserOptions) { o.mode = mode }
}

// WithMaxNameLen caps the byte length of element, attribute, and
// processing-instruction target names.
func WithMaxNameLen(n int) Option {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxNameLen = n
		}
	}
}

// WithMaxAttrLen caps the byte length of a single attribute value.
func WithMaxAttrLen(n int) Option {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxAttrLen = n
		}
	}
}

// WithMaxTextChunk sets the soft cap on a single Text event's byte length.
func WithMaxTextChunk(n int) Option {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxTextChunk = n
		}
	}
}

// WithMaxAttrsPerElement caps the number of attributes a single start tag
// may carry before LimitExceeded is raised.
func WithMaxAttrsPerElement(n int) Option {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxAttrsPerElement = n
		}
	}
}

// WithEmitComments controls whether Comment events are produced; disabled
// comments are still recognized and skipped.
func WithEmitComments(emit bool) Option {
	return func(o *parserOptions) { o.emitComments = emit }
}

// WithEmitProcessingInstructions controls whether ProcessingInstruction
// events are produced.
func WithEmitProcessingInstructions(emit bool) Option {
	return func(o *parserOptions) { o.emitPI = emit }
}

// WithEmitCdata controls whether Cdata events are produced.
func WithEmitCdata(emit bool) Option {
	return func(o *parserOptions) { o.emitCdata = emit }
}

// sanitizerOptions holds the static, per-instance configuration of a
// Sanitizer, per spec.md §4.4.
type sanitizerOptions struct {
	failFast bool
	maxDepth int
}

func defaultSanitizerOptions() sanitizerOptions {
	return sanitizerOptions{
		failFast: false,
		maxDepth: defaultSanitizerMaxDepth,
	}
}

// SanitizerOption configures a Sanitizer at construction time.
type SanitizerOption func(*sanitizerOptions)

// WithFailFast controls whether the sanitizer suppresses further
// non-Error, non-EndOfStream output after the first structural violation.
func WithFailFast(failFast bool) SanitizerOption {
	return func(o *sanitizerOptions) { o.failFast = failFast }
}

// WithMaxDepth caps element nesting depth before LimitExceeded is raised.
func WithMaxDepth(n int) SanitizerOption {
	return func(o *sanitizerOptions) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
