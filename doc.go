// Package streamxml is a low-resource, incremental parser for XML-shaped
// markup. It converts a stream of UTF-8 bytes delivered in arbitrary chunks
// into a well-formed sequence of structural Events, without ever
// materializing a full document tree.
//
// The package is organized in two layers. RawParser recognizes XML
// constructs (elements, attributes, text, comments, CDATA, processing
// instructions) directly against a byte buffer and emits events through
// NextEvent as soon as a complete construct is available, returning
// EventNeedMoreInput when it isn't. Sanitizer consumes that raw event
// sequence and enforces global well-formedness: a single root, balanced
// nesting, unique attributes per element, and no significant text outside
// the root.
//
// Both layers are single-threaded and cooperative: there is no internal
// concurrency, and the only suspension point is the return of
// EventNeedMoreInput, which invites the caller to Feed more bytes before
// calling NextEvent again.
package streamxml
