package streamxml

import "unsafe"

// String performs an _unsafe_ no-copy string conversion from buf.
// https://github.com/golang/go/issues/25484 has more info on this.
//
// Consumers may use this to get a zero-copy string view of an Event's
// arena-owned byte slice (Name, Value, Bytes, Target, Data). The same
// lifetime rules apply: the returned string is only valid until the
// owning RawParser's next Reset or destruction.
func String(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}
