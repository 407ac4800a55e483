package streamxml

// isNameStart reports whether b can begin an element, attribute, or
// processing-instruction target name: an ASCII letter, '_', or ':'.
// Namespace resolution is out of scope, so ':' is just an ordinary name
// character here, never a prefix separator.
func isNameStart(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b == '_' || b == ':':
		return true
	default:
		return false
	}
}

// isNameChar reports whether b can continue a name begun by isNameStart:
// letters, digits, '.', '-', '_', ':', or the middle-dot byte 0xB7.
func isNameChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '.' || b == '-' || b == '_' || b == ':':
		return true
	case b == 0xB7:
		return true
	default:
		return false
	}
}

// isSpace reports whether b is ASCII whitespace, per the character set the
// sanitizer and tag scanner both use: space, tab, newline, carriage return.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// isContinuationByte reports whether b is a UTF-8 continuation byte
// (top two bits '10'), used only at the Text cut site to avoid emitting a
// slice that ends mid-codepoint.
func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}
