package document

// UTF-8 byte classes
// 0xxxxxxx   ASCII
// 10xxxxxx   continuation byte of a multi-byte sequence
// 11xxxxxx   lead byte of a multi-byte sequence

// IsContinuation reports whether b is a UTF-8 continuation byte
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// IsLead reports whether b starts a multi-byte UTF-8 sequence
func IsLead(b byte) bool {
	return b&0xC0 == 0xC0
}
