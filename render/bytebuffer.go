// Package render accumulates terminal output for one frame.
//
// A frame is assembled into a ByteBuffer with the ANSI helpers below and
// handed to the terminal in a single write, so the screen never shows a
// half-drawn state.
package render

// ByteBuffer is a growable byte container for one frame of output.
// Appends are amortized O(1); Bytes is always one contiguous slice.
type ByteBuffer struct {
	buf []byte
}

// NewByteBuffer creates a buffer with an initial capacity hint
func NewByteBuffer(capacity int) *ByteBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &ByteBuffer{buf: make([]byte, 0, capacity)}
}

// grow ensures room for n more bytes, doubling capacity when exhausted
func (b *ByteBuffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := 2 * cap(b.buf)
	if newCap < need {
		newCap = 2 * need
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

// Write implements io.Writer; it never fails
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s
func (b *ByteBuffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends c
func (b *ByteBuffer) WriteByte(c byte) error {
	b.grow(1)
	b.buf = append(b.buf, c)
	return nil
}

// Repeat appends c n times
func (b *ByteBuffer) Repeat(c byte, n int) {
	if n <= 0 {
		return
	}
	b.grow(n)
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
}

// WriteInt writes a non-negative integer without allocation
func (b *ByteBuffer) WriteInt(n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		b.WriteByte(byte(n) + '0')
		return
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte(n%10) + '0'
		n /= 10
	}
	b.Write(digits[i:])
}

// Pop removes up to n trailing bytes
func (b *ByteBuffer) Pop(n int) {
	if n > len(b.buf) {
		n = len(b.buf)
	}
	if n > 0 {
		b.buf = b.buf[:len(b.buf)-n]
	}
}

// Bytes returns the accumulated content; valid until the next mutation
func (b *ByteBuffer) Bytes() []byte {
	return b.buf
}

// String returns a copy of the accumulated content
func (b *ByteBuffer) String() string {
	return string(b.buf)
}

// Len returns the number of accumulated bytes
func (b *ByteBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the current capacity
func (b *ByteBuffer) Cap() int {
	return cap(b.buf)
}

// Reset empties the buffer, keeping its capacity for the next frame
func (b *ByteBuffer) Reset() {
	b.buf = b.buf[:0]
}
