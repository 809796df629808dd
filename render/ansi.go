package render

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi = []byte("\x1b[")

	SeqCursorHide = []byte("\x1b[?25l")
	SeqCursorShow = []byte("\x1b[?25h")
	SeqCursorHome = []byte("\x1b[H")
	SeqClearLine  = []byte("\x1b[K") // Erase from cursor to end of line
	SeqReverse    = []byte("\x1b[7m")
	SeqFgRed      = []byte("\x1b[31m")
	SeqReset      = []byte("\x1b[m")
	SeqNewline    = []byte("\r\n") // OPOST is off, so CR must be explicit
)

// WriteCursorPos writes a cursor positioning sequence (0-indexed input)
func (b *ByteBuffer) WriteCursorPos(x, y int) {
	b.Write(csi)
	b.WriteInt(y + 1)
	b.WriteByte(';')
	b.WriteInt(x + 1)
	b.WriteByte('H')
}

// Digits returns the number of decimal digits needed to print n
func Digits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
