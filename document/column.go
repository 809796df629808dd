package document

import (
	"github.com/lixenwraith/tin/parameter"
)

// CxToRx maps a raw byte column to its rendered column.
// Continuation bytes add nothing; a lead or ASCII byte adds one; a tab jumps to the next stop.
func (r *Row) CxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		c := r.chars[j]
		switch {
		case c == '\t':
			rx += parameter.TabStop - rx%parameter.TabStop
		case IsContinuation(c):
		default:
			rx++
		}
	}
	return rx
}

// RxToCx maps a rendered column back to the raw column of the character covering it.
// The result never addresses a continuation byte; columns past the end map to Len.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		c := r.chars[cx]
		switch {
		case c == '\t':
			curRx += parameter.TabStop - curRx%parameter.TabStop
		case IsContinuation(c):
			continue
		default:
			curRx++
		}
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// RenderOffsetToRx converts a byte offset into render to a rendered column
func (r *Row) RenderOffsetToRx(off int) int {
	if off > len(r.render) {
		off = len(r.render)
	}
	rx := 0
	for _, c := range r.render[:off] {
		if !IsContinuation(c) {
			rx++
		}
	}
	return rx
}

// PrevBoundary returns the start of the code point before cx
func (r *Row) PrevBoundary(cx int) int {
	if cx <= 0 {
		return 0
	}
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	cx--
	for cx > 0 && IsContinuation(r.chars[cx]) {
		cx--
	}
	return cx
}

// NextBoundary returns the start of the code point after the one at cx
func (r *Row) NextBoundary(cx int) int {
	if cx >= len(r.chars) {
		return len(r.chars)
	}
	cx++
	for cx < len(r.chars) && IsContinuation(r.chars[cx]) {
		cx++
	}
	return cx
}

// RenderSlice returns render clipped to width glyphs starting at glyph coloff.
// A multi-byte character is either included whole or not at all.
func (r *Row) RenderSlice(coloff, width int) []byte {
	if coloff < 0 {
		coloff = 0
	}
	start := skipGlyphs(r.render, 0, coloff)
	end := skipGlyphs(r.render, start, width)
	return r.render[start:end]
}

// skipGlyphs advances from byte index i over n glyphs
func skipGlyphs(b []byte, i, n int) int {
	for n > 0 && i < len(b) {
		i++
		for i < len(b) && IsContinuation(b[i]) {
			i++
		}
		n--
	}
	return i
}
