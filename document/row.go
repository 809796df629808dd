package document

import (
	"github.com/lixenwraith/tin/parameter"
)

// Row is one line of text without its newline.
// render is derived from chars and is rebuilt on every change to chars.
type Row struct {
	chars  []byte
	render []byte
	glyphs int
}

func newRow(b []byte) *Row {
	r := &Row{chars: append([]byte(nil), b...)}
	r.update()
	return r
}

// update rebuilds render: tabs expand to the next tab stop, everything else passes through
func (r *Row) update() {
	r.render = r.render[:0]
	r.glyphs = 0

	for _, c := range r.chars {
		if c == '\t' {
			r.render = append(r.render, ' ')
			r.glyphs++
			for r.glyphs%parameter.TabStop != 0 {
				r.render = append(r.render, ' ')
				r.glyphs++
			}
			continue
		}
		r.render = append(r.render, c)
		if !IsContinuation(c) {
			r.glyphs++
		}
	}
}

// Chars returns the raw content; callers must not modify it
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the tab-expanded display form; callers must not modify it
func (r *Row) Render() []byte {
	return r.render
}

// Len returns the raw byte length
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the rendered byte length
func (r *Row) RenderLen() int {
	return len(r.render)
}

// Glyphs returns the number of visible cells in render
func (r *Row) Glyphs() int {
	return r.glyphs
}

// String returns the raw content as a string
func (r *Row) String() string {
	return string(r.chars)
}

func (r *Row) insertByte(at int, c byte) {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

func (r *Row) deleteByte(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.chars = append(r.chars, b...)
	r.update()
}

func (r *Row) truncate(n int) {
	if n < 0 || n >= len(r.chars) {
		return
	}
	r.chars = r.chars[:n]
	r.update()
}
