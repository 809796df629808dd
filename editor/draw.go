package editor

import (
	"fmt"
	"path/filepath"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tin/parameter"
	"github.com/lixenwraith/tin/render"
)

var welcomeLines = []string{
	"TIN - TIN Isn't Nano",
	"version " + parameter.Version,
	"^X exit   ^S save   ^F find",
}

// Refresh handles a pending resize, then composes and writes one full frame
func (e *Editor) Refresh() error {
	if e.display.ConsumeResize() {
		if err := e.Resize(); err != nil {
			return err
		}
	}

	e.updateGutter()
	e.scroll()

	b := e.frame
	b.Reset()
	b.Write(render.SeqCursorHide)
	b.Write(render.SeqCursorHome)

	e.drawStatusBar(b)
	e.drawRows(b)
	e.drawMessageBar(b)

	b.WriteCursorPos(e.rx-e.coloff+e.gutter, e.cy-e.rowoff+parameter.HeaderRows)
	b.Write(render.SeqCursorShow)

	if _, err := e.display.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// displayName is the status bar name: the base name of the path, or UntitledName
func (e *Editor) displayName() string {
	path := e.doc.Path()
	if path == "" {
		return parameter.UntitledName
	}
	return filepath.Base(path)
}

// drawStatusBar writes the reverse-video top bar: dirty marker and name left, position right
func (e *Editor) drawStatusBar(b *render.ByteBuffer) {
	marker := ' '
	if e.doc.Dirty() > 0 {
		marker = '*'
	}
	name := runewidth.Truncate(e.displayName(), parameter.StatusFilenameCells, "")
	left := fmt.Sprintf("[%c] %s", marker, name)

	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = row.Glyphs()
	}
	right := fmt.Sprintf("line %d/%d, col %d/%d", e.cy+1, e.doc.NumRows(), e.rx+1, rowLen+1)

	b.Write(render.SeqReverse)
	if len(right) > e.wincols {
		right = right[:e.wincols]
	}
	left = runewidth.Truncate(left, max(e.wincols-len(right), 0), "")
	b.WriteString(left)
	b.Repeat(' ', e.wincols-runewidth.StringWidth(left)-len(right))
	b.WriteString(right)
	b.Write(render.SeqReset)
	b.Write(render.SeqNewline)
}

// drawRows writes the text area: gutter and clipped render per row, banner or tildes past the end
func (e *Editor) drawRows(b *render.ByteBuffer) {
	nrows := e.doc.NumRows()
	bannerTop := e.winrows / 3

	for y := 0; y < e.winrows; y++ {
		filerow := y + e.rowoff
		if filerow < nrows {
			b.Write(render.SeqFgRed)
			pad := e.gutter - 1 - render.Digits(filerow+1)
			if pad > 0 {
				b.Repeat(' ', pad)
			}
			b.WriteInt(filerow + 1)
			b.Write(render.SeqReset)
			b.WriteByte(' ')
			b.Write(e.doc.Row(filerow).RenderSlice(e.coloff, e.textCols()))
		} else if line := y - bannerTop; nrows == 0 && line >= 0 && line < len(welcomeLines) {
			e.drawWelcome(b, welcomeLines[line])
		} else {
			b.WriteByte('~')
		}

		b.Write(render.SeqClearLine)
		b.Write(render.SeqNewline)
	}
}

// drawWelcome centers one banner line, keeping the leading tilde
func (e *Editor) drawWelcome(b *render.ByteBuffer, msg string) {
	if len(msg) > e.wincols {
		msg = msg[:e.wincols]
	}
	pad := (e.wincols - len(msg)) / 2
	if pad > 0 {
		b.WriteByte('~')
		pad--
	}
	b.Repeat(' ', pad)
	b.WriteString(msg)
}

// drawMessageBar writes the reverse-video bottom bar with the unexpired message
func (e *Editor) drawMessageBar(b *render.ByteBuffer) {
	msg := runewidth.Truncate(e.status.current(e.now()), e.wincols, "")

	b.Write(render.SeqClearLine)
	b.Write(render.SeqReverse)
	b.WriteString(msg)
	b.Repeat(' ', e.wincols-runewidth.StringWidth(msg))
	b.Write(render.SeqReset)
}
