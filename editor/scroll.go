package editor

import (
	"github.com/lixenwraith/tin/render"
)

// updateGutter sizes the line number gutter for the current row count
func (e *Editor) updateGutter() {
	e.gutter = render.Digits(e.doc.NumRows()) + 1
}

// scroll recomputes rx and moves the viewport so the cursor stays visible
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.doc.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.winrows {
		e.rowoff = e.cy - e.winrows + 1
	}

	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx+e.gutter >= e.coloff+e.wincols {
		e.coloff = e.rx + e.gutter - e.wincols + 1
	}
	if e.coloff < 0 {
		e.coloff = 0
	}
}

// textCols is the width available to row content right of the gutter
func (e *Editor) textCols() int {
	if n := e.wincols - e.gutter; n > 0 {
		return n
	}
	return 0
}
