package editor

import (
	"github.com/lixenwraith/tin/document"
	"github.com/lixenwraith/tin/terminal"
)

// moveCursor applies one arrow key. Horizontal moves step whole code points and
// wrap across row ends; vertical moves may reach the phantom row below the last.
func (e *Editor) moveCursor(key terminal.Key) {
	row := e.doc.Row(e.cy)

	switch key {
	case terminal.KeyLeft:
		if e.cx > 0 && row != nil {
			e.cx = row.PrevBoundary(e.cx)
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.RowLen(e.cy)
		}
	case terminal.KeyRight:
		if row != nil && e.cx < row.Len() {
			e.cx = row.NextBoundary(e.cx)
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case terminal.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case terminal.KeyDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	e.clampCursor()
}

// clampCursor keeps cx within the current row and off continuation bytes
func (e *Editor) clampCursor() {
	row := e.doc.Row(e.cy)
	if row == nil {
		e.cx = 0
		return
	}
	if e.cx > row.Len() {
		e.cx = row.Len()
	}
	chars := row.Chars()
	for e.cx > 0 && e.cx < len(chars) && document.IsContinuation(chars[e.cx]) {
		e.cx--
	}
}

// page moves one screen: jump to the viewport edge, then step winrows rows
func (e *Editor) page(key terminal.Key) {
	step := terminal.KeyUp
	if key == terminal.KeyPageUp {
		e.cy = e.rowoff
	} else {
		step = terminal.KeyDown
		e.cy = min(e.rowoff+e.winrows-1, e.doc.NumRows())
	}

	for i := 0; i < e.winrows; i++ {
		e.moveCursor(step)
	}
}

// home moves to the start of the row
func (e *Editor) home() {
	e.cx = 0
}

// end moves past the last byte of the row
func (e *Editor) end() {
	e.cx = e.doc.RowLen(e.cy)
}
