package editor

import (
	"github.com/lixenwraith/tin/document"
	"github.com/lixenwraith/tin/terminal"
)

const quitWarning = "Unsaved changes in buffer! (press ^X %d more %s to quit)"

// ProcessKey dispatches one decoded key. done reports that the editor should
// terminate; err is a fatal I/O error from a nested prompt.
func (e *Editor) ProcessKey(ev terminal.Event) (done bool, err error) {
	dirty := e.doc.Dirty()
	saved := false

	switch {
	case ev.IsCtrl('x'):
		quit, left := e.quit.press(e.doc.Dirty() > 0)
		if quit {
			return true, nil
		}
		e.SetStatus(quitWarning, left, plural(left, "time", "times"))
		return false, nil

	case ev.IsCtrl('s'):
		if saved, err = e.save(); err != nil {
			return false, err
		}

	case ev.IsCtrl('f'):
		if err = e.find(); err != nil {
			return false, err
		}

	default:
		e.dispatch(ev)
	}

	if saved || e.doc.Dirty() != dirty {
		e.quit.reset()
	}
	return false, nil
}

// dispatch handles editing and navigation keys
func (e *Editor) dispatch(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEnter:
		e.setCursor(e.doc.Newline(e.Cursor()))
	case terminal.KeyBackspace:
		e.setCursor(e.doc.Backspace(e.Cursor()))
	case terminal.KeyDelete:
		e.moveCursor(terminal.KeyRight)
		e.setCursor(e.doc.Backspace(e.Cursor()))
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.moveCursor(ev.Key)
	case terminal.KeyPageUp, terminal.KeyPageDown:
		e.page(ev.Key)
	case terminal.KeyHome:
		e.home()
	case terminal.KeyEnd:
		e.end()
	case terminal.KeyByte:
		// Tab is the only control byte that reaches the buffer
		if ev.Byte == '\t' || !terminal.IsControl(ev.Byte) {
			e.setCursor(e.doc.InsertAt(e.Cursor(), ev.Byte))
		}
	case terminal.KeyEscape, terminal.KeyResize, terminal.KeyNone:
	}
}

func (e *Editor) setCursor(pos document.Position) {
	e.cy, e.cx = pos.Row, pos.Col
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
