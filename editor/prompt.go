package editor

import (
	"unicode/utf8"

	"github.com/lixenwraith/tin/render"
	"github.com/lixenwraith/tin/terminal"
)

// promptMode selects what runs after each prompt keystroke
type promptMode uint8

const (
	promptPlain  promptMode = iota // Collect input only
	promptSearch                   // Incremental search on every key
)

// prompt collects a line on the message bar. format receives the input so far.
// Enter accepts, Escape cancels; ok is false on cancel.
func (e *Editor) prompt(format string, mode promptMode) (input string, ok bool, err error) {
	buf := render.NewByteBuffer(64)
	search := newSearchState()

	for {
		e.SetStatus(format, buf.String())
		if err := e.Refresh(); err != nil {
			return "", false, err
		}

		ev, err := e.display.NextKey()
		if err != nil {
			return "", false, err
		}

		switch ev.Key {
		case terminal.KeyBackspace, terminal.KeyDelete:
			if buf.Len() > 0 {
				_, size := utf8.DecodeLastRune(buf.Bytes())
				buf.Pop(size)
			}
		case terminal.KeyEscape:
			e.status.clear()
			return "", false, nil
		case terminal.KeyEnter:
			e.status.clear()
			return buf.String(), true, nil
		case terminal.KeyByte:
			if !terminal.IsControl(ev.Byte) {
				buf.WriteByte(ev.Byte)
			}
		}

		if mode == promptSearch {
			e.searchStep(&search, buf.Bytes(), ev.Key)
		}
	}
}
