package editor

import (
	"bytes"

	"github.com/lixenwraith/tin/terminal"
)

const findPrompt = "find (next/prev with arrow keys): %s"

// searchState tracks the last matched row and scan direction of an incremental search
type searchState struct {
	lastMatch int // -1 when the next scan starts from the cursor row
	direction int // 1 forward, -1 backward
}

func newSearchState() searchState {
	return searchState{lastMatch: -1, direction: 1}
}

// find runs the incremental search prompt, restoring the viewport on cancel or empty query
func (e *Editor) find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	query, ok, err := e.prompt(findPrompt, promptSearch)
	if err != nil {
		return err
	}
	if !ok || query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
	return nil
}

// searchStep scans rows in render form for query, wrapping at both ends, and
// moves the cursor to the first match. Arrow keys step to the next or previous
// match; any other edit restarts from the cursor row.
func (e *Editor) searchStep(st *searchState, query []byte, key terminal.Key) {
	switch key {
	case terminal.KeyEnter, terminal.KeyEscape:
		*st = newSearchState()
		return
	case terminal.KeyRight, terminal.KeyDown:
		st.direction = 1
	case terminal.KeyLeft, terminal.KeyUp:
		st.direction = -1
	default:
		st.lastMatch = -1
		st.direction = 1
	}

	nrows := e.doc.NumRows()
	if len(query) == 0 || nrows == 0 {
		return
	}

	current := st.lastMatch
	if current == -1 {
		st.direction = 1
		current = e.cy - 1
	}

	for i := 0; i < nrows; i++ {
		current += st.direction
		if current < 0 {
			current = nrows - 1
		} else if current >= nrows {
			current = 0
		}

		row := e.doc.Row(current)
		idx := bytes.Index(row.Render(), query)
		if idx < 0 {
			continue
		}

		st.lastMatch = current
		e.cy = current
		e.cx = row.RxToCx(row.RenderOffsetToRx(idx))
		// Force the next scroll to put the match row at the top
		e.rowoff = nrows
		return
	}
}
