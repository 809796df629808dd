package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/tin/terminal"
)

func runFind(t *testing.T, e *Editor, disp *fakeDisplay, keys ...terminal.Event) {
	t.Helper()
	disp.keys = keys
	if err := e.find(); err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(disp.keys) != 0 {
		t.Fatalf("Expected all keys consumed, %d left", len(disp.keys))
	}
}

func TestFind_WrapsFromLastLine(t *testing.T) {
	e, disp := newTestEditor(t, 24, 80, openDoc(t, "needle here", "x", "y", "z"))
	e.cy = 3

	runFind(t, e, disp, append(typed("need"), key(terminal.KeyEnter))...)
	assertCursor(t, e, 0, 0)
}

func TestFind_MapsRenderOffsetToRawColumn(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		query string
		col   int
	}{
		{"tab", "\tfoo", "foo", 1},
		{"multibyte", "héllo wörld", "w", 7},
		{"after wide", "€€x", "x", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, disp := newTestEditor(t, 24, 80, openDoc(t, tt.line))
			runFind(t, e, disp, append(typed(tt.query), key(terminal.KeyEnter))...)
			assertCursor(t, e, 0, tt.col)
		})
	}
}

func TestFind_ArrowsStepBetweenMatches(t *testing.T) {
	e, disp := newTestEditor(t, 24, 80, openDoc(t, "foo 1", "bar", "foo 2", "foo 3"))

	keys := typed("foo")
	keys = append(keys,
		key(terminal.KeyDown),  // 2
		key(terminal.KeyRight), // 3
		key(terminal.KeyDown),  // wraps to 0
		key(terminal.KeyUp),    // wraps to 3
		key(terminal.KeyLeft),  // 2
		key(terminal.KeyEnter),
	)
	runFind(t, e, disp, keys...)
	assertCursor(t, e, 2, 0)
}

func TestFind_EscapeRestoresViewport(t *testing.T) {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	lines[50] = "target"
	e, disp := newTestEditor(t, 24, 80, openDoc(t, lines...))
	e.cy, e.cx = 3, 2

	runFind(t, e, disp, append(typed("targ"), key(terminal.KeyEscape))...)
	assertCursor(t, e, 3, 2)
	if e.rowoff != 0 || e.coloff != 0 {
		t.Errorf("Expected offsets restored, got rowoff %d coloff %d", e.rowoff, e.coloff)
	}
}

func TestFind_EmptyQueryRestoresCursor(t *testing.T) {
	e, disp := newTestEditor(t, 24, 80, openDoc(t, "abc", "abd"))
	e.cy, e.cx = 1, 2

	runFind(t, e, disp, append(typed("a"), key(terminal.KeyBackspace), key(terminal.KeyEnter))...)
	assertCursor(t, e, 1, 2)
}

func TestFind_MatchScrollsToTop(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	lines[50] = "target"
	e, disp := newTestEditor(t, 24, 80, openDoc(t, lines...))

	runFind(t, e, disp, append(typed("target"), key(terminal.KeyEnter))...)
	refresh(t, e, disp)

	assertCursor(t, e, 50, 0)
	if e.rowoff != 50 {
		t.Errorf("Expected match row at top, got rowoff %d", e.rowoff)
	}
}

func TestFind_NoMatchLeavesCursor(t *testing.T) {
	e, disp := newTestEditor(t, 24, 80, openDoc(t, "abc"))
	e.cx = 1

	runFind(t, e, disp, append(typed("zz"), key(terminal.KeyEnter))...)
	assertCursor(t, e, 0, 1)
}

func TestFind_PromptShowsQuery(t *testing.T) {
	e, disp := newTestEditor(t, 24, 80, openDoc(t, "abc"))

	runFind(t, e, disp, append(typed("bc"), key(terminal.KeyEnter))...)
	if got := disp.lastFrame(); !strings.Contains(got, "find (next/prev with arrow keys): bc") {
		t.Errorf("Expected prompt with query, got %q", got)
	}
}
