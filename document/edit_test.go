package document

import (
	"reflect"
	"testing"
)

func TestBackspace_DocumentStartIsNoOp(t *testing.T) {
	d := docWith("abc", "def")
	pos := d.Backspace(Position{0, 0})
	if pos != (Position{0, 0}) {
		t.Errorf("Expected cursor unchanged, got %+v", pos)
	}
	if !reflect.DeepEqual(d.Lines(), []string{"abc", "def"}) || d.Dirty() != 0 {
		t.Errorf("Expected document unchanged, got %q dirty %d", d.Lines(), d.Dirty())
	}
}

func TestBackspace_MergesIntoPreviousRow(t *testing.T) {
	d := docWith("abc", "def", "ghi")
	pos := d.Backspace(Position{Row: 2, Col: 0})

	if pos != (Position{Row: 1, Col: 3}) {
		t.Errorf("Expected cursor at pre-merge end of row 1, got %+v", pos)
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"abc", "defghi"}) {
		t.Errorf("Unexpected rows %q", got)
	}
}

func TestBackspace_DeletesWholeCodePoint(t *testing.T) {
	d := docWith("a日b")
	pos := d.Backspace(Position{Row: 0, Col: 4})
	if pos.Col != 1 {
		t.Errorf("Expected cursor at 1, got %d", pos.Col)
	}
	if d.Row(0).String() != "ab" {
		t.Errorf("Expected %q, got %q", "ab", d.Row(0).String())
	}
}

func TestBackspace_PhantomRowIsNoOp(t *testing.T) {
	d := docWith("abc")
	pos := d.Backspace(Position{Row: 1, Col: 0})
	if pos != (Position{Row: 1, Col: 0}) || d.NumRows() != 1 {
		t.Errorf("Expected no-op on phantom row, got %+v rows %d", pos, d.NumRows())
	}
}

func TestNewline_SplitsAtCursor(t *testing.T) {
	d := docWith("hello world")
	pos := d.Newline(Position{Row: 0, Col: 5})

	if pos != (Position{Row: 1, Col: 0}) {
		t.Errorf("Expected cursor at start of new row, got %+v", pos)
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"hello", " world"}) {
		t.Errorf("Unexpected rows %q", got)
	}
}

func TestNewline_AtColumnZeroInsertsAbove(t *testing.T) {
	d := docWith("abc")
	pos := d.Newline(Position{Row: 0, Col: 0})
	if pos != (Position{Row: 1, Col: 0}) {
		t.Errorf("Expected cursor on the original row, got %+v", pos)
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"", "abc"}) {
		t.Errorf("Unexpected rows %q", got)
	}
}

func TestNewline_AtEndOfRow(t *testing.T) {
	d := docWith("abc")
	d.Newline(Position{Row: 0, Col: 3})
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"abc", ""}) {
		t.Errorf("Unexpected rows %q", got)
	}
}

func TestNewlineThenBackspace_RoundTrip(t *testing.T) {
	d := docWith("héllo")
	pos := d.Newline(Position{Row: 0, Col: 3})
	pos = d.Backspace(pos)
	if pos != (Position{Row: 0, Col: 3}) {
		t.Errorf("Expected cursor back at split point, got %+v", pos)
	}
	if d.Row(0).String() != "héllo" || d.NumRows() != 1 {
		t.Errorf("Expected original content, got %q", d.Lines())
	}
}

func TestInsertAt_MaterializesPhantomRow(t *testing.T) {
	d := New()
	pos := d.InsertAt(Position{0, 0}, 'x')
	if d.NumRows() != 1 || d.Row(0).String() != "x" {
		t.Errorf("Expected one row with x, got %q", d.Lines())
	}
	if pos != (Position{0, 1}) {
		t.Errorf("Expected cursor after x, got %+v", pos)
	}
}

func TestInsertAt_MultiByteSequence(t *testing.T) {
	d := docWith("ab")
	pos := Position{0, 1}
	for _, b := range []byte("é") {
		pos = d.InsertAt(pos, b)
	}
	if d.Row(0).String() != "aéb" || pos.Col != 3 {
		t.Errorf("Expected %q with cursor 3, got %q cursor %d", "aéb", d.Row(0).String(), pos.Col)
	}
}
