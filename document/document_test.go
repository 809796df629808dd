package document

import (
	"reflect"
	"testing"
)

func docWith(lines ...string) *Document {
	d := New()
	for _, l := range lines {
		d.InsertRow(d.NumRows(), []byte(l))
	}
	d.dirty = 0
	return d
}

func TestDocument_InsertDeleteRow(t *testing.T) {
	d := New()
	if !d.InsertRow(0, []byte("b")) || !d.InsertRow(0, []byte("a")) || !d.InsertRow(2, []byte("c")) {
		t.Fatal("Expected inserts at valid indices to succeed")
	}
	if d.InsertRow(5, []byte("x")) || d.InsertRow(-1, []byte("x")) {
		t.Error("Expected inserts at invalid indices to fail")
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Unexpected rows %q", got)
	}

	if !d.DeleteRow(1) {
		t.Fatal("Expected delete to succeed")
	}
	if d.DeleteRow(2) || d.DeleteRow(-1) {
		t.Error("Expected delete out of range to fail")
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Unexpected rows %q", got)
	}
	if d.Dirty() != 4 {
		t.Errorf("Expected dirty 4, got %d", d.Dirty())
	}
}

func TestDocument_InsertRowCopiesInput(t *testing.T) {
	src := []byte("abc")
	d := New()
	d.InsertRow(0, src)
	src[0] = 'X'
	if d.Row(0).String() != "abc" {
		t.Errorf("Expected row independent of caller slice, got %q", d.Row(0).String())
	}
}

func TestDocument_CharOpsCountAsMutations(t *testing.T) {
	d := docWith("ab")
	d.InsertChar(0, 1, 'x')
	d.DeleteChar(0, 0)
	if d.DeleteChar(0, 10) {
		t.Error("Expected out of range delete to be a no-op")
	}
	if d.InsertChar(3, 0, 'x') {
		t.Error("Expected insert into missing row to fail")
	}
	if d.Row(0).String() != "xb" {
		t.Errorf("Expected %q, got %q", "xb", d.Row(0).String())
	}
	if d.Dirty() != 2 {
		t.Errorf("Expected dirty 2, got %d", d.Dirty())
	}
}

func TestDocument_RowLenOfPhantomRow(t *testing.T) {
	d := docWith("abc")
	if d.RowLen(0) != 3 || d.RowLen(1) != 0 {
		t.Errorf("Expected 3 and 0, got %d and %d", d.RowLen(0), d.RowLen(1))
	}
	if d.Row(1) != nil {
		t.Error("Expected nil phantom row")
	}
}
