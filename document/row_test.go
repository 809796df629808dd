package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/tin/parameter"
)

// expandTabs is an independent reference for the rendered form
func expandTabs(s string) string {
	var sb strings.Builder
	col := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			n := parameter.TabStop - col%parameter.TabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteByte(c)
		if !IsContinuation(c) {
			col++
		}
	}
	return sb.String()
}

func TestRow_TabAtLineStart(t *testing.T) {
	r := newRow([]byte("\t"))
	if got := string(r.Render()); got != strings.Repeat(" ", parameter.TabStop) {
		t.Errorf("Expected %d spaces, got %q", parameter.TabStop, got)
	}
	if r.Glyphs() != parameter.TabStop {
		t.Errorf("Expected %d glyphs, got %d", parameter.TabStop, r.Glyphs())
	}
}

func TestRow_TabMidLine(t *testing.T) {
	r := newRow([]byte("ab\tc"))
	want := "ab" + strings.Repeat(" ", parameter.TabStop-2) + "c"
	if got := string(r.Render()); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRow_TabAfterMultiByte(t *testing.T) {
	// 'é' is one glyph, so the tab fills up to the stop from column 1
	r := newRow([]byte("é\tx"))
	want := "é" + strings.Repeat(" ", parameter.TabStop-1) + "x"
	if got := string(r.Render()); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.Glyphs() != parameter.TabStop+1 {
		t.Errorf("Expected %d glyphs, got %d", parameter.TabStop+1, r.Glyphs())
	}
}

func TestRow_GlyphsSkipContinuationBytes(t *testing.T) {
	r := newRow([]byte("héllo"))
	if r.Len() != 6 {
		t.Errorf("Expected 6 raw bytes, got %d", r.Len())
	}
	if r.RenderLen() != 6 {
		t.Errorf("Expected 6 rendered bytes, got %d", r.RenderLen())
	}
	if r.Glyphs() != 5 {
		t.Errorf("Expected 5 glyphs, got %d", r.Glyphs())
	}
}

func TestRow_RenderTracksEveryMutation(t *testing.T) {
	r := newRow([]byte("a\tb"))
	check := func(step string) {
		t.Helper()
		if got, want := string(r.Render()), expandTabs(string(r.Chars())); got != want {
			t.Errorf("%s: render %q is not the expansion %q", step, got, want)
		}
	}

	check("new")
	r.insertByte(0, '\t')
	check("insert")
	r.deleteByte(2)
	check("delete")
	r.appendBytes([]byte("\té\t"))
	check("append")
	r.truncate(3)
	check("truncate")
}

func TestRow_InsertThenDeleteRestores(t *testing.T) {
	orig := "x\ty é"
	for at := 0; at <= len(orig); at++ {
		r := newRow([]byte(orig))
		before := append([]byte(nil), r.Render()...)

		r.insertByte(at, 'Z')
		r.deleteByte(at)

		if string(r.Chars()) != orig {
			t.Errorf("at %d: expected chars %q, got %q", at, orig, r.Chars())
		}
		if !bytes.Equal(r.Render(), before) {
			t.Errorf("at %d: expected render %q, got %q", at, before, r.Render())
		}
	}
}

func TestRow_InsertClampsColumn(t *testing.T) {
	r := newRow([]byte("ab"))
	r.insertByte(-3, '<')
	r.insertByte(100, '>')
	if got := r.String(); got != "<ab>" {
		t.Errorf("Expected %q, got %q", "<ab>", got)
	}
}

func TestRow_DeleteOutOfRange(t *testing.T) {
	r := newRow([]byte("ab"))
	if r.deleteByte(2) || r.deleteByte(-1) {
		t.Error("Expected out of range delete to fail")
	}
	if r.String() != "ab" {
		t.Errorf("Expected row unchanged, got %q", r.String())
	}
}
