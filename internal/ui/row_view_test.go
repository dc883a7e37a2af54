package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/msgcodec/internal/rows"
)

func TestNewRowView(t *testing.T) {
	v := NewRowView("row-1", "hello", 30)

	if v.ID() != "row-1" {
		t.Errorf("ID() = %q, want row-1", v.ID())
	}
	if v.Value() != "hello" {
		t.Errorf("Value() = %q, want hello", v.Value())
	}
	if v.Height() != MinRowHeight {
		t.Errorf("Height() = %d, want %d", v.Height(), MinRowHeight)
	}
	if v.Focused() {
		t.Error("new row view should not have keyboard focus")
	}
}

func TestRowView_AutoSize(t *testing.T) {
	v := NewRowView("row-1", "", 10)

	if v.AutoSize() {
		t.Error("AutoSize() on a single line should not change height")
	}

	v.SetValue("line one\nline two\nline three\nline four")
	if !v.AutoSize() {
		t.Fatal("AutoSize() should grow for four lines")
	}
	if v.TextHeight() != 4 {
		t.Errorf("TextHeight() = %d, want 4", v.TextHeight())
	}
	if v.Height() != 4 {
		t.Errorf("Height() = %d, want 4", v.Height())
	}

	v.SetValue("short")
	if !v.AutoSize() {
		t.Fatal("AutoSize() should shrink back")
	}
	if v.Height() != MinRowHeight {
		t.Errorf("Height() = %d, want %d", v.Height(), MinRowHeight)
	}
}

func TestRowView_SetWidthClamps(t *testing.T) {
	v := NewRowView("row-1", "", 2)
	if v.width != MinTextWidth {
		t.Errorf("width = %d, want %d", v.width, MinTextWidth)
	}
}

func TestRowView_FocusBlur(t *testing.T) {
	v := NewRowView("row-1", "", 20)

	v.Focus()
	if !v.Focused() {
		t.Error("Focus() should give the input focus")
	}
	v.Blur()
	if v.Focused() {
		t.Error("Blur() should remove focus")
	}
}

func TestRowView_View(t *testing.T) {
	s := testStyles()
	v := NewRowView("row-1", "hello", 20)
	row := &rows.Row{ID: "row-1", Text: "hello", Background: s.Palette.Unfocused}

	out := v.View(s, row, rows.PartDecode, true)
	plain := stripANSI(out)

	if got := strings.Count(out, "\n") + 1; got != MinRowHeight {
		t.Errorf("rendered %d lines, want %d", got, MinRowHeight)
	}
	lines := strings.Split(plain, "\n")
	for i, label := range []string{LabelEncode, LabelDecode, LabelDelete} {
		if !strings.Contains(lines[i], label) {
			t.Errorf("line %d = %q, want label %q", i, lines[i], label)
		}
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("first line should carry the text, got %q", lines[0])
	}
	if v.background != s.Palette.Unfocused {
		t.Error("View() should recolor the input with the row background")
	}
}
