package ui

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/viewport"

	"github.com/zhubert/msgcodec/internal/rows"
)

// testList builds n rows with views at the given text width.
func testList(t *testing.T, texts []string, textWidth int) (*rows.Controller, map[string]*RowView) {
	t.Helper()
	c := rows.New()
	c.Init()
	c.SetText(c.Rows()[0].ID, texts[0])
	for _, text := range texts[1:] {
		last := c.Rows()[c.Len()-1]
		c.InsertAfter(last.ID, text)
	}

	views := make(map[string]*RowView)
	for _, r := range c.Rows() {
		v := NewRowView(r.ID, r.Text, textWidth)
		v.AutoSize()
		views[r.ID] = v
	}
	return c, views
}

func TestRenderList_Layout(t *testing.T) {
	c, views := testList(t, []string{"one", "two", "three"}, 20)
	current, hasFocus := c.Current()

	content, layout := RenderList(testStyles(), c.Rows(), views, current, hasFocus, 20)

	boxes := layout.Boxes()
	if len(boxes) != 3 {
		t.Fatalf("len(Boxes()) = %d, want 3", len(boxes))
	}
	for i, b := range boxes {
		wantTop := i * (MinRowHeight + RowGap)
		if b.Top != wantTop {
			t.Errorf("box %d Top = %d, want %d", i, b.Top, wantTop)
		}
		if b.RowID != c.Rows()[i].ID {
			t.Errorf("box %d RowID out of order", i)
		}
	}

	wantTotal := 3*MinRowHeight + 2*RowGap
	if layout.TotalHeight() != wantTotal {
		t.Errorf("TotalHeight() = %d, want %d", layout.TotalHeight(), wantTotal)
	}
	if got := strings.Count(content, "\n") + 1; got != wantTotal {
		t.Errorf("rendered %d lines, want %d", got, wantTotal)
	}

	plain := stripANSI(content)
	for _, label := range []string{LabelEncode, LabelDecode, LabelDelete, "three"} {
		if !strings.Contains(plain, label) {
			t.Errorf("rendered list should contain %q", label)
		}
	}
}

func TestRenderList_SkipsRowsWithoutView(t *testing.T) {
	c, views := testList(t, []string{"one", "two"}, 20)
	delete(views, c.Rows()[0].ID)

	_, layout := RenderList(testStyles(), c.Rows(), views, rows.FocusTarget{}, false, 20)
	if len(layout.Boxes()) != 1 {
		t.Errorf("len(Boxes()) = %d, want 1", len(layout.Boxes()))
	}
	if _, ok := layout.Box(c.Rows()[0].ID); ok {
		t.Error("row without a view should not be laid out")
	}
}

func TestLayout_HitTest(t *testing.T) {
	c, views := testList(t, []string{"one", "two"}, 20)
	_, layout := RenderList(testStyles(), c.Rows(), views, rows.FocusTarget{}, false, 20)
	first, second := c.Rows()[0].ID, c.Rows()[1].ID
	buttonX := 20 + ColumnGap

	tests := []struct {
		name   string
		x, y   int
		want   rows.FocusTarget
		wantOK bool
	}{
		{"first text", 0, 0, rows.FocusTarget{RowID: first, Part: rows.PartText}, true},
		{"first text lower line", 5, 2, rows.FocusTarget{RowID: first, Part: rows.PartText}, true},
		{"first encode", buttonX, 0, rows.FocusTarget{RowID: first, Part: rows.PartEncode}, true},
		{"first decode", buttonX + 1, 1, rows.FocusTarget{RowID: first, Part: rows.PartDecode}, true},
		{"first delete", buttonX, 2, rows.FocusTarget{RowID: first, Part: rows.PartDelete}, true},
		{"gap column", 20, 0, rows.FocusTarget{}, false},
		{"gap row", 0, MinRowHeight, rows.FocusTarget{}, false},
		{"second encode", buttonX, MinRowHeight + RowGap, rows.FocusTarget{RowID: second, Part: rows.PartEncode}, true},
		{"past buttons", buttonX + ButtonWidth(), 0, rows.FocusTarget{}, false},
		{"below list", 0, 100, rows.FocusTarget{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HitTest(%d, %d) = %+v, %v; want %+v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLayout_ScrollOffset(t *testing.T) {
	layout := Layout{
		boxes: []RowBox{
			{RowID: "a", Top: 0, Height: 3},
			{RowID: "b", Top: 4, Height: 3},
			{RowID: "c", Top: 8, Height: 12},
		},
		textWidth: 20,
		total:     20,
	}

	tests := []struct {
		name   string
		id     string
		height int
		margin int
		want   int
		wantOK bool
	}{
		{"first row clamps to top", "a", 5, 1, 0, true},
		{"bottom edge aligned", "b", 5, 0, 2, true},
		{"margin adds a line", "b", 5, 1, 3, true},
		{"tall row aligns top", "c", 5, 1, 8, true},
		{"clamped to content end", "c", 15, 1, 5, true},
		{"content fits", "b", 20, 1, 0, false},
		{"unknown row", "zzz", 5, 1, 0, false},
		{"zero height", "a", 0, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.ScrollOffset(tt.id, tt.height, tt.margin)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ScrollOffset(%q, %d, %d) = %d, %v; want %d, %v", tt.id, tt.height, tt.margin, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScrollIntoView(t *testing.T) {
	c, views := testList(t, []string{"a", "b", "c", "d", "e"}, 20)
	content, layout := RenderList(testStyles(), c.Rows(), views, rows.FocusTarget{}, false, 20)

	vp := viewport.New()
	vp.SetWidth(40)
	vp.SetHeight(5)
	vp.SetContent(content)

	last := c.Rows()[c.Len()-1].ID
	if !ScrollIntoView(&vp, layout, last, 0) {
		t.Fatal("ScrollIntoView() should scroll when content overflows")
	}
	if !vp.AtBottom() {
		t.Error("viewport should be at bottom after scrolling to the last row")
	}

	if ScrollIntoView(&vp, layout, "missing", 0) {
		t.Error("ScrollIntoView() should ignore unknown rows")
	}
}
