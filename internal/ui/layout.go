package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"

	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/rows"
)

// RowBox is where a row sits in the scroll content.
type RowBox struct {
	RowID  string
	Top    int
	Height int
}

// Bottom is the first line below the row.
func (b RowBox) Bottom() int {
	return b.Top + b.Height
}

// Layout records the position of every row in the rendered list, used for
// scroll-into-view and mouse hit testing.
type Layout struct {
	boxes     []RowBox
	textWidth int
	total     int
}

// Box returns the placement of row id.
func (l Layout) Box(id string) (RowBox, bool) {
	for _, b := range l.boxes {
		if b.RowID == id {
			return b, true
		}
	}
	return RowBox{}, false
}

// Boxes returns every row placement in list order.
func (l Layout) Boxes() []RowBox {
	return l.boxes
}

// TotalHeight is the number of lines in the scroll content.
func (l Layout) TotalHeight() int {
	return l.total
}

// HitTest maps a content-space cell to the focus target drawn there.
func (l Layout) HitTest(x, y int) (rows.FocusTarget, bool) {
	for _, b := range l.boxes {
		if y < b.Top || y >= b.Bottom() {
			continue
		}
		if x < l.textWidth {
			return rows.FocusTarget{RowID: b.RowID, Part: rows.PartText}, true
		}
		buttonX := l.textWidth + ColumnGap
		if x < buttonX || x >= buttonX+ButtonWidth() {
			return rows.FocusTarget{}, false
		}
		switch y - b.Top {
		case 0:
			return rows.FocusTarget{RowID: b.RowID, Part: rows.PartEncode}, true
		case 1:
			return rows.FocusTarget{RowID: b.RowID, Part: rows.PartDecode}, true
		case 2:
			return rows.FocusTarget{RowID: b.RowID, Part: rows.PartDelete}, true
		}
		return rows.FocusTarget{}, false
	}
	return rows.FocusTarget{}, false
}

// ScrollOffset returns the viewport offset that brings the bottom edge of
// row id (plus margin lines) to the bottom of a viewport of the given height.
// A row taller than the viewport is aligned to its top instead. Returns false
// when the row is unknown or the content already fits.
func (l Layout) ScrollOffset(id string, viewportHeight, margin int) (int, bool) {
	b, ok := l.Box(id)
	if !ok || viewportHeight <= 0 || l.total <= viewportHeight {
		return 0, false
	}
	offset := b.Bottom() + margin - viewportHeight
	if b.Height > viewportHeight {
		offset = b.Top
	}
	return min(max(offset, 0), l.total-viewportHeight), true
}

// RenderList renders rows top to bottom with their views and records the
// resulting layout. Rows without a view are skipped.
func RenderList(s Styles, items []*rows.Row, views map[string]*RowView, current rows.FocusTarget, hasFocus bool, textWidth int) (string, Layout) {
	layout := Layout{textWidth: textWidth}
	parts := make([]string, 0, len(items))
	line := 0

	for _, row := range items {
		view, ok := views[row.ID]
		if !ok {
			logger.WithRow(row.ID).Warn("no view for row")
			continue
		}
		if len(parts) > 0 {
			for range RowGap {
				parts = append(parts, "")
			}
			line += RowGap
		}
		focusedPart := rows.PartText
		rowHasFocus := hasFocus && current.RowID == row.ID
		if rowHasFocus {
			focusedPart = current.Part
		}
		rendered := view.View(s, row, focusedPart, rowHasFocus)
		parts = append(parts, rendered)
		layout.boxes = append(layout.boxes, RowBox{RowID: row.ID, Top: line, Height: view.Height()})
		line += view.Height()
	}

	layout.total = line
	return strings.Join(parts, "\n"), layout
}

// ScrollIntoView scrolls vp so that row id's bottom edge is visible.
func ScrollIntoView(vp *viewport.Model, l Layout, id string, margin int) bool {
	offset, ok := l.ScrollOffset(id, vp.Height(), margin)
	if !ok {
		return false
	}
	vp.SetYOffset(offset)
	return true
}
