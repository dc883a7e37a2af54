package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/ui"
)

// handleMouseClick focuses the control under a left click and activates it
// when it is a button. Coordinates are adjusted for the header and the list's
// scroll offset.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}
	y := msg.Y - ui.HeaderHeight
	if y < 0 || y >= m.list.Height() {
		return nil
	}

	target, ok := m.layout.HitTest(msg.X, y+m.list.YOffset())
	if !ok {
		return nil
	}

	cmd := m.moveFocus(target)
	if target.Part.IsButton() {
		return tea.Batch(cmd, m.activate(target))
	}
	return tea.Batch(cmd, m.scrollToRowLater(target.RowID))
}
