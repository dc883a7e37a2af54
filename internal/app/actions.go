package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/clipboard"
	"github.com/zhubert/msgcodec/internal/codec"
	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/rows"
)

// activate runs the action bound to a button target.
func (m *Model) activate(t rows.FocusTarget) tea.Cmd {
	switch t.Part {
	case rows.PartEncode:
		return m.transformRow(t.RowID, codec.ActionEncode)
	case rows.PartDecode:
		return m.transformRow(t.RowID, codec.ActionDecode)
	case rows.PartDelete:
		return m.deleteRow(t.RowID)
	}
	return nil
}

// transformRow applies action to the row's text and inserts the result as a
// new row directly below. Blank text is a silent no-op.
func (m *Model) transformRow(rowID string, action codec.Action) tea.Cmd {
	row, ok := m.rows.Get(rowID)
	if !ok {
		return nil
	}
	result, ok, err := m.codec.Apply(action, row.Text)
	if err != nil {
		return m.ShowFlashError(fmt.Sprintf("%s failed: %v", action, err))
	}
	if !ok {
		return nil
	}

	logger.WithRow(rowID).Debug("row transformed", "action", action.String(), "transform", m.codec.Transform().Name())
	return m.insertRow(rowID, result)
}

// insertRow inserts a row after afterID (or at the end) and focuses it.
func (m *Model) insertRow(afterID, text string) tea.Cmd {
	prev, hadFocus := m.rows.Current()
	r := m.rows.InsertAfter(afterID, text)
	m.addView(r)
	cmd := m.focusChanged(prev, hadFocus)

	return tea.Batch(cmd, m.autoSizeLater(r.ID), m.scrollToRowLater(r.ID))
}

// deleteRow removes a row and focuses its successor.
func (m *Model) deleteRow(rowID string) tea.Cmd {
	prev, hadFocus := m.rows.Current()
	if _, ok := m.rows.Delete(rowID); !ok {
		return nil
	}
	m.pruneViews()
	cmd := m.focusChanged(prev, hadFocus)

	return tea.Batch(cmd, m.scrollToBottomLater())
}

// copyRow copies the row's text to the system clipboard off the event loop.
func (m *Model) copyRow(rowID string) tea.Cmd {
	row, ok := m.rows.Get(rowID)
	if !ok || row.Text == "" {
		return nil
	}
	text := row.Text
	return func() tea.Msg {
		return ClipboardResultMsg{Err: clipboard.WriteText(text)}
	}
}
