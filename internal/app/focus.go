package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/rows"
)

// moveFocus focuses t and schedules the debounce for the row that lost focus.
func (m *Model) moveFocus(t rows.FocusTarget) tea.Cmd {
	prev, hadFocus := m.rows.Current()
	if !m.rows.FocusIn(t) {
		logger.WithRow(t.RowID).Debug("focus target no longer exists", "part", t.Part.String())
		return nil
	}
	return m.focusChanged(prev, hadFocus)
}

// focusChanged reconciles input focus after the controller's current target
// may have moved away from prev.
func (m *Model) focusChanged(prev rows.FocusTarget, hadFocus bool) tea.Cmd {
	m.syncInputFocus()
	current, ok := m.rows.Current()
	if !hadFocus || (ok && current.RowID == prev.RowID) {
		return nil
	}
	return m.settleLater(prev.RowID)
}

// cycleFocus moves focus forward or backward through the tab order.
func (m *Model) cycleFocus(forward bool) tea.Cmd {
	current, ok := m.rows.Current()
	if !ok {
		order := m.rows.FocusOrder()
		if len(order) == 0 {
			return nil
		}
		return m.moveFocus(order[0])
	}

	var next rows.FocusTarget
	if forward {
		next, ok = m.rows.Next(current)
	} else {
		next, ok = m.rows.Prev(current)
	}
	if !ok {
		return nil
	}
	return tea.Batch(m.moveFocus(next), m.scrollToRowLater(next.RowID))
}

func (m *Model) settleLater(rowID string) tea.Cmd {
	return tea.Tick(m.config.FocusDebounce(), func(time.Time) tea.Msg {
		return FocusSettleMsg{RowID: rowID}
	})
}

func (m *Model) autoSizeLater(rowID string) tea.Cmd {
	return tea.Tick(m.config.ScrollDelay(), func(time.Time) tea.Msg {
		return AutoSizeMsg{RowID: rowID}
	})
}

func (m *Model) scrollToRowLater(rowID string) tea.Cmd {
	return tea.Tick(m.config.ScrollDelay(), func(time.Time) tea.Msg {
		return ScrollToRowMsg{RowID: rowID}
	})
}

func (m *Model) scrollToBottomLater() tea.Cmd {
	return tea.Tick(m.config.ScrollDelay(), func(time.Time) tea.Msg {
		return ScrollToBottomMsg{}
	})
}
