package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/codec"
	"github.com/zhubert/msgcodec/internal/keys"
	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/rows"
	"github.com/zhubert/msgcodec/internal/ui"
)

// Update handles messages. Every mutation of the row sequence and theme
// state happens here, on the event loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshList()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd

	case AutoSizeMsg:
		if v, ok := m.views[msg.RowID]; ok {
			v.AutoSize()
		}

	case ScrollToRowMsg:
		m.refreshList()
		ui.ScrollIntoView(&m.list, m.layout, msg.RowID, m.config.GetScrollMargin())

	case ScrollToBottomMsg:
		m.refreshList()
		m.list.GotoBottom()

	case FocusSettleMsg:
		m.rows.SettleFocus(msg.RowID)

	case ThemePollTickMsg:
		return m.handleThemePollTick()

	case ThemeDetectedMsg:
		return m.handleThemeDetected(msg)

	case ClipboardResultMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Warn("copy failed", "error", msg.Err)
			return m.ShowFlashError("Failed to copy to clipboard")
		}
		return m.ShowFlashSuccess("Copied to clipboard")

	case ui.FlashTickMsg:
		// Flash cleared, no need to continue ticking
		if m.footer.ClearIfExpired() {
			return nil
		}
		if m.footer.HasFlash() {
			return ui.FlashTick()
		}
	}
	return nil
}

// handleKeyPress dispatches global shortcuts, then hands remaining keys to the
// focused row's text input.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	current, hasFocus := m.rows.Current()

	switch key {
	case keys.CtrlC, keys.CtrlQ:
		return tea.Quit

	case keys.Tab:
		return m.cycleFocus(true)

	case keys.ShiftTab:
		return m.cycleFocus(false)

	case keys.CtrlE:
		if hasFocus {
			return m.transformRow(current.RowID, codec.ActionEncode)
		}
		return nil

	case keys.CtrlR:
		if hasFocus {
			return m.transformRow(current.RowID, codec.ActionDecode)
		}
		return nil

	case keys.CtrlK:
		if hasFocus {
			return m.deleteRow(current.RowID)
		}
		return nil

	case keys.CtrlN:
		return m.insertRow("", "")

	case keys.CtrlY:
		if hasFocus {
			return m.copyRow(current.RowID)
		}
		return nil

	case keys.PgUp, keys.PgDown:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd

	case keys.Enter, keys.Space:
		if hasFocus && current.Part.IsButton() {
			return m.activate(current)
		}
	}

	if !hasFocus || current.Part != rows.PartText {
		return nil
	}
	return m.editRow(current.RowID, msg)
}

// editRow forwards a key to the row's text input and mirrors the new content
// into the controller.
func (m *Model) editRow(rowID string, msg tea.Msg) tea.Cmd {
	v, ok := m.views[rowID]
	if !ok {
		return nil
	}
	cmd := v.Update(msg)
	m.rows.SetText(rowID, v.Value())
	if v.AutoSize() {
		return tea.Batch(cmd, m.scrollToRowLater(rowID))
	}
	return cmd
}
