package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/msgcodec/internal/rows"
	"github.com/zhubert/msgcodec/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(m.styles),
		m.list.View(),
		m.footer.View(m.styles),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	current, ok := m.rows.Current()
	part := rows.PartText
	if ok {
		part = current.Part
	}
	m.footer.SetContext(part, ok)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetWidth(ctx.TerminalWidth)
	m.list.SetHeight(ctx.ContentHeight)

	for _, v := range m.views {
		v.SetWidth(ctx.TextWidth)
		v.AutoSize()
	}
}

// refreshList re-renders the row list into the viewport and records its
// layout for scrolling and hit testing.
func (m *Model) refreshList() {
	current, hasFocus := m.rows.Current()
	textWidth, _ := ui.GetViewContext().Snapshot()
	content, layout := ui.RenderList(m.styles, m.rows.Rows(), m.views, current, hasFocus, textWidth)
	m.layout = layout
	m.list.SetContent(content)
}
