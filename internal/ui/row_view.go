package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/msgcodec/internal/rows"
)

// RowView renders one row: an auto-growing text input next to a column of
// Encode / Decode / Delete buttons.
type RowView struct {
	id         string
	input      textarea.Model
	width      int
	textHeight int
	background string
}

// NewRowView creates the view for row id with initial text.
func NewRowView(id, text string, width int) *RowView {
	ti := textarea.New()
	ti.Placeholder = RowPlaceholder
	ti.CharLimit = RowCharLimit
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.SetHeight(1)
	ti.SetValue(text)

	r := &RowView{
		id:         id,
		input:      ti,
		textHeight: 1,
	}
	r.SetWidth(width)
	return r
}

// ID returns the row this view renders.
func (r *RowView) ID() string {
	return r.id
}

// SetWidth sets the width of the text column.
func (r *RowView) SetWidth(width int) {
	r.width = max(width, MinTextWidth)
	r.input.SetWidth(r.width)
}

// AutoSize grows or shrinks the input to the number of display lines its
// content occupies. Reports whether the height changed.
func (r *RowView) AutoSize() bool {
	lines := DisplayLines(r.input.Value(), r.width)
	if lines == r.textHeight {
		return false
	}
	r.textHeight = lines
	r.input.SetHeight(lines)
	return true
}

// Height is the number of lines the row occupies, never less than the
// stacked button column.
func (r *RowView) Height() int {
	return max(r.textHeight, MinRowHeight)
}

// TextHeight is the current height of the text input.
func (r *RowView) TextHeight() int {
	return r.textHeight
}

// Focus gives keyboard input to the text input.
func (r *RowView) Focus() {
	r.input.Focus()
}

// Blur removes keyboard input from the text input.
func (r *RowView) Blur() {
	r.input.Blur()
}

// Focused reports whether the text input has keyboard focus.
func (r *RowView) Focused() bool {
	return r.input.Focused()
}

// Value returns the text input content.
func (r *RowView) Value() string {
	return r.input.Value()
}

// SetValue replaces the text input content.
func (r *RowView) SetValue(text string) {
	r.input.SetValue(text)
}

// Recolor repaints the input with the row background.
func (r *RowView) Recolor(s Styles, background string) {
	if background == r.background {
		return
	}
	r.background = background
	s.ApplyTextareaStyles(&r.input, background)
}

// Update forwards a message to the text input.
func (r *RowView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

// View renders the row. focused is the part holding focus when the current
// focus target is inside this row.
func (r *RowView) View(s Styles, row *rows.Row, focused rows.Part, hasFocus bool) string {
	r.Recolor(s, row.Background)

	height := r.Height()
	rowStyle := s.Row(row.Background)
	buttonWidth := ButtonWidth()

	text := rowStyle.Width(r.width).MaxWidth(r.width).Height(height).MaxHeight(height).Render(r.input.View())

	buttons := make([]string, 0, 3)
	for _, b := range []struct {
		part  rows.Part
		label string
	}{
		{rows.PartEncode, LabelEncode},
		{rows.PartDecode, LabelDecode},
		{rows.PartDelete, LabelDelete},
	} {
		style := s.Button
		if hasFocus && focused == b.part {
			style = s.ButtonFocused
		}
		buttons = append(buttons, style.Background(lipgloss.Color(row.Background)).Width(buttonWidth).Render(b.label))
	}
	column := rowStyle.Width(buttonWidth).Height(height).Render(strings.Join(buttons, "\n"))
	gap := rowStyle.Width(ColumnGap).Height(height).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, text, gap, column)
}
