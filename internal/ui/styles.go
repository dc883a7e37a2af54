package ui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/msgcodec/internal/theme"
)

// Styles holds every lipgloss style derived from one palette. A new value is
// built whenever the theme mode changes.
type Styles struct {
	Palette theme.Palette

	// Header styles
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderInfo  lipgloss.Style

	// Footer styles
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style

	// Flash styles
	FlashError   lipgloss.Style
	FlashWarning lipgloss.Style
	FlashInfo    lipgloss.Style
	FlashSuccess lipgloss.Style

	// Row styles
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Empty         lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p theme.Palette) Styles {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(text).
			Background(lipgloss.Color(p.Focused)),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		HeaderInfo: lipgloss.NewStyle().
			Foreground(muted),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		FooterDesc: lipgloss.NewStyle().
			Foreground(muted),
		FooterSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Border)),

		FlashError: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Error)),
		FlashWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		FlashInfo: lipgloss.NewStyle().
			Foreground(accent),
		FlashSuccess: lipgloss.NewStyle().
			Foreground(accent),

		Button: lipgloss.NewStyle().
			Foreground(text).
			Align(lipgloss.Center),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Foreground(accent).
			Align(lipgloss.Center),
		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Row returns the style used to paint a row with background bg.
func (s Styles) Row(bg string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg))
}

// ApplyTextareaStyles paints a row's textarea with the row background so the
// input blends into the row instead of using the terminal default.
func (s Styles) ApplyTextareaStyles(ta *textarea.Model, background string) {
	styles := ta.Styles()

	bg := lipgloss.Color(background)
	baseStyle := lipgloss.NewStyle().Background(bg)
	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Palette.Text)).
		Background(bg)
	placeholderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Palette.Muted)).
		Background(bg)

	styles.Focused.Base = baseStyle
	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.CursorLine = textStyle
	styles.Focused.Prompt = textStyle

	styles.Blurred.Base = baseStyle
	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.CursorLine = textStyle
	styles.Blurred.Prompt = textStyle

	ta.SetStyles(styles)
}
