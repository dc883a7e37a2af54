package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width     int
	mode      string
	setting   string
	transform string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTheme sets the active mode and the configured setting (auto/light/dark).
func (h *Header) SetTheme(mode, setting string) {
	h.mode = mode
	h.setting = setting
}

// SetTransform sets the active transform name
func (h *Header) SetTransform(name string) {
	h.transform = name
}

// View renders the header
func (h *Header) View(s Styles) string {
	titleText := " msgcodec"
	var rightText string
	if h.transform != "" {
		rightText = h.transform
	}
	if h.mode != "" {
		theme := h.mode
		if h.setting != "" && h.setting != h.mode {
			theme += " (" + h.setting + ")"
		}
		if rightText != "" {
			rightText += " · "
		}
		rightText += theme
	}
	if rightText != "" {
		rightText += " "
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = ansi.Truncate(fullContent, h.width, "…")
	}

	return h.renderGradient(s, fullContent, len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient fades the background from the focused row color to the
// unfocused one. The first titleLen runes are bold in the accent color.
func (h *Header) renderGradient(s Styles, content string, titleLen int) string {
	if len(content) == 0 {
		return ""
	}

	p := s.Palette
	startR, startG, startB := parseHexColor(p.Focused)
	endR, endG, endB := parseHexColor(p.Unfocused)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := s.HeaderInfo
		if i < titleLen {
			style = s.HeaderTitle
		}
		style = style.Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb)))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
