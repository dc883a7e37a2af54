package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/msgcodec/internal/rows"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

func (t FlashType) icon() string {
	switch t {
	case FlashWarning:
		return "⚠"
	case FlashInfo:
		return "ℹ"
	case FlashSuccess:
		return "✓"
	default:
		return "✕"
	}
}

// FlashTickMsg drives flash message expiry
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a short delay
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient footer message
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) >= m.Duration
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	part         rows.Part // Part of the focused row
	hasFocus     bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "next"},
			{Key: "ctrl+e", Desc: "encode"},
			{Key: "ctrl+r", Desc: "decode"},
			{Key: "ctrl+k", Desc: "delete"},
			{Key: "ctrl+n", Desc: "new row"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(part rows.Part, hasFocus bool) {
	f.part = part
	f.hasFocus = hasFocus
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a message in place of the bindings for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage == nil || !f.flashMessage.IsExpired() {
		return false
	}
	f.flashMessage = nil
	return true
}

// View renders the footer
func (f *Footer) View(s Styles) string {
	if f.flashMessage != nil {
		style := s.FlashError
		switch f.flashMessage.Type {
		case FlashWarning:
			style = s.FlashWarning
		case FlashInfo:
			style = s.FlashInfo
		case FlashSuccess:
			style = s.FlashSuccess
		}
		content := style.Render(f.flashMessage.Type.icon() + " " + f.flashMessage.Text)
		return s.Footer.Width(f.width).Render(f.truncate(content))
	}

	var parts []string
	if f.hasFocus && f.part.IsButton() {
		key := s.FooterKey.Render("enter/space")
		desc := s.FooterDesc.Render(": " + f.part.String())
		parts = append(parts, key+desc)
	}
	for _, b := range f.bindings {
		key := s.FooterKey.Render(b.Key)
		desc := s.FooterDesc.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+s.FooterSep.Render("|")+"  ")
	return s.Footer.Width(f.width).Render(f.truncate(content))
}

// truncate keeps content on one line inside the footer padding
func (f *Footer) truncate(content string) string {
	if f.width <= 2 {
		return content
	}
	return ansi.Truncate(content, f.width-2, "…")
}
