// Package theme tracks the host's light/dark appearance and maps it to the
// row color palette.
package theme

import (
	"strings"

	"github.com/zhubert/msgcodec/internal/errors"
)

// Mode is the host appearance.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Setting is the configured theme policy.
type Setting string

const (
	// SettingAuto follows the OS appearance by polling.
	SettingAuto  Setting = "auto"
	SettingLight Setting = "light"
	SettingDark  Setting = "dark"
)

// ParseSetting parses a configured theme value. Empty means auto.
func ParseSetting(s string) (Setting, error) {
	switch Setting(strings.ToLower(strings.TrimSpace(s))) {
	case "", SettingAuto:
		return SettingAuto, nil
	case SettingLight:
		return SettingLight, nil
	case SettingDark:
		return SettingDark, nil
	}
	return "", errors.ThemeModeInvalid(s)
}

// Fixed reports the mode pinned by the setting, or false for auto.
func (s Setting) Fixed() (Mode, bool) {
	switch s {
	case SettingLight:
		return Light, true
	case SettingDark:
		return Dark, true
	}
	return Light, false
}

// Palette is the set of colors derived from a Mode.
type Palette struct {
	Mode Mode

	Unfocused string // Row background without focus
	Focused   string // Row background while any of its targets has focus
	Text      string
	Muted     string
	Accent    string // Focused control highlight
	Border    string
	Error     string
}

var palettes = map[Mode]Palette{
	Light: {
		Mode:      Light,
		Unfocused: "#ffffff",
		Focused:   "#e0e0e0",
		Text:      "#1f2937",
		Muted:     "#6b7280",
		Accent:    "#4f46e5",
		Border:    "#d1d5db",
		Error:     "#dc2626",
	},
	Dark: {
		Mode:      Dark,
		Unfocused: "#303030",
		Focused:   "#505050",
		Text:      "#f9fafb",
		Muted:     "#9ca3af",
		Accent:    "#a78bfa",
		Border:    "#4b5563",
		Error:     "#f87171",
	},
}

// PaletteFor returns the palette for m.
func PaletteFor(m Mode) Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Light]
}

// Background returns the row background for the given focus state.
func (p Palette) Background(focused bool) string {
	if focused {
		return p.Focused
	}
	return p.Unfocused
}
