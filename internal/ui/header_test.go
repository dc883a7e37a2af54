package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/msgcodec/internal/theme"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func testStyles() Styles {
	return NewStyles(theme.PaletteFor(theme.Light))
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.mode != "" || header.transform != "" {
		t.Error("Expected empty header state initially")
	}
}

func TestHeader_View_Title(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)

	view := stripANSI(header.View(testStyles()))
	if !strings.Contains(view, "msgcodec") {
		t.Errorf("Header should contain title, got %q", view)
	}
	if w := ansi.StringWidth(view); w != 60 {
		t.Errorf("Header width = %d, want 60", w)
	}
}

func TestHeader_View_ThemeAndTransform(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		setting   string
		transform string
		want      []string
		notWant   []string
	}{
		{
			name:      "auto shows setting",
			mode:      "dark",
			setting:   "auto",
			transform: "reverse",
			want:      []string{"reverse", "dark (auto)"},
		},
		{
			name:      "fixed setting not repeated",
			mode:      "light",
			setting:   "light",
			transform: "rot13",
			want:      []string{"rot13", "light"},
			notWant:   []string{"(light)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewHeader()
			header.SetWidth(80)
			header.SetTheme(tt.mode, tt.setting)
			header.SetTransform(tt.transform)

			view := stripANSI(header.View(testStyles()))
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("Header should contain %q, got %q", w, view)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("Header should not contain %q, got %q", w, view)
				}
			}
		})
	}
}

func TestHeader_View_Truncates(t *testing.T) {
	header := NewHeader()
	header.SetWidth(12)
	header.SetTheme("dark", "auto")
	header.SetTransform("base64")

	view := stripANSI(header.View(testStyles()))
	if w := ansi.StringWidth(view); w > 12 {
		t.Errorf("Header width = %d, want <= 12 (%q)", w, view)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#e0e0e0")
	if r != 0xe0 || g != 0xe0 || b != 0xe0 {
		t.Errorf("parseHexColor() = %d,%d,%d", r, g, b)
	}

	r, g, b = parseHexColor("bogus")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("parseHexColor(bogus) = %d,%d,%d, want zeros", r, g, b)
	}
}
