package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/zhubert/msgcodec/internal/theme"
)

func TestRunThemeWith(t *testing.T) {
	tests := []struct {
		name     string
		setting  string
		detected theme.Mode
		want     string
	}{
		{"auto uses detector", "auto", theme.Dark, "dark (detected)\n"},
		{"empty is auto", "", theme.Light, "light (detected)\n"},
		{"pinned light ignores detector", "light", theme.Dark, "light (pinned)\n"},
		{"pinned dark", "dark", theme.Light, "dark (pinned)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runThemeWith(context.Background(), &out, tt.setting, theme.Fixed(tt.detected)); err != nil {
				t.Fatalf("runThemeWith() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunThemeWith_InvalidSetting(t *testing.T) {
	var out bytes.Buffer
	if err := runThemeWith(context.Background(), &out, "sepia", theme.Fixed(theme.Light)); err == nil {
		t.Error("expected error for unknown theme setting")
	}
}
