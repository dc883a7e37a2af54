package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/notification"
	"github.com/zhubert/msgcodec/internal/theme"
	"github.com/zhubert/msgcodec/internal/ui"
)

// ThemePollTickMsg triggers an OS appearance check
type ThemePollTickMsg time.Time

// ThemeDetectedMsg carries the result of an appearance check
type ThemeDetectedMsg struct {
	Mode theme.Mode
}

// ThemePollTick returns a command that sends a ThemePollTickMsg after interval
func ThemePollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ThemePollTickMsg(t)
	})
}

// checkTheme runs the detector off the event loop. It only returns a value;
// the model applies it in Update.
func checkTheme(detect theme.Detector) tea.Cmd {
	return func() tea.Msg {
		return ThemeDetectedMsg{Mode: detect(context.Background())}
	}
}

// handleThemePollTick starts a check and schedules the next tick. Polling
// stops when the theme is pinned by config.
func (m *Model) handleThemePollTick() tea.Cmd {
	if _, fixed := m.setting.Fixed(); fixed {
		return nil
	}
	return tea.Batch(checkTheme(m.detector), ThemePollTick(m.config.ThemePollInterval()))
}

// handleThemeDetected applies a detected mode. Rows are recolored only when
// the mode actually changed.
func (m *Model) handleThemeDetected(msg ThemeDetectedMsg) tea.Cmd {
	if _, fixed := m.setting.Fixed(); fixed {
		return nil
	}
	startup := !m.themeSeen
	m.themeSeen = true
	if msg.Mode == m.mode {
		return nil
	}
	m.applyMode(msg.Mode)
	// The startup check only sets the initial palette
	if startup || !m.config.GetNotify() {
		return nil
	}
	return notifyThemeChanged(msg.Mode)
}

// notifyThemeChanged delivers the desktop notification off the event loop.
func notifyThemeChanged(mode theme.Mode) tea.Cmd {
	return func() tea.Msg {
		// Failures are logged by the notification package
		_ = notification.ThemeChanged(mode.String())
		return nil
	}
}

// applyMode swaps the palette and recolors every row.
func (m *Model) applyMode(mode theme.Mode) {
	logger.WithComponent("theme-poller").Info("appearance changed", "from", m.mode.String(), "to", mode.String())
	m.mode = mode
	p := theme.PaletteFor(mode)
	m.styles = ui.NewStyles(p)
	m.rows.RecolorAll(p)
	m.header.SetTheme(mode.String(), string(m.setting))
}
