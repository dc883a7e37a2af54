package app

import (
	"context"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/config"
	"github.com/zhubert/msgcodec/internal/keys"
	"github.com/zhubert/msgcodec/internal/rows"
	"github.com/zhubert/msgcodec/internal/theme"
)

// testConfig creates a default, file-less config for testing.
func testConfig() *config.Config {
	return config.Default()
}

// testModel creates a test Model with the given config and a detector that
// always reports light.
func testModel(cfg *config.Config) *Model {
	return testModelWithDetector(cfg, theme.Fixed(theme.Light))
}

// testModelWithDetector creates a test Model with a custom theme detector.
func testModelWithDetector(cfg *config.Config, detector theme.Detector) *Model {
	m, err := New(cfg, "0.0.0-test", detector)
	if err != nil {
		panic(err)
	}
	return m
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "ctrl+e", "shift+tab"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlQ:
		return tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}
	case keys.CtrlE:
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlK:
		return tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl}
	case keys.CtrlN:
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// send delivers an arbitrary message, as a fired tick would.
func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// texts returns the row texts in order.
func texts(m *Model) []string {
	out := make([]string, 0, m.rows.Len())
	for _, r := range m.rows.Rows() {
		out = append(out, r.Text)
	}
	return out
}

// current returns the focused target, failing loudly when focus is unset.
func current(m *Model) rows.FocusTarget {
	t, ok := m.rows.Current()
	if !ok {
		panic("no focus target")
	}
	return t
}

// switchDetector is a fake OS appearance that tests flip between polls.
type switchDetector struct {
	dark  atomic.Bool
	calls atomic.Int32
}

func (d *switchDetector) Detect(context.Context) theme.Mode {
	d.calls.Add(1)
	if d.dark.Load() {
		return theme.Dark
	}
	return theme.Light
}
