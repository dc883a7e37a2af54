package app

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/msgcodec/internal/codec"
	"github.com/zhubert/msgcodec/internal/config"
	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/rows"
	"github.com/zhubert/msgcodec/internal/theme"
	"github.com/zhubert/msgcodec/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	list    viewport.Model
	styles  ui.Styles

	rows   *rows.Controller
	views  map[string]*ui.RowView
	layout ui.Layout
	codec  *codec.Service

	// Theme state
	detector theme.Detector
	setting  theme.Setting
	mode     theme.Mode

	// themeSeen is set once the first appearance check has reported
	themeSeen bool

	width  int
	height int
}

// AutoSizeMsg asks for a row's input height to be recomputed once it has
// been laid out.
type AutoSizeMsg struct {
	RowID string
}

// ScrollToRowMsg scrolls the list so the row's bottom edge is visible.
type ScrollToRowMsg struct {
	RowID string
}

// ScrollToBottomMsg scrolls the list to its end.
type ScrollToBottomMsg struct{}

// FocusSettleMsg fires after the focus debounce for a row that lost focus.
type FocusSettleMsg struct {
	RowID string
}

// ClipboardResultMsg reports the outcome of copying a row's text.
type ClipboardResultMsg struct {
	Err error
}

// New creates a new app model. A nil detector queries the OS.
func New(cfg *config.Config, version string, detector theme.Detector) (*Model, error) {
	svc, err := codec.NewService(cfg.GetTransform())
	if err != nil {
		return nil, err
	}
	setting, err := theme.ParseSetting(cfg.GetTheme())
	if err != nil {
		return nil, err
	}
	if detector == nil {
		detector = theme.Detect
	}

	mode := theme.Light
	if fixed, ok := setting.Fixed(); ok {
		mode = fixed
	}

	list := viewport.New()
	list.MouseWheelEnabled = true
	list.MouseWheelDelta = 3

	m := &Model{
		config:   cfg,
		version:  version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		list:     list,
		styles:   ui.NewStyles(theme.PaletteFor(mode)),
		rows:     rows.New(),
		views:    make(map[string]*ui.RowView),
		codec:    svc,
		detector: detector,
		setting:  setting,
		mode:     mode,
	}
	m.rows.RecolorAll(theme.PaletteFor(mode))
	m.header.SetTransform(svc.Transform().Name())
	m.header.SetTheme(mode.String(), string(setting))

	first := m.rows.Init()
	m.addView(first)
	m.syncInputFocus()

	logger.WithComponent("app").Info("model created",
		"version", version,
		"transform", svc.Transform().Name(),
		"theme", string(setting))
	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.autoSizeLater(m.rows.Rows()[0].ID)}
	if _, fixed := m.setting.Fixed(); !fixed {
		cmds = append(cmds, checkTheme(m.detector), ThemePollTick(m.config.ThemePollInterval()))
	}
	return tea.Batch(cmds...)
}

// Rows exposes the row controller for tests and the CLI.
func (m *Model) Rows() *rows.Controller {
	return m.rows
}

// Mode returns the active theme mode.
func (m *Model) Mode() theme.Mode {
	return m.mode
}

// addView creates the view for a newly inserted row.
func (m *Model) addView(r *rows.Row) *ui.RowView {
	textWidth, _ := ui.GetViewContext().Snapshot()
	v := ui.NewRowView(r.ID, r.Text, textWidth)
	m.views[r.ID] = v
	return v
}

// pruneViews drops views whose rows no longer exist and creates views for
// rows that have none.
func (m *Model) pruneViews() {
	live := make(map[string]bool, m.rows.Len())
	for _, r := range m.rows.Rows() {
		live[r.ID] = true
		if _, ok := m.views[r.ID]; !ok {
			m.addView(r)
		}
	}
	for id := range m.views {
		if !live[id] {
			delete(m.views, id)
		}
	}
}

// syncInputFocus gives keyboard focus to the textarea of the focused row when
// its text target is current, and blurs every other input.
func (m *Model) syncInputFocus() {
	current, ok := m.rows.Current()
	for id, v := range m.views {
		if ok && current.RowID == id && current.Part == rows.PartText {
			v.Focus()
		} else {
			v.Blur()
		}
	}
}
