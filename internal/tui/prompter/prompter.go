package prompter

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/markprompt/markprompt/internal/document"
	"github.com/markprompt/markprompt/internal/layout"
	"github.com/markprompt/markprompt/internal/scroll"
	"github.com/markprompt/markprompt/internal/theme"
	"github.com/markprompt/markprompt/internal/ui"
	"github.com/markprompt/markprompt/internal/watch"
)

// tickInterval drives the redraw loop. The controller integrates real
// elapsed time, so the exact rate only affects smoothness, never speed.
const tickInterval = 50 * time.Millisecond

// TickMsg carries the wall-clock time of a frame tick.
type TickMsg time.Time

// ReloadMsg signals the watched file changed on disk.
type ReloadMsg struct{}

// Options configures a prompter model.
type Options struct {
	Path          string
	Blocks        []document.Block
	Controller    *scroll.Controller
	Store         *theme.Store
	Watcher       *watch.Watcher
	ResetOnReload bool // reset position to top when the file changes
}

// Model is the teleprompter TUI model. It owns the playback state and
// is the only writer to it; everything runs on the bubbletea loop.
type Model struct {
	path   string
	blocks []document.Block
	lay    layout.Result
	ctrl   *scroll.Controller
	store  *theme.Store
	styles *ui.Styles

	watcher       *watch.Watcher
	resetOnReload bool

	width  int
	height int

	lastTick time.Time

	pickingTheme bool
	themeCursor  int

	keyMap KeyMap
	notice string
}

// New creates a prompter model. The controller's settings are taken
// as-is so the caller can seed them from config and flags.
func New(opts Options) *Model {
	m := &Model{
		path:          opts.Path,
		blocks:        opts.Blocks,
		ctrl:          opts.Controller,
		store:         opts.Store,
		watcher:       opts.Watcher,
		resetOnReload: opts.ResetOnReload,
		keyMap:        DefaultKeyMap(),
		width:         80,
		height:        24,
	}
	if m.ctrl == nil {
		m.ctrl = scroll.NewController()
	}
	if m.store != nil {
		m.styles = ui.NewStyles(m.store.Selected())
	} else {
		m.styles = ui.DefaultStyles()
	}
	m.remeasure()
	return m
}

// Controller exposes the playback state. Check this after the TUI
// exits to persist the user's settings.
func (m *Model) Controller() *scroll.Controller { return m.ctrl }

// ThemeName returns the active theme's name.
func (m *Model) ThemeName() string {
	if m.store == nil {
		return ""
	}
	return m.store.SelectedName()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changes()
		return ReloadMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.remeasure()
		return m, nil

	case TickMsg:
		m.advance(time.Time(msg))
		return m, tick()

	case ReloadMsg:
		m.reload()
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil
	}

	return m, nil
}

// advance charges the elapsed wall-clock time since the previous tick
// to the scroll controller.
func (m *Model) advance(now time.Time) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return
	}
	elapsed := now.Sub(m.lastTick).Seconds()
	m.lastTick = now
	m.ctrl.Advance(elapsed, m.lay.HeadingOffsets, m.lay.ContentHeight)
}

// reload re-parses the document. Stale content stays up if the file
// became unreadable. Position is preserved (clamped) unless the caller
// asked for a reset on reload.
func (m *Model) reload() {
	blocks, err := document.Load(m.path)
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.blocks = blocks
	m.remeasure()
	if m.resetOnReload {
		m.ctrl.SetPosition(0, m.lay.ContentHeight)
	}
	m.notice = "reloaded"
}

func (m *Model) remeasure() {
	meas := layout.Measurer{Width: m.contentWidth(), FontSize: m.ctrl.FontSize()}
	m.lay = meas.Measure(m.blocks, m.styles.RenderBlock)
	m.ctrl.ClampPosition(m.lay.ContentHeight)
}

func (m *Model) contentWidth() int {
	w := m.width - 2 // leave a margin column each side
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pickingTheme {
		return m.handleThemeKey(msg)
	}

	m.notice = ""
	rowPx := m.ctrl.FontSize() * 1.5

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.TogglePlay):
		m.ctrl.TogglePlay()

	case key.Matches(msg, m.keyMap.Restart):
		m.ctrl.Restart()

	case key.Matches(msg, m.keyMap.SpeedUp):
		m.ctrl.AdjustSpeed(scroll.SpeedStep)

	case key.Matches(msg, m.keyMap.SpeedDown):
		m.ctrl.AdjustSpeed(-scroll.SpeedStep)

	case key.Matches(msg, m.keyMap.FontUp):
		m.ctrl.AdjustFontSize(1)
		m.remeasure()

	case key.Matches(msg, m.keyMap.FontDown):
		m.ctrl.AdjustFontSize(-1)
		m.remeasure()

	case key.Matches(msg, m.keyMap.HeadingPause):
		m.ctrl.SetPauseAtHeadings(!m.ctrl.PauseAtHeadings())

	case key.Matches(msg, m.keyMap.AutoRestart):
		m.ctrl.SetAutoRestart(!m.ctrl.AutoRestart())

	case key.Matches(msg, m.keyMap.NudgeUp):
		m.ctrl.SetPosition(m.ctrl.Position()-rowPx, m.lay.ContentHeight)

	case key.Matches(msg, m.keyMap.NudgeDown):
		m.ctrl.SetPosition(m.ctrl.Position()+rowPx, m.lay.ContentHeight)

	case key.Matches(msg, m.keyMap.GoToTop):
		m.ctrl.SetPosition(0, m.lay.ContentHeight)

	case key.Matches(msg, m.keyMap.GoToBottom):
		m.ctrl.SetPosition(m.lay.ContentHeight, m.lay.ContentHeight)

	case key.Matches(msg, m.keyMap.Themes):
		if m.store != nil {
			m.pickingTheme = true
			m.themeCursor = m.currentThemeIndex()
		}
	}

	return m, nil
}

func (m *Model) handleThemeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	themes := m.store.Themes()
	switch msg.String() {
	case "esc", "t", "q":
		m.pickingTheme = false
	case "k", "up":
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case "j", "down":
		if m.themeCursor < len(themes)-1 {
			m.themeCursor++
		}
	case "enter":
		m.pickingTheme = false
		name := themes[m.themeCursor].Name
		if err := m.store.Select(name); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.applyTheme()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) applyTheme() {
	m.styles = ui.NewStyles(m.store.Selected())
	m.remeasure()
}

func (m *Model) currentThemeIndex() int {
	for i, t := range m.store.Themes() {
		if t.Name == m.store.SelectedName() {
			return i
		}
	}
	return 0
}
