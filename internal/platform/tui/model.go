package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
	"github.com/vovakirdan/shield-runner/internal/games/runner"
	"github.com/vovakirdan/shield-runner/internal/registry"
)

// hudRows is the number of terminal rows below the playfield.
const hudRows = 2

// Options configures a Model.
type Options struct {
	Config config.RunnerConfig
	FPS    int
	Seed   int64 // 0 means seed from the clock
	Width  int   // Initial terminal size; replaced by the first resize
	Height int
	Audio  runner.Audio
	Prefs  runner.Prefs
	Clock  runner.Clock
	Logger *log.Logger
}

// Model is the Bubble Tea model for the runner.
// All session calls happen on the Bubble Tea update goroutine.
type Model struct {
	session *runner.Session
	ticker  *Ticker
	screen  *core.Screen
	canvas  *Canvas
	keys    KeyMap
	help    help.Model
	bar     progress.Model
	barOff  progress.Model
	skins   []registry.SkinInfo
	cfg     config.RunnerConfig
	log     *log.Logger

	width     int
	height    int
	cursor    int  // Menu and skin picker selection
	holding   bool // Shield key latched down
	mouseDown bool
	quitting  bool
}

// NewModel creates a model on the menu screen.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = rc.ScreenW, rc.ScreenH
	}
	if opts.FPS <= 0 {
		opts.FPS = rc.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Config
	ticker := NewTicker(opts.FPS)
	rows := max(opts.Height-hudRows, 1)
	screen := core.NewScreen(opts.Width, rows)
	canvas := NewCanvas(screen, cfg.Display.CellWidth, cfg.Display.CellHeight)
	viewW, viewH := canvas.WorldSize()

	session := runner.NewSession(runner.Options{
		Config:    cfg,
		Seed:      opts.Seed,
		ViewW:     viewW,
		ViewH:     viewH,
		Scheduler: ticker,
		Audio:     opts.Audio,
		Prefs:     opts.Prefs,
		Clock:     opts.Clock,
		Logger:    opts.Logger,
	})

	m := Model{
		session: session,
		ticker:  ticker,
		screen:  screen,
		canvas:  canvas,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithSolidFill("10"), progress.WithoutPercentage()),
		barOff:  progress.New(progress.WithSolidFill("240"), progress.WithoutPercentage()),
		skins:   registry.List(),
		cfg:     cfg,
		log:     opts.Logger,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Session returns the underlying session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Shield Runner")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.BlurMsg:
		m.releaseInput()
		m.session.Pause()

	case TickMsg:
		if m.ticker.Accept(msg) {
			m.session.Tick()
			m.syncInput()
		}
	}

	return m, tea.Batch(cmd, m.ticker.Cmd())
}

// resize fits the playfield to the terminal, leaving room for the HUD.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	rows := max(height-hudRows, 1)
	m.screen.Resize(width, rows)
	viewW, viewH := m.canvas.WorldSize()
	m.session.Resize(viewW, viewH)

	m.help.Width = width
	barW := core.Clamp(width/4, 10, 30)
	m.bar.Width = barW
	m.barOff.Width = barW
}

// handleKey processes keyboard input for the current screen.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.releaseInput()
		m.quitting = true
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Mute) {
		m.session.ToggleMute()
		return nil
	}

	switch m.session.Mode() {
	case runner.ModeMenu:
		return m.updateMenu(msg)
	case runner.ModeSkins:
		m.updateSkins(msg)
	case runner.ModePlaying:
		m.updatePlaying(msg)
	case runner.ModePaused:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.session.TogglePause()
		case key.Matches(msg, m.keys.Home):
			m.session.Home()
			m.cursor = 0
		}
	case runner.ModeGameOver:
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.session.Restart()
		case key.Matches(msg, m.keys.Home):
			m.session.Home()
			m.cursor = 0
		}
	}
	return nil
}

// updatePlaying maps run keys onto the input surface. A terminal reports
// no key releases, so jump is a press followed by an immediate release and
// the shield key latches: first press holds, second press lets go.
func (m *Model) updatePlaying(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.releaseInput()
		m.session.TogglePause()
	case key.Matches(msg, m.keys.Shield):
		if m.holding {
			m.holding = false
			m.session.EndInput()
			return
		}
		if !m.mouseDown {
			m.holding = true
			m.session.StartInput()
		}
	case key.Matches(msg, m.keys.Jump):
		if m.holding || m.mouseDown {
			return
		}
		m.session.StartInput()
		m.session.EndInput()
	}
}

// handleMouse maps the left button onto the input surface.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.mouseDown || m.holding {
			return
		}
		if m.session.Mode() != runner.ModePlaying {
			return
		}
		m.mouseDown = true
		m.session.StartInput()
	case tea.MouseActionRelease:
		if !m.mouseDown {
			return
		}
		m.mouseDown = false
		m.session.EndInput()
	}
}

// releaseInput lets go of any held input before the run is suspended.
func (m *Model) releaseInput() {
	if m.holding || m.mouseDown {
		m.session.EndInput()
	}
	m.holding = false
	m.mouseDown = false
}

// syncInput drops held input once the run has ended.
func (m *Model) syncInput() {
	if m.session.Mode() != runner.ModePlaying {
		m.holding = false
		m.mouseDown = false
	}
}

// View renders the current screen with the HUD and help bar below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.session.Mode() {
	case runner.ModeMenu:
		body = m.viewMenu()
	case runner.ModeSkins:
		body = m.viewSkins()
	default:
		body = m.viewPlayfield()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.viewHUD(),
		helpStyle.Render(m.help.View(m.keys.For(m.session.Mode(), m.session.World().ShieldUnlocked))),
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
