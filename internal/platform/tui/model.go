package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/squirrel-run/internal/config"
	"github.com/vovakirdan/squirrel-run/internal/core"
	"github.com/vovakirdan/squirrel-run/internal/games/runner"
)

// Model is the Bubble Tea model for one runner session.
// The tick loop only runs while the game is Running.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	gen      int       // Current tick loop generation
	lastTick time.Time // Zero until the first tick of a loop
	quitting bool
}

// NewGame creates a runner seeded from seed, or from the clock when seed is 0.
func NewGame(cfg config.RunnerConfig, seed int64) *runner.Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return runner.New(cfg, rand.New(rand.NewSource(seed)))
}

// NewModel creates a Bubble Tea model driving the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// playRows leaves the last terminal row for the help line.
func playRows(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop if the game is already running.
func (m Model) Init() tea.Cmd {
	if m.game.Phase() == runner.PhaseRunning {
		return tickCmd(m.config.TickRate, m.gen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey applies input immediately; jumps do not wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if m.game.Handle(action) {
			m.gen++
			m.lastTick = time.Time{}
			return m, tickCmd(m.config.TickRate, m.gen)
		}

	case core.ActionReset:
		m.game.Handle(action)
		m.gen++ // Orphan the running loop

	case core.ActionJump:
		m.game.Handle(action)
	}

	return m, nil
}

// handleTick advances the game by the wall-clock time since the previous tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Phase() != runner.PhaseRunning {
		return m, nil
	}

	dt := m.config.FrameMs()
	if !m.lastTick.IsZero() {
		dt = float64(msg.Time.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = msg.Time

	if res := m.game.Tick(dt); res.GameOver != nil {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Snapshot().Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays the runner in the current terminal until the user quits.
func Run(cfg config.RunnerConfig, rc core.RuntimeConfig) error {
	model := NewModel(NewGame(cfg, rc.Seed), rc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
