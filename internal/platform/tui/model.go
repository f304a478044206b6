package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcschied/bumblebees/internal/config"
	"github.com/mcschied/bumblebees/internal/core"
	"github.com/mcschied/bumblebees/internal/sim"
	"github.com/mcschied/bumblebees/internal/storage"
)

// maxFrameDelta caps the simulation delta after a suspend or long stall so
// one tick never advances the world by seconds at once.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model for a game session.
type Model struct {
	world      *sim.World
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	lastTick   time.Time
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model running the given game tuning.
func NewModel(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		world:      sim.NewWorld(gameCfg),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// virtual coordinates, so only the projection target changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.world.State() == sim.StateGameOver {
		m.world.Reset()
		m.paused = false
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionPause) && m.world.State() == sim.StatePlaying {
		m.paused = !m.paused
	}

	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	in := sim.Input{
		Left:  m.inputFrame.Has(core.ActionMoveLeft),
		Right: m.inputFrame.Has(core.ActionMoveRight),
		Fire:  m.inputFrame.Has(core.ActionFire),
	}

	events := m.world.Tick(in, dt)

	// Save score on game over (once)
	for _, ev := range events {
		over, ok := ev.(sim.GameOverEvent)
		if !ok {
			continue
		}
		if !m.scoreSaved && over.Score > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveScore(over.Score, over.Wave)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	renderWorld(m.world, m.screen, m.paused)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
