package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridlock/internal/core"
	"github.com/vovakirdan/gridlock/internal/registry"
	"github.com/vovakirdan/gridlock/internal/storage"
)

// WorldProjector is implemented by games that can map a world position to the
// screen cell it is drawn in. The platform uses it to place effects where
// events happened; without it, events still update the HUD but draw nothing.
type WorldProjector interface {
	Project(x, z float64) (int, int)
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	effects     *EffectSet
	quitting    bool
	backToMenu  bool
	exitOnBack  bool // standalone runs have no menu to go back to
	resultSaved bool // one result row per finished session
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		effects:    NewEffectSet(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.game, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveResult(storage.OutcomeQuit, m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the mode menu from a finished or paused session.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.saveResult(storage.OutcomeQuit, m.gameState.Score)
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The projection depends on screen size, so a running session restarts
	// with the new dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.effects.Clear()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for the new session
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.effects.Clear()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.consumeEvents(result.Events)

	// Effects animate on the same clock as the simulation, through pause
	// and game over alike.
	m.effects.Tick()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// consumeEvents turns this tick's game events into effects and result rows.
func (m *Model) consumeEvents(events []core.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case core.CollisionEvent:
			if proj, ok := m.game.(WorldProjector); ok {
				x, y := proj.Project(e.X, e.Z)
				m.effects.SpawnCollision(x, y, e.Points)
			}
		case core.SessionEndEvent:
			m.saveResult(string(e.Outcome), e.FinalScore)
		}
	}
}

// saveResult writes one result row for the current session, best effort.
func (m *Model) saveResult(outcome string, score int) {
	if m.resultSaved || m.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, play continues without a score DB
	m.store.SaveResult(m.game.ID(), score, outcome)
	m.resultSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.effects.Draw(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Signals are clickable
	)

	_, err := p.Run()
	return err
}
