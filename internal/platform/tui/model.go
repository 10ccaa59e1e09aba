package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/achievements"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Services are the dependencies shared by every screen of a session.
// Store may be nil when the database could not be opened.
type Services struct {
	Store        *storage.Store
	Achievements *achievements.Store
	Logger       *log.Logger
}

// withDefaults fills in an in-memory leaderboard and a silent logger.
func (s Services) withDefaults() Services {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Achievements == nil {
		var backend achievements.Backend
		if s.Store != nil {
			backend = s.Store
		}
		s.Achievements = achievements.New(backend, achievements.WithLogger(s.Logger))
		s.Achievements.Load()
	}
	return s
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	embedded   bool // Running inside a session; quit keys return to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	svc = svc.withDefaults()
	if t, ok := game.(registry.Tracker); ok {
		t.TrackAchievements(svc.Achievements)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		services:   svc,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.services.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can re-layout keep their board; others start over.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.recordEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordEvents stores finished boards in the run history.
func (m Model) recordEvents(events []core.Event) {
	for _, ev := range events {
		outcome := storage.OutcomeCleared
		if ev.Kind == core.EventMovesExhausted {
			outcome = storage.OutcomeExhausted
		}
		m.services.Logger.Info("board finished",
			"game", m.game.ID(),
			"level", ev.Level,
			"outcome", outcome,
			"moves", fmt.Sprintf("%d/%d", ev.Moves, ev.MaxMoves),
		)

		if m.services.Store == nil {
			continue
		}
		// Best-effort save, game continues regardless
		if _, err := m.services.Store.RecordRun(storage.RunRecord{
			GameID:   m.game.ID(),
			Level:    ev.Level,
			Score:    ev.Score,
			Moves:    ev.Moves,
			MaxMoves: ev.MaxMoves,
			Outcome:  outcome,
		}); err != nil {
			m.services.Logger.Error("cannot record run", "game", m.game.ID(), "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.services.Logger.Error("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".memory", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.services.Logger.Error("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.services.Logger.Error("cannot save screenshot", "error", err)
		return
	}
	m.services.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cards can be clicked
	)

	_, err := p.Run()
	return err
}
