// Package memory adapts the match engine to the platform's tick-driven
// game interface: cursor and mouse input, the mismatch timer, prompts
// and rendering.
package memory

import (
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Mode selects the card faces.
type Mode string

const (
	ModeEmoji Mode = "emoji"
	ModeASCII Mode = "ascii"
)

// Package-level config shared by every instance the registry creates.
var memoryConfig = config.DefaultMemoryConfig()

// SetConfig sets the configuration used by subsequent Reset calls.
func SetConfig(cfg config.MemoryConfig) {
	memoryConfig = cfg
}

// scheduledHide turns a mismatched pair back down at dueTick.
type scheduledHide struct {
	ticket  engine.HideTicket
	dueTick uint64
}

// Game implements the memory matching game.
type Game struct {
	mode         Mode
	cfg          config.MemoryConfig
	achievements registry.Achievements

	controller *engine.Controller
	tick       uint64
	tickRate   int

	cursor  int
	pending *scheduledHide
	layout  Layout

	screenW int
	screenH int

	paused           bool
	tooSmall         bool
	showAchievements bool
}

// New creates a memory game with emoji cards.
func New() *Game {
	return &Game{mode: ModeEmoji}
}

// NewASCII creates a memory game with letter and digit cards, for
// terminals that can't draw emoji.
func NewASCII() *Game {
	return &Game{mode: ModeASCII}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
	registry.Register("memory_ascii", func() registry.Game {
		return NewASCII()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeASCII {
		return "memory_ascii"
	}
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeASCII {
		return "Memory (ASCII)"
	}
	return "Memory"
}

// TrackAchievements attaches the leaderboard cleared levels are saved to.
func (g *Game) TrackAchievements(a registry.Achievements) {
	g.achievements = a
	if g.controller != nil {
		g.controller.SetRecorder(a)
	}
}

// Reset deals level 1 on a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = memoryConfig
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.showAchievements = false

	dealer := engine.NewDealer(g.palette(), g.cfg.Board.MovesPerPair, cfg.Seed)
	var recorder engine.AchievementRecorder
	if g.achievements != nil {
		recorder = g.achievements
	}
	g.controller = engine.NewController(dealer, recorder)
	g.restart()
}

// palette resolves the card faces for the mode. Invalid configuration
// falls back to the built-in palette.
func (g *Game) palette() engine.Palette {
	if g.mode == ModeASCII {
		return engine.ASCIIPalette()
	}
	p, err := g.cfg.Palette()
	if err != nil {
		return engine.EmojiPalette()
	}
	return p
}

func (g *Game) restart() {
	// Level 1 always fits a palette of at least two symbols.
	_ = g.controller.Restart()
	g.boardChanged()
}

// boardChanged runs after every re-deal: the pending hide belongs to the
// old board and the layout depends on the card count.
func (g *Game) boardChanged() {
	g.pending = nil
	g.cursor = 0
	g.relayout()
}

func (g *Game) relayout() {
	n := g.controller.Session().Board().Len()
	l, ok := ComputeLayout(n, g.screenW, g.screenH)
	g.layout = l
	g.tooSmall = !ok
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.controller != nil {
		g.relayout()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionAchievements) {
		g.showAchievements = !g.showAchievements
	}
	if g.showAchievements && in.Has(core.ActionBack) {
		g.showAchievements = false
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.fireHide()

	if in.Has(core.ActionRestart) {
		g.showAchievements = false
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.showAchievements {
		return core.StepResult{State: g.State()}
	}

	if g.controller.Prompt() != engine.PromptNone {
		g.answerPrompt(in)
		return core.StepResult{State: g.State()}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.cursor = g.layout.Move(g.cursor, a)
		}
	}

	var events []core.Event
	if in.Click.Valid {
		if idx := g.layout.HitTest(in.Click.X, in.Click.Y); idx >= 0 {
			g.cursor = idx
			events = g.tap(idx)
		}
	} else if in.Has(core.ActionFlip) {
		events = g.tap(g.cursor)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// fireHide turns the mismatched pair back down once its delay has passed.
func (g *Game) fireHide() {
	if g.pending == nil || g.tick < g.pending.dueTick {
		return
	}
	g.controller.Hide(g.pending.ticket)
	g.pending = nil
}

// tap flips a card and reports a finished board.
func (g *Game) tap(index int) []core.Event {
	res := g.controller.Tap(index)
	if res.Outcome == engine.TapMismatched {
		g.pending = &scheduledHide{
			ticket:  res.Hide,
			dueTick: g.tick + uint64(g.cfg.MismatchTicks(g.tickRate)),
		}
	}

	s := g.controller.Session()
	event := core.Event{
		Level:    s.Level(),
		Score:    s.Score(),
		Moves:    s.Moves(),
		MaxMoves: s.MaxMoves(),
	}
	switch {
	case res.Outcome == engine.TapIgnored:
		return nil
	case res.Status == engine.StatusLevelComplete:
		event.Kind = core.EventLevelCompleted
	case res.Status == engine.StatusMovesExhausted:
		event.Kind = core.EventMovesExhausted
	default:
		return nil
	}
	return []core.Event{event}
}

// answerPrompt resolves the pending prompt from input.
func (g *Game) answerPrompt(in core.InputFrame) {
	var err error
	switch g.controller.Prompt() {
	case engine.PromptAdvance:
		switch {
		case in.Has(core.ActionConfirm):
			err = g.controller.Advance()
		case in.Has(core.ActionDecline):
			err = g.controller.Decline()
		default:
			return
		}
		if g.controller.Prompt() == engine.PromptCampaignCleared {
			return
		}
	case engine.PromptMovesExhausted, engine.PromptCampaignCleared:
		if !in.Has(core.ActionConfirm) {
			return
		}
		err = g.controller.Acknowledge()
	default:
		return
	}

	if err != nil {
		g.restart()
		return
	}
	g.boardChanged()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.controller == nil {
		return core.GameState{}
	}
	s := g.controller.Session()
	return core.GameState{
		Score:  s.Score(),
		Level:  s.Level(),
		Paused: g.paused || g.tooSmall || g.controller.Prompt() != engine.PromptNone,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Click: Flip | Tab: Best | R: Level 1 | P: Pause | Q: Quit"
}
