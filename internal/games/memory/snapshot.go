package memory

import "github.com/vovakirdan/tui-memory/internal/games/memory/engine"

// Snapshot captures the adapter state around the engine snapshot for
// determinism testing.
type Snapshot struct {
	Tick             uint64
	Mode             Mode
	Cursor           int
	Prompt           engine.Prompt
	PendingHide      bool
	Paused           bool
	TooSmall         bool
	ShowAchievements bool
	Compact          bool
	Board            engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:             g.tick,
		Mode:             g.mode,
		Cursor:           g.cursor,
		PendingHide:      g.pending != nil,
		Paused:           g.paused,
		TooSmall:         g.tooSmall,
		ShowAchievements: g.showAchievements,
		Compact:          g.layout.Compact,
	}
	if g.controller != nil {
		s.Prompt = g.controller.Prompt()
		s.Board = g.controller.Session().Snapshot()
	}
	return s
}
