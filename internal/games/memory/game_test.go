package memory

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

type fakeAchievements struct {
	levels []int
}

func (f *fakeAchievements) Save(level int) []int {
	f.levels = append(f.levels, level)
	slices.SortFunc(f.levels, func(a, b int) int { return b - a })
	return slices.Clone(f.levels)
}

func (f *fakeAchievements) Levels() []int {
	return slices.Clone(f.levels)
}

func newTestGame(t *testing.T, ach registry.Achievements) *Game {
	t.Helper()
	SetConfig(config.DefaultMemoryConfig())
	g := New()
	if ach != nil {
		g.TrackAchievements(ach)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// click taps card index through the mouse path.
func click(g *Game, index int) core.StepResult {
	r := g.layout.Cards[index]
	in := core.NewInputFrame()
	in.SetClick(r.X+1, r.Y)
	return g.Step(in)
}

// idle steps until the pending mismatch has been turned back down.
func idle(t *testing.T, g *Game) {
	t.Helper()
	for i, n := 0, 10*g.cfg.MismatchTicks(g.tickRate); i < n; i++ {
		if g.pending == nil {
			return
		}
		press(g)
	}
	t.Fatal("mismatched pair was never hidden")
}

func partnerOf(board engine.Board, i int) int {
	for j, s := range board {
		if j != i && s == board[i] {
			return j
		}
	}
	return -1
}

func strangerOf(board engine.Board, i int) int {
	for j, s := range board {
		if s != board[i] {
			return j
		}
	}
	return -1
}

// solve clears the current board and returns the events of the final step.
func solve(g *Game) []core.Event {
	board := g.controller.Session().Board()
	var last []core.Event
	for i := range board {
		if g.controller.Session().IsMatched(i) {
			continue
		}
		click(g, i)
		last = click(g, partnerOf(board, i)).Events
	}
	return last
}

func TestRegistered(t *testing.T) {
	for id, title := range map[string]string{"memory": "Memory", "memory_ascii": "Memory (ASCII)"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("Create(%q) = %s/%s", id, g.ID(), g.Title())
		}
		if _, ok := g.(registry.Tracker); !ok {
			t.Errorf("%s should record achievements", id)
		}
	}
}

func TestResetDealsLevelOne(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	if snap.Board.Level != 1 || len(snap.Board.Cards) != 4 || snap.Board.MaxMoves != 5 {
		t.Errorf("level 1 = level %d, %d cards, %d max moves; want 1, 4, 5",
			snap.Board.Level, len(snap.Board.Cards), snap.Board.MaxMoves)
	}
	if snap.TooSmall || snap.Compact {
		t.Errorf("80x24 should fit boxed cards: %+v", snap)
	}
	if g.State().Paused {
		t.Error("fresh game should not be paused")
	}
}

func TestASCIIMode(t *testing.T) {
	SetConfig(config.DefaultMemoryConfig())
	g := NewASCII()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	for _, s := range g.controller.Session().Board() {
		if core.TextWidth(string(s)) != 1 {
			t.Errorf("ascii card %q should be one column wide", s)
		}
	}
	if g.controller.MaxLevel() != 35 {
		t.Errorf("MaxLevel() = %d, want 35", g.controller.MaxLevel())
	}
}

func TestMismatchHidesAfterDelay(t *testing.T) {
	g := newTestGame(t, nil)
	board := g.controller.Session().Board()
	other := strangerOf(board, 0)

	click(g, 0)
	click(g, other)

	if !g.Snapshot().PendingHide {
		t.Fatal("mismatch should schedule a hide")
	}
	delay := g.cfg.MismatchTicks(g.tickRate)
	for i, n := 0, delay-2; i < n; i++ {
		press(g)
	}

	// Taps while the pair is face up are ignored.
	click(g, strangerOf(board, other))
	snap := g.Snapshot()
	if len(snap.Board.Selected) != 2 {
		t.Fatalf("pair hidden too early, selected = %v", snap.Board.Selected)
	}
	if snap.Board.Moves != 1 {
		t.Error("tap during the mismatch delay should not count as a move")
	}

	press(g)
	snap = g.Snapshot()
	if len(snap.Board.Selected) != 0 || snap.PendingHide {
		t.Errorf("pair should be hidden after %d ticks: %+v", delay, snap)
	}
}

func TestCursorFlip(t *testing.T) {
	g := newTestGame(t, nil)

	press(g, core.ActionRight)
	press(g, core.ActionFlip)

	snap := g.Snapshot()
	if snap.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", snap.Cursor)
	}
	if diff := cmp.Diff([]int{1}, snap.Board.Selected); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
	if snap.Board.Cards[1].Symbol == "" || snap.Board.Cards[0].Symbol != "" {
		t.Error("only the flipped card should show its symbol")
	}
}

func TestLevelCompleteAdvance(t *testing.T) {
	ach := &fakeAchievements{}
	g := newTestGame(t, ach)

	events := solve(g)
	want := []core.Event{{Kind: core.EventLevelCompleted, Level: 1, Score: 2, Moves: 2, MaxMoves: 5}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("completion events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, ach.Levels()); diff != "" {
		t.Errorf("achievements mismatch (-want +got):\n%s", diff)
	}
	if g.Snapshot().Prompt != engine.PromptAdvance || !g.State().Paused {
		t.Fatal("cleared board should wait on the advance prompt")
	}

	// Board input is ignored while the prompt is up.
	press(g, core.ActionFlip)
	if g.Snapshot().Board.Level != 1 {
		t.Error("flip should not answer the prompt")
	}

	press(g, core.ActionConfirm)
	snap := g.Snapshot()
	if snap.Board.Level != 2 || len(snap.Board.Cards) != 6 || snap.Board.MaxMoves != 7 {
		t.Errorf("after advance = level %d, %d cards, %d max moves; want 2, 6, 7",
			snap.Board.Level, len(snap.Board.Cards), snap.Board.MaxMoves)
	}
	if snap.Board.Score != 0 || snap.Board.Moves != 0 || snap.Prompt != engine.PromptNone {
		t.Errorf("counters should reset on advance: %+v", snap)
	}
}

func TestDeclineReplaysLevel(t *testing.T) {
	g := newTestGame(t, nil)
	solve(g)
	before := g.Snapshot().Board.BoardID

	press(g, core.ActionDecline)

	snap := g.Snapshot()
	if snap.Board.Level != 1 || snap.Board.BoardID == before {
		t.Errorf("decline should re-deal level 1, got level %d board %d", snap.Board.Level, snap.Board.BoardID)
	}
}

func TestMovesExhaustedResets(t *testing.T) {
	g := newTestGame(t, nil)
	board := g.controller.Session().Board()
	other := strangerOf(board, 0)

	var events []core.Event
	for i := 0; i < 5; i++ {
		click(g, 0)
		events = click(g, other).Events
		idle(t, g)
	}

	if len(events) != 1 || events[0].Kind != core.EventMovesExhausted || events[0].Moves != 5 {
		t.Fatalf("fifth mismatch events = %+v, want moves_exhausted at 5", events)
	}
	if g.Snapshot().Prompt != engine.PromptMovesExhausted {
		t.Fatal("exhausted board should wait on a prompt")
	}

	press(g, core.ActionConfirm)
	snap := g.Snapshot()
	if snap.Board.Level != 1 || snap.Board.Moves != 0 || snap.Prompt != engine.PromptNone {
		t.Errorf("acknowledge should restart at level 1: %+v", snap)
	}
}

func TestRestartCancelsPendingHide(t *testing.T) {
	g := newTestGame(t, nil)
	board := g.controller.Session().Board()
	click(g, 0)
	click(g, strangerOf(board, 0))

	press(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.PendingHide || snap.Board.Moves != 0 || len(snap.Board.Selected) != 0 {
		t.Errorf("restart should drop the pending hide: %+v", snap)
	}
}

func TestAchievementsOverlayBlocksBoard(t *testing.T) {
	g := newTestGame(t, &fakeAchievements{levels: []int{3}})

	press(g, core.ActionAchievements)
	press(g, core.ActionFlip)
	if snap := g.Snapshot(); !snap.ShowAchievements || len(snap.Board.Selected) != 0 {
		t.Errorf("overlay should block flips: %+v", snap)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Level 3") {
		t.Errorf("overlay should list level 3:\n%s", screen.String())
	}

	press(g, core.ActionBack)
	if g.Snapshot().ShowAchievements {
		t.Error("back should close the overlay")
	}
}

func TestPauseFreezesTimer(t *testing.T) {
	g := newTestGame(t, nil)
	click(g, 0)
	click(g, strangerOf(g.controller.Session().Board(), 0))

	press(g, core.ActionPause)
	for i, n := 0, 2*g.cfg.MismatchTicks(g.tickRate); i < n; i++ {
		press(g)
	}
	if !g.Snapshot().PendingHide {
		t.Error("hide should not fire while paused")
	}
}

func TestTooSmallWindow(t *testing.T) {
	SetConfig(config.DefaultMemoryConfig())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.Snapshot().TooSmall || !g.State().Paused {
		t.Fatal("10x5 should be too small")
	}
	press(g, core.ActionFlip)
	if g.Snapshot().Board.Moves != 0 || len(g.Snapshot().Board.Selected) != 0 {
		t.Error("input should be ignored while too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().TooSmall {
		t.Error("resize should recompute the layout")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, nil)
		press(g, core.ActionDown)
		press(g, core.ActionFlip)
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed diverged (-first +second):\n%s", diff)
	}
}

func TestRenderHUDAndCards(t *testing.T) {
	g := newTestGame(t, &fakeAchievements{levels: []int{4}})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Memory", "Level 1", "Moves 0/5", "Best 4", hiddenFace} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}
