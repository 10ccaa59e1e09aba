package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingRecorder struct {
	levels []int
}

func (r *recordingRecorder) Save(level int) []int {
	r.levels = append(r.levels, level)
	return r.levels
}

// solve taps every pair of the current board in order.
func solve(t *testing.T, c *Controller) {
	t.Helper()
	board := c.Session().Board()
	first := make(map[Symbol]int)
	for i, s := range board {
		if j, ok := first[s]; ok {
			c.Tap(j)
			c.Tap(i)
			continue
		}
		first[s] = i
	}
}

// mismatchPair returns two indices holding different symbols.
func mismatchPair(board Board) (int, int) {
	for i := 1; i < len(board); i++ {
		if board[i] != board[0] {
			return 0, i
		}
	}
	return 0, 0
}

func TestControllerAdvanceRecordsAchievement(t *testing.T) {
	rec := &recordingRecorder{}
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 3), rec)
	if err := c.Start(1); err != nil {
		t.Fatalf("Start(1) failed: %v", err)
	}

	solve(t, c)

	if c.Prompt() != PromptAdvance {
		t.Fatalf("prompt = %v, want advance", c.Prompt())
	}
	if diff := cmp.Diff([]int{1}, rec.levels); diff != "" {
		t.Errorf("recorded levels mismatch (-want +got):\n%s", diff)
	}

	// Board is frozen while the prompt is open.
	if r := c.Tap(0); r.Outcome != TapIgnored {
		t.Errorf("Tap during prompt = %v, want ignored", r.Outcome)
	}

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	s := c.Session()
	if s.Level() != 2 || s.Board().Len() != 6 || s.MaxMoves() != 7 {
		t.Errorf("after advance: level=%d len=%d maxMoves=%d, want 2/6/7",
			s.Level(), s.Board().Len(), s.MaxMoves())
	}
	if s.Score() != 0 || s.Moves() != 0 || c.Prompt() != PromptNone {
		t.Errorf("counters not reset: score=%d moves=%d prompt=%v", s.Score(), s.Moves(), c.Prompt())
	}
}

func TestControllerDeclineReplaysLevel(t *testing.T) {
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 5), nil)
	if err := c.Start(3); err != nil {
		t.Fatalf("Start(3) failed: %v", err)
	}
	solve(t, c)
	before := c.Session().BoardID()

	if err := c.Decline(); err != nil {
		t.Fatalf("Decline() failed: %v", err)
	}
	if c.Session().Level() != 3 {
		t.Errorf("level after decline = %d, want 3", c.Session().Level())
	}
	if c.Session().BoardID() == before {
		t.Error("decline should deal a fresh board")
	}
	if c.Session().MatchedCount() != 0 {
		t.Error("replayed board should start face down")
	}
}

func TestControllerMoveLimitResetsToLevelOne(t *testing.T) {
	rec := &recordingRecorder{}
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 11), rec)
	if err := c.Start(1); err != nil {
		t.Fatalf("Start(1) failed: %v", err)
	}
	// Jump to a later level to see the reset.
	solve(t, c)
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}

	a, b := mismatchPair(c.Session().Board())
	for i, n := 0, c.Session().MaxMoves(); i < n; i++ {
		c.Tap(a)
		res := c.Tap(b)
		c.Hide(res.Hide)
	}

	if c.Prompt() != PromptMovesExhausted {
		t.Fatalf("prompt = %v, want moves_exhausted", c.Prompt())
	}
	if diff := cmp.Diff([]int{1}, rec.levels); diff != "" {
		t.Errorf("exhaustion must not record achievements (-want +got):\n%s", diff)
	}

	if err := c.Acknowledge(); err != nil {
		t.Fatalf("Acknowledge() failed: %v", err)
	}
	if c.Session().Level() != 1 || c.Session().Board().Len() != 4 {
		t.Errorf("after acknowledge level=%d len=%d, want 1/4",
			c.Session().Level(), c.Session().Board().Len())
	}
}

func TestControllerFiveMovesOnFirstLevel(t *testing.T) {
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 2), nil)
	if err := c.Start(1); err != nil {
		t.Fatalf("Start(1) failed: %v", err)
	}
	if c.Session().MaxMoves() != 5 {
		t.Fatalf("maxMoves = %d, want 5", c.Session().MaxMoves())
	}

	a, b := mismatchPair(c.Session().Board())
	for i := 0; i < 5; i++ {
		if c.Prompt() != PromptNone {
			t.Fatalf("prompt raised early after %d moves", i)
		}
		c.Tap(a)
		c.Hide(c.Tap(b).Hide)
	}
	if c.Prompt() != PromptMovesExhausted {
		t.Fatalf("prompt = %v, want moves_exhausted", c.Prompt())
	}
	firstBoard := c.Session().BoardID()
	if err := c.Acknowledge(); err != nil {
		t.Fatalf("Acknowledge() failed: %v", err)
	}
	if c.Session().BoardID() == firstBoard {
		t.Error("acknowledge should regenerate the board")
	}
}

func TestControllerCampaignCleared(t *testing.T) {
	p, _ := NewPalette([]string{"x", "y", "z"})
	c := NewController(NewDealer(p, DefaultMovesPerPair, 1), nil)
	if err := c.Start(p.MaxLevel()); err != nil {
		t.Fatalf("Start(max) failed: %v", err)
	}
	solve(t, c)

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() past the palette should not fail: %v", err)
	}
	if c.Prompt() != PromptCampaignCleared {
		t.Fatalf("prompt = %v, want campaign_cleared", c.Prompt())
	}
	if err := c.Acknowledge(); err != nil {
		t.Fatalf("Acknowledge() failed: %v", err)
	}
	if c.Session().Level() != 1 {
		t.Errorf("level = %d, want 1", c.Session().Level())
	}
}

func TestControllerPromptAnswersOutOfTurnAreNoops(t *testing.T) {
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 8), nil)
	if err := c.Start(2); err != nil {
		t.Fatalf("Start(2) failed: %v", err)
	}
	id := c.Session().BoardID()

	_ = c.Advance()
	_ = c.Decline()
	_ = c.Acknowledge()

	if c.Session().BoardID() != id || c.Session().Level() != 2 {
		t.Error("answers without a pending prompt should not change the board")
	}

	if err := c.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if c.Session().Level() != 1 {
		t.Errorf("Restart() level = %d, want 1", c.Session().Level())
	}
}

func TestControllerStaleHideAfterRestart(t *testing.T) {
	c := NewController(NewDealer(EmojiPalette(), DefaultMovesPerPair, 4), nil)
	if err := c.Start(2); err != nil {
		t.Fatalf("Start(2) failed: %v", err)
	}
	a, b := mismatchPair(c.Session().Board())
	c.Tap(a)
	ticket := c.Tap(b).Hide

	if err := c.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	c.Tap(0)
	c.Tap(1)
	held := c.Session().Selected()

	if c.Hide(ticket) {
		t.Error("stale ticket should not hide cards on the new board")
	}
	if diff := cmp.Diff(held, c.Session().Selected()); diff != "" && len(held) == 2 {
		t.Errorf("selection changed by stale ticket (-want +got):\n%s", diff)
	}
}
