package engine

// Status is the lifecycle state of the current board.
type Status int

const (
	StatusIdle           Status = iota // no board dealt yet
	StatusPlaying                      // accepting taps
	StatusLevelComplete                // every card matched
	StatusMovesExhausted               // move budget spent with cards left
)

// String returns a stable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusLevelComplete:
		return "level_complete"
	case StatusMovesExhausted:
		return "moves_exhausted"
	default:
		return "unknown"
	}
}

// TapOutcome describes what a tap did.
type TapOutcome int

const (
	TapIgnored    TapOutcome = iota // tap had no effect
	TapSelected                     // first card of a pair turned up
	TapMatched                      // second card matched the first
	TapMismatched                   // second card differs; both stay up until hidden
)

// String returns a stable name for the outcome.
func (o TapOutcome) String() string {
	switch o {
	case TapIgnored:
		return "ignored"
	case TapSelected:
		return "selected"
	case TapMatched:
		return "matched"
	case TapMismatched:
		return "mismatched"
	default:
		return "unknown"
	}
}

// HideTicket identifies a mismatched pair waiting to be turned back down.
// It is bound to the board it was issued for.
type HideTicket struct {
	BoardID uint64
	First   int
	Second  int
}

// TapResult is returned by Session.Tap.
type TapResult struct {
	Outcome TapOutcome
	Status  Status
	// Hide is set for TapMismatched.
	Hide HideTicket
}

// Session is the match engine for one player: it owns the board, the
// pending selection, the matched cards and the level counters.
type Session struct {
	level    int
	score    int
	moves    int
	maxMoves int

	board     Board
	selection Selection
	matched   matchedSet

	boardID uint64
	status  Status
}

// NewSession returns an idle session. Install a board to start playing.
func NewSession() *Session {
	return &Session{}
}

// Install replaces the board and resets per-board counters. Any hide
// ticket issued for the previous board becomes stale.
func (s *Session) Install(level int, board Board, maxMoves int) {
	s.boardID++
	s.level = level
	s.board = board
	s.maxMoves = maxMoves
	s.score = 0
	s.moves = 0
	s.selection.Clear()
	s.matched = newMatchedSet(len(board))
	s.status = StatusPlaying
}

// Tap turns up the card at index. Taps are ignored while a prompt is
// pending, when two cards are already up, or when the card is selected or
// matched already.
func (s *Session) Tap(index int) TapResult {
	if s.status != StatusPlaying ||
		!s.board.Valid(index) ||
		s.selection.Full() ||
		s.selection.Contains(index) ||
		s.matched.has(index) {
		return TapResult{Outcome: TapIgnored, Status: s.status}
	}

	s.selection.Push(index)
	if !s.selection.Full() {
		return TapResult{Outcome: TapSelected, Status: s.status}
	}

	s.moves++
	first, second := s.selection.Pair()

	result := TapResult{Outcome: TapMismatched}
	if s.board[first] == s.board[second] {
		s.matched.addPair(first, second)
		s.score++
		s.selection.Clear()
		result.Outcome = TapMatched
	} else {
		result.Hide = HideTicket{BoardID: s.boardID, First: first, Second: second}
	}

	// Completion is checked before the move limit so a board cleared on
	// the last allowed move counts as cleared.
	switch {
	case s.matched.count == len(s.board):
		s.status = StatusLevelComplete
	case s.moves >= s.maxMoves:
		s.status = StatusMovesExhausted
	}

	result.Status = s.status
	return result
}

// Hide turns a mismatched pair back down. It reports false for tickets
// from an earlier board or for a selection that no longer holds the pair.
func (s *Session) Hide(t HideTicket) bool {
	if t.BoardID != s.boardID || !s.selection.Full() {
		return false
	}
	first, second := s.selection.Pair()
	if first != t.First || second != t.Second {
		return false
	}
	s.selection.Clear()
	return true
}

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Score returns the pairs matched on this board.
func (s *Session) Score() int { return s.score }

// Moves returns the resolved pairs on this board.
func (s *Session) Moves() int { return s.moves }

// MaxMoves returns the move budget of this board.
func (s *Session) MaxMoves() int { return s.maxMoves }

// Status returns the board status.
func (s *Session) Status() Status { return s.status }

// BoardID identifies the current board.
func (s *Session) BoardID() uint64 { return s.boardID }

// Board returns a copy of the board layout.
func (s *Session) Board() Board {
	out := make(Board, len(s.board))
	copy(out, s.board)
	return out
}

// Selected returns the pending selection in tap order.
func (s *Session) Selected() []int {
	return s.selection.Indices()
}

// IsMatched reports whether the card at index has been paired.
func (s *Session) IsMatched(index int) bool {
	return s.matched.has(index)
}

// MatchedCount returns how many cards are paired.
func (s *Session) MatchedCount() int {
	return s.matched.count
}
