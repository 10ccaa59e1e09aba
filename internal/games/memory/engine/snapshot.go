package engine

// CardState is how a single card is shown.
type CardState int

const (
	CardHidden CardState = iota
	CardSelected
	CardMatched
)

// String returns a stable name for the card state.
func (c CardState) String() string {
	switch c {
	case CardHidden:
		return "hidden"
	case CardSelected:
		return "selected"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// FaceUp reports whether the card's symbol is visible.
func (c CardState) FaceUp() bool {
	return c != CardHidden
}

// CardView is the renderable form of a card. Symbol is empty while the
// card is face down.
type CardView struct {
	Index  int
	State  CardState
	Symbol Symbol
}

// Snapshot is a read-only copy of the session for rendering and tests.
type Snapshot struct {
	BoardID  uint64
	Level    int
	Score    int
	Moves    int
	MaxMoves int
	Status   Status
	Cards    []CardView
	Selected []int
	Matched  int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	cards := make([]CardView, len(s.board))
	for i, sym := range s.board {
		cv := CardView{Index: i}
		switch {
		case s.matched.has(i):
			cv.State = CardMatched
		case s.selection.Contains(i):
			cv.State = CardSelected
		}
		if cv.State.FaceUp() {
			cv.Symbol = sym
		}
		cards[i] = cv
	}

	return Snapshot{
		BoardID:  s.boardID,
		Level:    s.level,
		Score:    s.score,
		Moves:    s.moves,
		MaxMoves: s.maxMoves,
		Status:   s.status,
		Cards:    cards,
		Selected: s.selection.Indices(),
		Matched:  s.matched.count,
	}
}

// Remaining returns the number of cards not yet matched.
func (s Snapshot) Remaining() int {
	return len(s.Cards) - s.Matched
}
