package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultMovesPerPair is the move budget granted per pair on the board.
const DefaultMovesPerPair = 2.5

// Board is the face-down layout of one level. A card's index is its identity
// for the lifetime of the board; every symbol appears exactly twice.
type Board []Symbol

// Len returns the number of cards.
func (b Board) Len() int {
	return len(b)
}

// Pairs returns the number of pairs on the board.
func (b Board) Pairs() int {
	return len(b) / 2
}

// Valid reports whether index refers to a card on the board.
func (b Board) Valid(index int) bool {
	return index >= 0 && index < len(b)
}

// MaxMoves returns the move budget for a board with numPairs pairs.
func MaxMoves(numPairs int, movesPerPair float64) int {
	return int(math.Floor(float64(numPairs) * movesPerPair))
}

// Dealer deals boards from a palette using a seeded random source.
type Dealer struct {
	rng          *rand.Rand
	palette      Palette
	movesPerPair float64
}

// NewDealer creates a dealer. A non-positive movesPerPair falls back to
// DefaultMovesPerPair.
func NewDealer(palette Palette, movesPerPair float64, seed int64) *Dealer {
	if movesPerPair <= 0 {
		movesPerPair = DefaultMovesPerPair
	}
	return &Dealer{
		rng:          rand.New(rand.NewSource(seed)),
		palette:      palette,
		movesPerPair: movesPerPair,
	}
}

// Palette returns the palette boards are dealt from.
func (d *Dealer) Palette() Palette {
	return d.palette
}

// MaxLevel returns the highest level this dealer can serve.
func (d *Dealer) MaxLevel() int {
	return d.palette.MaxLevel()
}

// Deal produces a shuffled board for level and its move budget.
// Levels needing more pairs than the palette holds are rejected rather
// than dealt with repeated symbols.
func (d *Dealer) Deal(level int) (Board, int, error) {
	if level < 1 {
		return nil, 0, ErrInvalidLevel
	}
	numPairs := PairsForLevel(level)
	if numPairs > len(d.palette) {
		return nil, 0, fmt.Errorf("%w: level %d needs %d, palette has %d",
			ErrPaletteExhausted, level, numPairs, len(d.palette))
	}

	symbols := make([]Symbol, len(d.palette))
	copy(symbols, d.palette)
	d.shuffle(symbols)
	symbols = symbols[:numPairs]

	board := make(Board, 0, numPairs*2)
	board = append(board, symbols...)
	board = append(board, symbols...)
	d.shuffle(board)

	return board, MaxMoves(numPairs, d.movesPerPair), nil
}

// shuffle is an in-place Fisher-Yates shuffle.
func (d *Dealer) shuffle(s []Symbol) {
	d.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
