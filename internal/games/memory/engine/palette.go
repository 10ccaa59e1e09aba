// Package engine implements the memory-match rules with no terminal or
// storage dependencies: dealing boards, resolving pairs and deciding when a
// level is cleared or the move budget runs out.
package engine

import "errors"

// Symbol is the face of a card. Two cards match when their symbols are equal.
type Symbol string

// Palette is an ordered set of distinct symbols boards are dealt from.
type Palette []Symbol

var (
	// ErrPaletteTooSmall is returned for palettes that cannot form two different pairs.
	ErrPaletteTooSmall = errors.New("engine: palette needs at least 2 distinct symbols")
	// ErrPaletteExhausted is returned when a level needs more pairs than the palette holds.
	ErrPaletteExhausted = errors.New("engine: not enough distinct symbols for level")
	// ErrInvalidLevel is returned for levels below 1.
	ErrInvalidLevel = errors.New("engine: level must be at least 1")
)

// Palette names accepted by PaletteByName.
const (
	PaletteEmoji = "emoji"
	PaletteASCII = "ascii"
)

var emojiSymbols = []string{
	"😀", "😍", "🥳", "🤔", "😎", "🤩", "🤓", "😇", "🤠", "👽",
	"👻", "🤖", "🎃", "🦄", "🐶", "🐱", "🐼", "🦊", "🐸", "🦁",
	"🐯", "🐨", "🐰", "🦝", "🐮", "🐷", "🐙", "🐵", "🐔", "🐧",
}

var asciiSymbols = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// NewPalette builds a palette from raw symbols. Empty strings and repeated
// symbols are dropped, keeping the first occurrence.
func NewPalette(symbols []string) (Palette, error) {
	seen := make(map[string]bool, len(symbols))
	p := make(Palette, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		p = append(p, Symbol(s))
	}
	if len(p) < 2 {
		return nil, ErrPaletteTooSmall
	}
	return p, nil
}

// EmojiPalette returns the default 30-symbol emoji palette.
func EmojiPalette() Palette {
	p, _ := NewPalette(emojiSymbols)
	return p
}

// ASCIIPalette returns a palette of letters and digits for terminals
// without emoji fonts.
func ASCIIPalette() Palette {
	p, _ := NewPalette(asciiSymbols)
	return p
}

// PaletteByName returns a built-in palette. Unknown names yield false.
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case PaletteEmoji, "":
		return EmojiPalette(), true
	case PaletteASCII:
		return ASCIIPalette(), true
	default:
		return nil, false
	}
}

// PairsForLevel returns the number of pairs dealt at a level.
func PairsForLevel(level int) int {
	return level + 1
}

// MaxLevel returns the highest level the palette can deal without reusing symbols.
func (p Palette) MaxLevel() int {
	return len(p) - 1
}
