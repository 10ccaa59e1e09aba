// Package config provides YAML-based configuration loading and
// difficulty presets for the memory game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Board        BoardConfig        `yaml:"board"`
	Timing       TimingConfig       `yaml:"timing"`
	Achievements AchievementsConfig `yaml:"achievements"`
}

// BoardConfig defines how boards are dealt.
type BoardConfig struct {
	Palette      string   `yaml:"palette"`        // "emoji" or "ascii"
	Symbols      []string `yaml:"symbols"`        // Overrides the named palette when non-empty
	MovesPerPair float64  `yaml:"moves_per_pair"` // maxMoves = floor(pairs * moves_per_pair)
}

// TimingConfig defines how long things stay on screen.
type TimingConfig struct {
	MismatchDelay time.Duration `yaml:"mismatch_delay"`
}

// AchievementsConfig defines the best-levels leaderboard.
type AchievementsConfig struct {
	Limit int    `yaml:"limit"`
	Key   string `yaml:"key"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Palette resolves the symbols cards are dealt from.
func (c MemoryConfig) Palette() (engine.Palette, error) {
	if len(c.Board.Symbols) > 0 {
		p, err := engine.NewPalette(c.Board.Symbols)
		if err != nil {
			return nil, fmt.Errorf("%w: board.symbols: %w", ErrInvalidConfig, err)
		}
		return p, nil
	}
	p, ok := engine.PaletteByName(c.Board.Palette)
	if !ok {
		return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidConfig, c.Board.Palette)
	}
	return p, nil
}

// Validate reports the first setting that would make the game unplayable.
func (c MemoryConfig) Validate() error {
	if c.Board.MovesPerPair < 1 {
		return fmt.Errorf("%w: board.moves_per_pair must be at least 1, got %v", ErrInvalidConfig, c.Board.MovesPerPair)
	}
	if c.Timing.MismatchDelay <= 0 {
		return fmt.Errorf("%w: timing.mismatch_delay must be positive, got %v", ErrInvalidConfig, c.Timing.MismatchDelay)
	}
	if c.Achievements.Limit <= 0 {
		return fmt.Errorf("%w: achievements.limit must be positive, got %d", ErrInvalidConfig, c.Achievements.Limit)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// MismatchTicks converts the mismatch delay to a tick count at the given rate.
// At least one tick is always returned.
func (c MemoryConfig) MismatchTicks(tickRate int) int {
	ticks := int(c.Timing.MismatchDelay.Seconds() * float64(tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
