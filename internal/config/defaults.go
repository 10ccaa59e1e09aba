package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: BoardConfig{
			Palette:      engine.PaletteEmoji,
			MovesPerPair: engine.DefaultMovesPerPair,
		},
		Timing: TimingConfig{
			MismatchDelay: time.Second,
		},
		Achievements: AchievementsConfig{
			Limit: 10,
			Key:   "bestAchievements",
		},
	}
}
