package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

type presetValues struct {
	movesPerPair  float64
	mismatchDelay time.Duration
}

var presets = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {movesPerPair: 3.0, mismatchDelay: 1500 * time.Millisecond},
	DifficultyNormal: {movesPerPair: 2.5, mismatchDelay: time.Second},
	DifficultyHard:   {movesPerPair: 2.0, mismatchDelay: 600 * time.Millisecond},
}

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	v, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Board.MovesPerPair = v.movesPerPair
	cfg.Timing.MismatchDelay = v.mismatchDelay
}
