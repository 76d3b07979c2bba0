package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the configured spawn odds
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// Valid reports whether p is a known preset.
func (p DifficultyPreset) Valid() bool {
	for _, known := range Presets {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns the preset name for display.
func (p DifficultyPreset) Label() string {
	if p == "" {
		return "Normal"
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("config: %w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// FourProbabilityForPreset returns the 4-spawn chance for a preset.
// The second result is false for presets that keep the configured value.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return 0.10, true
	case DifficultyHard:
		return 0.20, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if p, ok := FourProbabilityForPreset(preset); ok {
		cfg.Spawn.FourProbability = p
	}
	cfg.Difficulty = preset
}
