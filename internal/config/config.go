// Package config provides YAML-based game configuration loading and
// difficulty presets for tui48.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui48/internal/engine"
)

// GameConfig contains all tunable parameters of the 2048 game.
type GameConfig struct {
	Spawn      SpawnConfig      `yaml:"spawn"`
	Win        WinConfig        `yaml:"win"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// SpawnConfig controls new tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// WinConfig controls the win condition and its banner.
type WinConfig struct {
	Tile        int `yaml:"tile"`
	BannerTicks int `yaml:"banner_ticks"`
}

// AnimationConfig holds animation phase durations in ticks.
// Zero disables a phase.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// Rules converts the configuration into engine rules. Endless games get a
// zero win tile, which disables the win check.
func (c GameConfig) Rules(endless bool) engine.Rules {
	r := engine.Rules{
		Size:            engine.DefaultSize,
		WinTile:         engine.Tile(c.Win.Tile),
		FourProbability: c.Spawn.FourProbability,
	}
	if endless {
		r.WinTile = 0
	}
	return r
}

// Validate reports whether the configuration can drive a game.
func (c GameConfig) Validate() error {
	if c.Win.Tile < 0 {
		return fmt.Errorf("config: win.tile %d is negative", c.Win.Tile)
	}
	if err := c.Rules(false).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 || c.Win.BannerTicks < 0 {
		return fmt.Errorf("config: animation and banner ticks must not be negative")
	}
	if c.Difficulty != "" && !c.Difficulty.Valid() {
		return fmt.Errorf("config: %w: %q", ErrUnknownPreset, c.Difficulty)
	}
	return nil
}

// Marshal renders the configuration back to YAML.
func (c GameConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
