package config

import (
	_ "embed"

	"github.com/vovakirdan/tui48/internal/engine"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded 2048 configuration, used when the
// embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourProbability: engine.DefaultFourProbability,
		},
		Win: WinConfig{
			Tile:        int(engine.DefaultWinTile),
			BannerTicks: 120, // 2 seconds at 60fps
		},
		Animation: AnimationConfig{
			SlideTicks: 8, // ~133ms at 60fps
			PopTicks:   6, // ~100ms at 60fps
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
