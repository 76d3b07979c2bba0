package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "t2048.yaml"

// Source names where a configuration was loaded from.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// Load loads the 2048 configuration.
// Search order: customPath -> ~/.tui48/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file (or SourceEmbedded /
// SourceHardcoded) the configuration came from. Keys missing from a file
// keep their default values, and the file's difficulty preset is applied.
func LoadWithSource(customPath string) (GameConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", fileName)}
	if p := userConfigPath(fileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := parse(defaultGameYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultGameConfig(), SourceHardcoded, nil
}

func parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if cfg.Difficulty != "" && cfg.Difficulty != DifficultyFixed {
		ApplyPreset(&cfg, cfg.Difficulty)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui48", "configs", filename)
}
