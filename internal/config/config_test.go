package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui48/internal/engine"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "win:\n  tile: 512\ndifficulty: fixed\nspawn:\n  four_probability: 0.5\n")

	cfg, src, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, want %q", src, path)
	}
	if cfg.Win.Tile != 512 || cfg.Spawn.FourProbability != 0.5 {
		t.Errorf("unexpected config %+v", cfg)
	}
	// Keys absent from the file keep defaults
	if cfg.Animation != DefaultGameConfig().Animation || cfg.Win.BannerTicks != 120 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "spawn: [1, 2"},
		{"probability out of range", "difficulty: fixed\nspawn:\n  four_probability: 1.5\n"},
		{"win tile not a power of two", "win:\n  tile: 1000\n"},
		{"negative ticks", "animation:\n  slide_ticks: -1\n"},
		{"unknown preset", "difficulty: brutal\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) should fail", tt.content)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	_, src, err := LoadWithSource("")
	if err != nil || src != SourceEmbedded {
		t.Fatalf("source = %q, err = %v, want embedded", src, err)
	}

	local := filepath.Join("configs", fileName)
	writeFile(t, filepath.Join(work, local), "win:\n  tile: 256\n")
	cfg, src, _ := LoadWithSource("")
	if src != local || cfg.Win.Tile != 256 {
		t.Errorf("local config not used: src=%q cfg=%+v", src, cfg)
	}

	user := filepath.Join(home, ".tui48", "configs", fileName)
	writeFile(t, user, "win:\n  tile: 128\n")
	cfg, src, _ = LoadWithSource("")
	if src != user || cfg.Win.Tile != 128 {
		t.Errorf("user config should win over local: src=%q cfg=%+v", src, cfg)
	}

	// A broken user file falls through to the next candidate
	writeFile(t, user, "win: [")
	_, src, _ = LoadWithSource("")
	if src != local {
		t.Errorf("broken user config should fall through, src = %q", src)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.10},
		{DifficultyHard, 0.20},
		{DifficultyFixed, 0.33},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			cfg.Spawn.FourProbability = 0.33
			ApplyPreset(&cfg, tt.preset)
			if cfg.Spawn.FourProbability != tt.want {
				t.Errorf("FourProbability = %v, want %v", cfg.Spawn.FourProbability, tt.want)
			}
			if cfg.Difficulty != tt.preset {
				t.Errorf("Difficulty = %q, want %q", cfg.Difficulty, tt.preset)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Hard ")
	if err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("want ErrUnknownPreset, got %v", err)
	}
	if DifficultyHard.Label() != "Hard" || DifficultyPreset("").Label() != "Normal" {
		t.Error("unexpected labels")
	}
}

func TestRules(t *testing.T) {
	cfg := DefaultGameConfig()

	classic := cfg.Rules(false)
	if classic != engine.DefaultRules() {
		t.Errorf("classic rules = %+v, want %+v", classic, engine.DefaultRules())
	}
	endless := cfg.Rules(true)
	if endless.WinTile != 0 {
		t.Errorf("endless WinTile = %d, want 0", endless.WinTile)
	}
	if err := endless.Validate(); err != nil {
		t.Errorf("endless rules invalid: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyHard)
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
