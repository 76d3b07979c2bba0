package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui48/internal/config"
	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/games/t2048"
	"github.com/vovakirdan/tui48/internal/storage"
)

// session holds what every interactive command needs: the runtime
// config, the results store, the logger and the loaded game config.
type session struct {
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	logFile io.Closer
	game    config.GameConfig
	preset  config.DifficultyPreset
}

func newSession() (*session, error) {
	logger, logFile, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return nil, err
	}

	gameCfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}
	preset, err := resolvePreset(flagDifficulty, gameCfg)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)

	s := &session{
		runtime: runtimeConfig(),
		logger:  logger,
		logFile: logFile,
		game:    gameCfg,
		preset:  preset,
	}
	if err := s.usePreset(preset); err != nil {
		s.Close()
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without a results log.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
	} else {
		s.store = store
	}
	return s, nil
}

// usePreset configures games created afterwards with the given preset.
func (s *session) usePreset(preset config.DifficultyPreset) error {
	cfg := s.game
	config.ApplyPreset(&cfg, preset)
	if err := t2048.SetConfig(cfg); err != nil {
		return err
	}
	s.preset = preset
	return nil
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close scores database", "err", err)
		}
	}
	closeQuietly(s.logFile)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// resolvePreset picks the --difficulty flag, then the config file's
// preset, then normal.
func resolvePreset(flag string, cfg config.GameConfig) (config.DifficultyPreset, error) {
	if flag != "" {
		return config.ParsePreset(flag)
	}
	if cfg.Difficulty != "" {
		return cfg.Difficulty, nil
	}
	return config.DifficultyNormal, nil
}

// newLogger returns a logger writing to path, or a discarding logger
// when path is empty. The TUI owns the terminal, so logs never go to it.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	path = expandHome(path)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui48",
		Level:           lvl,
	})
	return logger, f, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// runtimeConfig builds the runtime config from the terminal size and
// the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
