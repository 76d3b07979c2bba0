package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui48/internal/platform/tui"
	"github.com/vovakirdan/tui48/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start tui48 in interactive menu mode.

Choose Classic or Endless, then a difficulty. After a game ends you
return to the menu. The High Scores entry (or Tab) opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Esc          - Back
  Tab          - High scores
  Q            - Quit

Examples:
  tui48 menu
  tui48 menu --fps 30
  tui48 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.runtime
	for {
		res, err := tui.RunMenu(s.store, cfg, s.preset)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := s.usePreset(res.Difficulty); err != nil {
			return err
		}
		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}

		// Every game from the menu gets a new seed unless one was fixed.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, s.store, s.logger, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
