package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui48/internal/games/t2048"
	"github.com/vovakirdan/tui48/internal/platform/tui"
	"github.com/vovakirdan/tui48/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing 2048 directly, skipping the menu.

Games:
  2048          - Classic, won by reaching the 2048 tile
  2048_endless  - No win tile, play until the board locks up

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  N                - New game
  ?                - Toggle full help
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5% of new tiles are 4s
  normal - 10% of new tiles are 4s
  hard   - 20% of new tiles are 4s
  fixed  - Keep four_probability from the config file

Examples:
  tui48 play
  tui48 play 2048_endless
  tui48 play --difficulty hard --seed 42
  tui48 play --config ./my-2048.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{t2048.IDClassic, t2048.IDEndless},
	RunE:      runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tui48 list' to see available games", gameID)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, s.store, s.logger, s.runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
