package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui48/internal/games/t2048"
	"github.com/vovakirdan/tui48/internal/registry"
	"github.com/vovakirdan/tui48/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent bool
	flagScoresAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a mode",
	Long: `Display the best results and statistics for a mode.

Examples:
  tui48 scores
  tui48 scores 2048_endless --limit 20
  tui48 scores --recent
  tui48 scores --all
  tui48 scores 2048 --clear`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{t2048.IDClassic, t2048.IDEndless},
	RunE:      runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := t2048.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresAll {
		all, err := store.GetAllGamesStats()
		if err != nil {
			return err
		}
		printSummary(out, registry.List(), all)
		return nil
	}
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all results for %s.\n", game.Title())
		return nil
	}

	fetch := store.TopScores
	if flagScoresRecent {
		fetch = store.RecentResults
	}
	results, err := fetch(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	printScores(out, gameID, game.Title(), results, stats)
	return nil
}

func printScores(w io.Writer, gameID, title string, results []storage.Result, stats *storage.GameStats) {
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Games"
	}
	fmt.Fprintf(w, "%s - %s\n\n", heading, title)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tui48 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %-3s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Won", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %-3s  %s\n", "----", "-----", "--------", "-----", "---", "----")
	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %-6d  %-3s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Best tile: %d  Games: %d  Won: %d  Average: %.0f\n",
			stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

// printSummary prints one line per mode from the aggregated stats.
func printSummary(w io.Writer, games []registry.GameInfo, all map[string]*storage.GameStats) {
	fmt.Fprintf(w, "  %-16s  %-6s  %-4s  %-8s  %-9s  %s\n", "Mode", "Games", "Won", "Best", "Best Tile", "Last Played")
	fmt.Fprintf(w, "  %-16s  %-6s  %-4s  %-8s  %-9s  %s\n", "----", "-----", "---", "----", "---------", "-----------")
	for _, g := range games {
		s, ok := all[g.ID]
		if !ok || s.GamesCount == 0 {
			fmt.Fprintf(w, "  %-16s  %-6d  %-4s  %-8s  %-9s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(w, "  %-16s  %-6d  %-4d  %-8d  %-9d  %s\n",
			g.Title, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
