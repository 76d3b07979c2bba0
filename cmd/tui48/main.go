// tui48 is the 2048 sliding tile puzzle for the terminal.
//
// Usage:
//
//	tui48 play [game]        - Play classic 2048 (or 2048_endless)
//	tui48 menu               - Pick mode and difficulty interactively
//	tui48 scores [game]      - Show the results log for a mode
//	tui48 list               - List available modes
//	tui48 config             - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.tui48/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// TUI48_DB, TUI48_LOG and TUI48_SEED, from the environment or a .env
// file in the working directory, replace the defaults of --db, --log
// and --seed.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Register the game modes
	_ "github.com/vovakirdan/tui48/internal/games/t2048"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

// envDefaults maps persistent flags to the variables that can set them.
var envDefaults = map[string]string{
	"db":   "TUI48_DB",
	"log":  "TUI48_LOG",
	"seed": "TUI48_SEED",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui48",
	Short: "2048 in your terminal",
	Long: `tui48 is the 2048 sliding tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge
and add their value to your score. Reach 2048 to win, or play endless
mode for the highest tile you can build.

Available commands:
  play     - Start a game directly
  menu     - Interactive mode and difficulty picker
  scores   - View the results log
  list     - Show available modes
  config   - Print the effective configuration

Examples:
  tui48 play
  tui48 play 2048_endless --difficulty hard
  tui48 menu --fps 30
  tui48 scores 2048`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnvDefaults,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.tui48/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logs)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults fills flags that were not given on the command line
// from their environment variables.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env, ok := envDefaults[f.Name]
		if !ok || f.Changed || err != nil {
			return
		}
		if v, set := os.LookupEnv(env); set && v != "" {
			if setErr := f.Value.Set(v); setErr != nil {
				err = fmt.Errorf("invalid %s=%q: %w", env, v, setErr)
			}
		}
	})
	return err
}
