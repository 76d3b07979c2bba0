package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui48/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, after applying the difficulty
preset, together with the file it was loaded from.

Use --defaults to print the built-in file, a good starting point for
~/.tui48/configs/t2048.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	preset, err := resolvePreset(flagDifficulty, cfg)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
