package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui48/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", width, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", width, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", width, g.ID, g.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tui48 play <id>' to play.")
}
