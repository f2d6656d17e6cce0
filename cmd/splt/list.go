package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered SPL-T variant with its board size.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, g := range games {
		size := "?"
		if game, err := registry.Create(g.ID); err == nil {
			if s, ok := game.(*splt.Game); ok {
				w, h := s.BoardSize()
				size = fmt.Sprintf("%dx%d", w, h)
			}
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, g.ID, size, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'splt play <id>' to play.")
	return nil
}
