package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/platform/tui"
	"github.com/vovakirdan/splt/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant from a menu",
	Long: `Start SPL-T in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for scores.
Leaving a game (Esc/B) returns to the menu.

Examples:
  splt menu
  splt menu --db ./scores.db`,
	Annotations: map[string]string{annotationTUI: ""},
	RunE:        runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}
			logger.Info("starting game", "game", result.GameID)
			if err := tui.Run(game, recorderOptions(cfg, store, logger), rc); err != nil {
				return err
			}
		}
	}
}
