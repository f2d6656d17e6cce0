package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/splt/internal/config"
	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/platform/tui"
	"github.com/vovakirdan/splt/internal/registry"
)

var flagPreset string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board variant",
	Long: `Start playing the given variant (default: splt, the configured board).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space       - Split the block under the cursor
  R                 - Restart
  Esc/B             - Leave
  Ctrl+S            - Save a screenshot to ~/.splt/screenshots
  Q/Ctrl+C          - Quit

Presets:
  mini     - 4x8 board (splt_mini)
  classic  - 8x16 board (splt)
  wide     - 16x16 board (splt_wide)

Examples:
  splt play
  splt play splt_mini
  splt play --preset wide
  splt play --config ./my-splt.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: ""},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: mini, classic, wide")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gameID, err := resolveGameID(args, flagPreset, &cfg)
	if err != nil {
		return err
	}
	splt.SetConfig(cfg)

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'splt list' to see available boards)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))
	return tui.Run(game, recorderOptions(cfg, store, logger), runtimeConfig())
}

// resolveGameID maps the positional game and the --preset flag to a
// registered id. The classic preset plays on the configured id with the
// board section overridden.
func resolveGameID(args []string, preset string, cfg *config.SpltConfig) (string, error) {
	gameID := splt.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if preset == "" {
		return gameID, nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("use either a game id or --preset, not both")
	}

	p, err := config.ParsePreset(preset)
	if err != nil {
		return "", err
	}
	if p == config.PresetClassic {
		config.ApplyPreset(cfg, p)
		return splt.GameID, nil
	}
	return splt.GameID + "_" + string(p), nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
