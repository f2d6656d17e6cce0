// splt is a terminal rendition of the SPL-T split puzzle.
//
// Usage:
//
//	splt list                - List board variants
//	splt play [game]         - Play a variant (default: splt)
//	splt menu                - Pick a variant interactively
//	splt serve               - Start SSH server for remote play
//	splt scores [game]       - Show high scores and recent runs
//	splt replay              - Re-run a journal or a saved run and verify it
//	splt simulate            - Play many games with a random policy
//
// Global flags:
//
//	--config <path>     - Game config (YAML, or TOML by extension)
//	--db <path>         - Database path (default: ~/.splt/scores.db)
//	--fps <rate>        - Tick rate (default: 30)
//	--log-level <lvl>   - debug, info, warn or error
//	-v, --verbose       - Shorthand for --log-level debug
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/config"
	"github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/platform/tui"
	"github.com/vovakirdan/splt/internal/storage"
)

// annotationTUI marks commands that own the terminal; their logs go to a file.
const annotationTUI = "tui"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splt",
	Short: "SPL-T - split the board, one block at a time",
	Long: `SPL-T is a puzzle about splitting blocks. Every split alternates
between horizontal and vertical. Four equal blocks in a square start
counting down, explode at zero, and everything above falls into the gap.
The game ends when nothing can be split.

Available commands:
  list      - Show all board variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  replay    - Verify a journal or a saved run
  simulate  - Batch play with a random policy

Examples:
  splt play
  splt play --preset mini
  splt menu
  splt serve --ssh :2222
  splt replay --run 3f1c...
  splt simulate --games 1000 --workers 8`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.splt/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom splt.yaml or .toml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig resolves the game configuration and hands it to the game
// package so every variant created afterwards uses it.
func loadConfig() (config.SpltConfig, error) {
	cfg, err := config.LoadSplt(flagConfig)
	if err != nil {
		return cfg, err
	}
	splt.SetConfig(cfg)
	return cfg, nil
}

// openStore opens the scores database. Storage is optional: on failure a
// warning is logged and nil is returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// recorderOptions wires the store and, when enabled, the journal directory.
func recorderOptions(cfg config.SpltConfig, store *storage.Store, logger *log.Logger) tui.RecorderOptions {
	opts := tui.RecorderOptions{Store: store, Logger: logger}
	if cfg.Journal.Enabled {
		opts.JournalDir = cfg.JournalDir()
	}
	return opts
}
