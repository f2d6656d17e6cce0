package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/registry"
	"github.com/vovakirdan/splt/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRuns  bool
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a board variant",
	Long: `Display the top scores and statistics for a variant (default: splt).
With --runs, list the most recent finished runs and their ids instead;
those ids can be passed to 'splt replay --run'. With --all, summarize
every variant. --clear deletes the scores of one variant; saved runs stay.

Examples:
  splt scores
  splt scores splt_mini
  splt scores --runs
  splt scores --all
  splt scores splt_mini --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "List recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every variant")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the variant")
	scoresCmd.MarkFlagsMutuallyExclusive("runs", "all", "clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagScoresAll {
		if len(args) > 0 {
			return fmt.Errorf("--all takes no game argument")
		}
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		return printSummary(store)
	}

	gameID := splt.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'splt list' to see available boards)", gameID)
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

	switch {
	case flagScoresRuns:
		return printRuns(store, gameID, game.Title())
	case flagScoresClear:
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Info("scores cleared", "game", gameID, "count", n)
		fmt.Printf("Cleared %d scores of %s.\n", n, game.Title())
		return nil
	}
	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'splt play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-36s  %-6s  %-6s  %-6s  %s\n", "Run", "Score", "Moves", "Board", "Date")
	fmt.Printf("  %-36s  %-6s  %-6s  %-6s  %s\n", "---", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-6d  %-6d  %-6s  %s\n",
			r.ID, r.Score, r.Moves, fmt.Sprintf("%dx%d", r.Width, r.Height), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-6s  %-8s  %s\n", info.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n",
			info.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
