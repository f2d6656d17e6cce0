package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/splt/internal/config"
	"github.com/vovakirdan/splt/internal/games/splt/env"
	"github.com/vovakirdan/splt/internal/storage"
)

// Random policies for simulate.
const (
	policyLegal = "legal" // pick among splittable blocks
	policyCells = "cells" // pick any cell, rejected picks included
)

var (
	flagSimGames    int
	flagSimWorkers  int
	flagSimSeed     uint64
	flagSimMaxMoves int
	flagSimPolicy   string
	flagSimPreset   string
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games with a random policy",
	Long: `Play a batch of games with a random policy and print aggregate
statistics. Each worker owns its own boards; results are deterministic for
a given --seed regardless of --workers.

Policies:
  legal  - choose uniformly among blocks that can be split
  cells  - choose uniformly among all cells; impossible picks are counted
           as rejections and cost a step

Examples:
  splt simulate --games 1000
  splt simulate --games 200 --policy cells --preset mini --seed 7
  splt simulate --games 50 --save`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimWorkers, "workers", 4, "Number of concurrent workers")
	simulateCmd.Flags().Uint64Var(&flagSimSeed, "seed", 1, "Base random seed")
	simulateCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 10000, "Step limit per game")
	simulateCmd.Flags().StringVar(&flagSimPolicy, "policy", policyLegal, "Policy: legal or cells")
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", "", "Board preset instead of the configured board")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record every game as a run in the database")
}

// simOptions configures a batch.
type simOptions struct {
	Games    int
	Workers  int
	Seed     uint64
	MaxMoves int
	Policy   string
	Width    int
	Height   int
}

// simResult is the outcome of one simulated game.
type simResult struct {
	Score    int
	Moves    int
	Rejected int
	Terminal bool // ended because nothing could be split
	History  []int
	Digest   uint64
}

// simStats aggregates a batch.
type simStats struct {
	Games     int
	Terminal  int
	MinScore  int
	MaxScore  int
	MeanScore float64
	MeanMoves float64
	Rejected  int
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gameID := "splt"
	if flagSimPreset != "" {
		p, err := config.ParsePreset(flagSimPreset)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, p)
		if p != config.PresetClassic {
			gameID += "_" + string(p)
		}
	}

	opts := simOptions{
		Games:    flagSimGames,
		Workers:  flagSimWorkers,
		Seed:     flagSimSeed,
		MaxMoves: flagSimMaxMoves,
		Policy:   flagSimPolicy,
		Width:    cfg.Board.Width,
		Height:   cfg.Board.Height,
	}

	start := time.Now()
	results, err := simulate(cmd.Context(), opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Debug("simulation done", "games", len(results), "elapsed", elapsed.Round(time.Millisecond))

	stats := summarize(results)
	fmt.Printf("Board %dx%d, policy %s, %d games in %s\n",
		opts.Width, opts.Height, opts.Policy, stats.Games, elapsed.Round(time.Millisecond))
	fmt.Printf("  score  min %d  max %d  mean %.2f\n", stats.MinScore, stats.MaxScore, stats.MeanScore)
	fmt.Printf("  moves  mean %.2f  finished %d/%d\n", stats.MeanMoves, stats.Terminal, stats.Games)
	if opts.Policy == policyCells {
		fmt.Printf("  rejected picks %d\n", stats.Rejected)
	}

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// SQLite takes one writer at a time, so runs are saved after the batch
	for _, r := range results {
		if _, err := store.SaveRun(storage.Run{
			GameID:  gameID,
			Width:   opts.Width,
			Height:  opts.Height,
			Score:   r.Score,
			Moves:   r.Moves,
			History: r.History,
			Digest:  r.Digest,
		}); err != nil {
			return err
		}
	}
	logger.Info("runs saved", "game", gameID, "count", len(results))
	return nil
}

// simulate plays opts.Games games on a bounded worker pool. Game i uses a
// generator seeded with (Seed, i), so results do not depend on scheduling.
func simulate(ctx context.Context, opts simOptions) ([]simResult, error) {
	if opts.Games < 0 {
		return nil, fmt.Errorf("games must not be negative")
	}
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("invalid board %dx%d", opts.Width, opts.Height)
	}
	if opts.Policy != policyLegal && opts.Policy != policyCells {
		return nil, fmt.Errorf("unknown policy %q (want %s or %s)", opts.Policy, policyLegal, policyCells)
	}

	results := make([]simResult, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))

	for i := range opts.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
			res, err := playOne(rng, opts)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// playOne plays a single game until it ends or the step limit is reached.
func playOne(rng *rand.Rand, opts simOptions) (simResult, error) {
	e := env.New(opts.Width, opts.Height)

	var res simResult
	for step := 0; step < opts.MaxMoves && !e.Done(); step++ {
		var action int
		if opts.Policy == policyCells {
			action = rng.IntN(e.NumActions())
		} else {
			legal := e.LegalActions()
			action = legal[rng.IntN(len(legal))]
		}

		out, err := e.Step(action)
		if err != nil {
			return res, err
		}
		if !out.Moved {
			res.Rejected++
		}
	}

	b := e.Board()
	if err := b.Validate(); err != nil {
		return res, err
	}
	res.Score = b.Score()
	res.Moves = b.Moves()
	res.Terminal = b.Terminal()
	res.History = b.History()
	res.Digest = b.Digest()
	return res, nil
}

func summarize(results []simResult) simStats {
	s := simStats{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	s.MinScore = results[0].Score
	var scores, moves int
	for _, r := range results {
		s.MinScore = min(s.MinScore, r.Score)
		s.MaxScore = max(s.MaxScore, r.Score)
		scores += r.Score
		moves += r.Moves
		s.Rejected += r.Rejected
		if r.Terminal {
			s.Terminal++
		}
	}
	s.MeanScore = float64(scores) / float64(len(results))
	s.MeanMoves = float64(moves) / float64(len(results))
	return s
}
