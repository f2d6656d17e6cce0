package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
	"github.com/vovakirdan/splt/internal/journal"
	"github.com/vovakirdan/splt/internal/storage"
)

var (
	flagReplayJournal string
	flagReplayRun     string
	flagReplayTrace   bool
	flagReplayQuiet   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-run a recorded game and verify it",
	Long: `Replay a game on a fresh board and check that every move produces
the recorded score and board digest.

A journal is checked move by move; a saved run is checked at the end.
With --trace every phase of every move is logged at debug level together
with the board raster.

Examples:
  splt replay --journal ~/.splt/journal/splt-<run>.jsonl.zst
  splt replay --run <run id> --trace`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayJournal, "journal", "", "Path to a move journal")
	replayCmd.Flags().StringVar(&flagReplayRun, "run", "", "Id of a saved run")
	replayCmd.Flags().BoolVar(&flagReplayTrace, "trace", false, "Log every phase of every move")
	replayCmd.Flags().BoolVarP(&flagReplayQuiet, "quiet", "q", false, "Do not print the final board")
	replayCmd.MarkFlagsMutuallyExclusive("journal", "run")
	replayCmd.MarkFlagsOneRequired("journal", "run")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	var tracer engine.Tracer
	if flagReplayTrace {
		logger.SetLevel(log.DebugLevel)
		tracer = traceLogger(logger)
	}

	var (
		b   *engine.Board
		err error
	)
	if flagReplayJournal != "" {
		entries, rerr := journal.ReadAll(flagReplayJournal)
		if rerr != nil {
			return rerr
		}
		b, err = replayJournal(entries, tracer)
	} else {
		b, err = replaySavedRun(flagReplayRun, tracer)
	}
	if err != nil {
		return err
	}

	if !flagReplayQuiet {
		fmt.Println(b.RenderGrid().String())
	}
	fmt.Printf("OK: %d moves, score %d, digest %016x\n", b.Moves(), b.Score(), b.Digest())
	if b.Terminal() {
		fmt.Println("Game over: no block can be split.")
	}
	return nil
}

func replaySavedRun(id string, tracer engine.Tracer) (*engine.Board, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	run, err := store.LoadRun(id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("no run with id %q", id)
	}
	return replayRun(*run, tracer)
}

// traceLogger logs each phase and the raster after it.
func traceLogger(logger *log.Logger) engine.Tracer {
	return engine.TracerFunc(func(p engine.Phase, b *engine.Board) {
		logger.Debug("phase", "move", b.Moves(), "phase", p, "score", b.Score(), "rects", b.Len())
		logger.Debug("\n" + b.RenderGrid().String())
	})
}

// applyChecked plays index on b, turning caller mistakes into errors.
func applyChecked(b *engine.Board, move, index int) (engine.MoveReport, error) {
	if index < 0 || index >= b.Len() {
		return engine.MoveReport{}, fmt.Errorf("move %d: index %d out of range [0,%d)", move, index, b.Len())
	}
	rep, ok := b.Apply(index)
	if !ok {
		return rep, fmt.Errorf("move %d: rectangle %d cannot be split %sly", move, index, b.Orientation())
	}
	return rep, nil
}

// replayJournal re-applies journal entries on a fresh board and checks
// every move against its entry.
func replayJournal(entries []journal.Entry, tracer engine.Tracer) (*engine.Board, error) {
	if len(entries) == 0 {
		return nil, errors.New("journal is empty")
	}
	first := entries[0]
	if first.Width < 1 || first.Height < 1 {
		return nil, fmt.Errorf("journal has no board size")
	}

	b := engine.NewBoard(first.Width, first.Height)
	b.SetTracer(tracer)
	for i, e := range entries {
		if e.Seq != i+1 {
			return nil, fmt.Errorf("entry %d: sequence %d out of order", i+1, e.Seq)
		}
		rep, err := applyChecked(b, e.Seq, e.Index)
		if err != nil {
			return nil, err
		}
		if rep.Delta != e.Delta || rep.Score != e.Score {
			return nil, fmt.Errorf("move %d: score %d (+%d), journal says %d (+%d)", e.Seq, rep.Score, rep.Delta, e.Score, e.Delta)
		}
		if rep.Digest != e.Digest {
			return nil, fmt.Errorf("move %d: digest %016x, journal says %016x", e.Seq, rep.Digest, e.Digest)
		}
	}
	return b, nil
}

// replayRun re-applies the history of a saved run and checks the result.
func replayRun(run storage.Run, tracer engine.Tracer) (*engine.Board, error) {
	if run.Width < 1 || run.Height < 1 {
		return nil, fmt.Errorf("run %s has no board size", run.ID)
	}

	b := engine.NewBoard(run.Width, run.Height)
	b.SetTracer(tracer)
	for i, idx := range run.History {
		if _, err := applyChecked(b, i+1, idx); err != nil {
			return nil, err
		}
	}

	if b.Moves() != run.Moves {
		return nil, fmt.Errorf("replayed %d moves, run says %d", b.Moves(), run.Moves)
	}
	if b.Score() != run.Score {
		return nil, fmt.Errorf("replayed score %d, run says %d", b.Score(), run.Score)
	}
	if b.Digest() != run.Digest {
		return nil, fmt.Errorf("replayed digest %016x, run says %016x", b.Digest(), run.Digest)
	}
	return b, nil
}
