package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/games/splt/engine"
	"github.com/vovakirdan/splt/internal/journal"
	"github.com/vovakirdan/splt/internal/registry"
	"github.com/vovakirdan/splt/internal/storage"
)

// RunSource is implemented by games that expose their board and the
// report of every accepted move.
type RunSource interface {
	Board() *engine.Board
	Reports() []engine.MoveReport
}

// RecorderOptions configures where finished runs go. A nil Store and an
// empty JournalDir disable the respective sink.
type RecorderOptions struct {
	Store      *storage.Store
	JournalDir string
	Logger     *log.Logger
}

// journalSink receives the reports of one run. *journal.Writer is the
// only implementation outside tests.
type journalSink interface {
	Record(rep engine.MoveReport) error
	Close() error
	Path() string
}

// Recorder journals the moves of the current run as they happen and
// saves the score and the run once the game is over.
type Recorder struct {
	opts RecorderOptions

	runID    string
	journal  journalSink
	recorded int // reports already journaled
	saved    bool
}

// NewRecorder creates a recorder. Call Start before the first tick.
func NewRecorder(opts RecorderOptions) *Recorder {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Recorder{opts: opts}
}

// RunID returns the id of the current run.
func (r *Recorder) RunID() string { return r.runID }

// Start begins a new run for game, closing the journal of the previous one.
func (r *Recorder) Start(game registry.Game) {
	r.Finish()

	r.runID = uuid.NewString()
	r.recorded = 0
	r.saved = false

	src, ok := game.(RunSource)
	if !ok || r.opts.JournalDir == "" {
		return
	}
	b := src.Board()
	r.journal = journal.NewWriter(r.opts.JournalDir, game.ID(), r.runID, b.Width(), b.Height())
}

// Observe journals new moves and persists the run on game over.
// Failures are logged; the game keeps running regardless.
func (r *Recorder) Observe(game registry.Game, state core.GameState) {
	src, ok := game.(RunSource)
	if ok && r.journal != nil {
		reports := src.Reports()
		for _, rep := range reports[r.recorded:] {
			if err := r.journal.Record(rep); err != nil {
				r.opts.Logger.Error("journal write failed", "run", r.runID, "err", err)
				if cerr := r.journal.Close(); cerr != nil {
					r.opts.Logger.Error("journal close failed", "run", r.runID, "err", cerr)
				}
				r.journal = nil
				break
			}
		}
		r.recorded = len(reports)
	}

	if !state.GameOver || r.saved {
		return
	}
	r.saved = true
	r.save(game, src, ok, state)
	r.Finish()
}

func (r *Recorder) save(game registry.Game, src RunSource, hasRun bool, state core.GameState) {
	logger := r.opts.Logger.With("game", game.ID(), "run", r.runID)
	logger.Info("game over", "score", state.Score, "moves", state.Moves)

	store := r.opts.Store
	if store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			logger.Error("cannot save score", "err", err)
		}
	}
	if !hasRun {
		return
	}

	b := src.Board()
	_, err := store.SaveRun(storage.Run{
		ID:      r.runID,
		GameID:  game.ID(),
		Width:   b.Width(),
		Height:  b.Height(),
		Score:   b.Score(),
		Moves:   b.Moves(),
		History: b.History(),
		Digest:  b.Digest(),
	})
	if err != nil {
		logger.Error("cannot save run", "err", err)
	}
}

// Finish closes the journal of the current run, if any.
func (r *Recorder) Finish() {
	if r.journal == nil {
		return
	}
	if err := r.journal.Close(); err != nil {
		r.opts.Logger.Error("journal close failed", "run", r.runID, "err", err)
	} else if r.recorded > 0 {
		r.opts.Logger.Debug("journal written", "path", r.journal.Path(), "moves", r.recorded)
	}
	r.journal = nil
}
