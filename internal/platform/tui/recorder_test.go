package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/splt/internal/config"
	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/games/splt/engine"
	"github.com/vovakirdan/splt/internal/journal"
	"github.com/vovakirdan/splt/internal/storage"
)

// newTinyGame returns a running 2x2 game, which ends after two splits.
func newTinyGame(t *testing.T) *splt.Game {
	t.Helper()
	prev := splt.CurrentConfig()
	cfg := config.DefaultSpltConfig()
	cfg.Board = config.BoardConfig{Width: 2, Height: 2}
	splt.SetConfig(cfg)
	t.Cleanup(func() { splt.SetConfig(prev) })

	g := splt.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 30})
	return g
}

func confirm(g *splt.Game) core.GameState {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return g.Step(in).State
}

func TestRecorder_SavesFinishedRun(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := newTinyGame(t)
	rec := NewRecorder(RecorderOptions{Store: store, JournalDir: filepath.Join(dir, "journal")})
	rec.Start(g)

	rec.Observe(g, confirm(g))
	state := confirm(g)
	if !state.GameOver {
		t.Fatal("2x2 board should be over after two splits")
	}
	rec.Observe(g, state)
	// A second observation must not save twice
	rec.Observe(g, g.State())

	run, err := store.LoadRun(rec.RunID())
	if err != nil || run == nil {
		t.Fatalf("LoadRun() = %v, %v", run, err)
	}
	if run.Score != 2 || run.Moves != 2 || run.Digest != g.Board().Digest() {
		t.Errorf("unexpected run %+v", run)
	}

	if best, _ := store.HighScore(g.ID()); best != 2 {
		t.Errorf("HighScore() = %d, want 2", best)
	}
	runs, _ := store.RecentRuns(g.ID(), 10)
	if len(runs) != 1 {
		t.Errorf("expected exactly one saved run, got %d", len(runs))
	}

	path := filepath.Join(dir, "journal", journal.FileName(g.ID(), rec.RunID()))
	entries, err := journal.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if len(entries) != 2 || entries[1].Score != 2 {
		t.Errorf("unexpected journal %+v", entries)
	}
}

func TestRecorder_AbandonedRunIsNotSaved(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := newTinyGame(t)
	rec := NewRecorder(RecorderOptions{Store: store, JournalDir: dir})
	rec.Start(g)
	rec.Observe(g, confirm(g))
	first := rec.RunID()

	// Restarting closes the journal of the abandoned run
	g.Reset(core.DefaultConfig())
	rec.Start(g)
	if rec.RunID() == first {
		t.Error("a new run needs a new id")
	}

	if run, _ := store.LoadRun(first); run != nil {
		t.Error("abandoned run should not be saved")
	}
	if _, err := os.Stat(filepath.Join(dir, journal.FileName(g.ID(), first))); err != nil {
		t.Errorf("journal of the abandoned run should exist: %v", err)
	}
}

func TestRecorder_NoSinks(t *testing.T) {
	g := newTinyGame(t)
	rec := NewRecorder(RecorderOptions{})
	rec.Start(g)
	rec.Observe(g, confirm(g))
	rec.Observe(g, confirm(g))
	rec.Finish()

	if rec.RunID() == "" {
		t.Error("run id should be assigned even without sinks")
	}
}

// failingSink rejects every record and counts Close calls.
type failingSink struct {
	records int
	closes  int
}

func (s *failingSink) Record(engine.MoveReport) error {
	s.records++
	return errors.New("disk full")
}

func (s *failingSink) Close() error {
	s.closes++
	return nil
}

func (s *failingSink) Path() string { return "broken.jsonl.zst" }

func TestRecorder_ClosesJournalAfterWriteError(t *testing.T) {
	g := newTinyGame(t)
	rec := NewRecorder(RecorderOptions{})
	rec.Start(g)

	sink := &failingSink{}
	rec.journal = sink

	rec.Observe(g, confirm(g))
	if sink.records != 1 {
		t.Fatalf("records = %d, want 1", sink.records)
	}
	if sink.closes != 1 {
		t.Errorf("failed journal closed %d times, want 1", sink.closes)
	}
	if rec.journal != nil {
		t.Error("failed journal should be dropped")
	}

	// Later moves and the end of the run leave the dropped sink alone
	rec.Observe(g, confirm(g))
	rec.Finish()
	if sink.records != 1 || sink.closes != 1 {
		t.Errorf("dropped sink touched again: records=%d closes=%d", sink.records, sink.closes)
	}
}

func TestRecorder_FailedJournalDirStillPlays(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	g := newTinyGame(t)
	rec := NewRecorder(RecorderOptions{JournalDir: filepath.Join(blocker, "journal")})
	rec.Start(g)
	rec.Observe(g, confirm(g))

	if rec.journal != nil {
		t.Error("journal that cannot be created should be dropped")
	}
	state := confirm(g)
	rec.Observe(g, state)
	if !state.GameOver {
		t.Error("game should finish despite the journal failure")
	}
}
