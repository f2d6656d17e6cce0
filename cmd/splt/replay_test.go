package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
	"github.com/vovakirdan/splt/internal/journal"
	"github.com/vovakirdan/splt/internal/storage"
)

// recordGame plays the given moves on a fresh board, journaling each one.
func recordGame(t *testing.T, w, h int, moves []int) (string, *engine.Board) {
	t.Helper()
	jw := journal.NewWriter(t.TempDir(), "splt", "run", w, h)
	b := engine.NewBoard(w, h)
	for _, idx := range moves {
		rep, ok := b.Apply(idx)
		if !ok {
			t.Fatalf("move %d rejected while recording", idx)
		}
		if err := jw.Record(rep); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	if err := jw.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	return jw.Path(), b
}

func TestReplayJournal(t *testing.T) {
	path, want := recordGame(t, 2, 4, []int{0, 0, 0, 1, 2})

	entries, err := journal.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}

	var phases int
	tracer := engine.TracerFunc(func(engine.Phase, *engine.Board) { phases++ })
	got, err := replayJournal(entries, tracer)
	if err != nil {
		t.Fatalf("replayJournal() failed: %v", err)
	}
	if got.Digest() != want.Digest() || got.Score() != want.Score() {
		t.Errorf("replayed board differs: score %d, want %d", got.Score(), want.Score())
	}
	if phases == 0 {
		t.Error("tracer was not called")
	}
}

func TestReplayJournal_DetectsTampering(t *testing.T) {
	path, _ := recordGame(t, 2, 4, []int{0, 0, 0})
	entries, err := journal.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func([]journal.Entry)
		want   string
	}{
		{"score", func(e []journal.Entry) { e[1].Score++ }, "move 2: score"},
		{"digest", func(e []journal.Entry) { e[2].Digest ^= 1 }, "move 3: digest"},
		{"sequence", func(e []journal.Entry) { e[1].Seq = 5 }, "out of order"},
		{"index", func(e []journal.Entry) { e[0].Index = 9 }, "out of range"},
		{"size", func(e []journal.Entry) { e[0].Width = 0 }, "no board size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := append([]journal.Entry(nil), entries...)
			tt.mutate(bad)
			_, err := replayJournal(bad, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := replayJournal(nil, nil); err == nil {
		t.Error("empty journal should fail")
	}
}

func TestReplayRun(t *testing.T) {
	b := engine.NewBoard(2, 4)
	for _, idx := range []int{0, 0, 0, 1, 2} {
		if !b.ApplyMove(idx) {
			t.Fatalf("move %d rejected", idx)
		}
	}
	run := storage.Run{
		ID: "r", Width: 2, Height: 4,
		Score: b.Score(), Moves: b.Moves(), History: b.History(), Digest: b.Digest(),
	}

	if _, err := replayRun(run, nil); err != nil {
		t.Fatalf("replayRun() failed: %v", err)
	}

	bad := run
	bad.Score++
	if _, err := replayRun(bad, nil); err == nil {
		t.Error("score mismatch should fail")
	}

	// 1x1 blocks cannot be split vertically
	bad = run
	bad.History = []int{0, 0, 0, 0}
	if _, err := replayRun(bad, nil); err == nil || !strings.Contains(err.Error(), "cannot be split") {
		t.Errorf("illegal move error = %v", err)
	}
}

func TestReplaySavedRun(t *testing.T) {
	prev := flagDBPath
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	t.Cleanup(func() { flagDBPath = prev })

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	b := engine.NewBoard(2, 2)
	b.ApplyMove(0)
	id, err := store.SaveRun(storage.Run{
		GameID: "splt", Width: 2, Height: 2,
		Score: b.Score(), Moves: b.Moves(), History: b.History(), Digest: b.Digest(),
	})
	store.Close()
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := replaySavedRun(id, nil)
	if err != nil {
		t.Fatalf("replaySavedRun() failed: %v", err)
	}
	if got.Moves() != 1 {
		t.Errorf("moves = %d, want 1", got.Moves())
	}

	if _, err := replaySavedRun("00000000-0000-0000-0000-000000000000", nil); err == nil {
		t.Error("unknown run should fail")
	}
}
