package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// openTestStore opens a fresh database in a temporary directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesNestedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("splt", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if best, _ := store.HighScore("splt"); best != 7 {
		t.Errorf("HighScore after reopen = %d, want 7", best)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/splitter")

	tests := map[string]string{
		"~/.splt/scores.db": "/home/splitter/.splt/scores.db",
		"~":                 "/home/splitter",
		"/tmp/s.db":         "/tmp/s.db",
		"~other/s.db":       "~other/s.db",
	}
	for in, want := range tests {
		got, err := expandHome(in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	if got := parseTimestamp("2026-03-04 05:06:07"); !got.Equal(want) {
		t.Errorf("text form = %v", got)
	}
	if got := parseTimestamp(want); !got.Equal(want) {
		t.Errorf("time form = %v", got)
	}
	if !parseTimestamp(nil).IsZero() || !parseTimestamp("yesterday").IsZero() {
		t.Error("unparseable values should give the zero time")
	}
}
