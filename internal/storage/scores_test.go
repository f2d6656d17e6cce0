package storage

import "testing"

func saveScores(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		if _, err := store.SaveScore(gameID, s); err != nil {
			t.Fatalf("SaveScore(%q, %d) failed: %v", gameID, s, err)
		}
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "splt", 100, 50, 200, 100)
	saveScores(t, store, "splt_mini", 500)

	top, err := store.TopScores("splt", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d scores, want 3", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 100 {
		t.Errorf("scores not highest first: %v", top)
	}
	// Ties keep insertion order
	if top[1].ID > top[2].ID {
		t.Errorf("tied scores out of order: %v", top)
	}
	if top[0].GameID != "splt" || top[0].CreatedAt.IsZero() {
		t.Errorf("unexpected entry %+v", top[0])
	}

	all, err := store.TopScores("splt", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("limit 0 should return every score, got %d", len(all))
	}

	none, err := store.TopScores("splt_wide", 10)
	if err != nil || len(none) != 0 {
		t.Errorf("TopScores on empty game = %v, %v", none, err)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.HighScore("splt")
	if err != nil || best != 0 {
		t.Fatalf("HighScore on empty game = %d, %v", best, err)
	}

	saveScores(t, store, "splt", 100, 300, 200)
	if best, _ := store.HighScore("splt"); best != 300 {
		t.Errorf("HighScore = %d, want 300", best)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "splt", 100, 200)
	saveScores(t, store, "splt_mini", 300)
	if _, err := store.SaveRun(Run{GameID: "splt", Width: 2, Height: 2, Score: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	n, err := store.ClearScores("splt")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d scores, want 2", n)
	}

	if left, _ := store.TopScores("splt", 0); len(left) != 0 {
		t.Errorf("splt scores left: %v", left)
	}
	if mini, _ := store.TopScores("splt_mini", 0); len(mini) != 1 {
		t.Error("other games must keep their scores")
	}
	if runs, _ := store.RecentRuns("splt", 0); len(runs) != 1 {
		t.Error("clearing scores must keep runs")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "splt", 10, 30)
	saveScores(t, store, "splt_wide", 99)

	st, err := store.Stats("splt")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GameID != "splt" || st.GamesCount != 2 || st.HighScore != 30 || st.TotalScore != 40 {
		t.Errorf("unexpected stats %+v", st)
	}
	if st.AvgScore != 20 {
		t.Errorf("AvgScore = %f, want 20", st.AvgScore)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("splt_mini")
	if err != nil {
		t.Fatalf("Stats() on empty game failed: %v", err)
	}
	if empty.GameID != "splt_mini" || empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["splt_wide"].HighScore != 99 || all["splt"].GamesCount != 2 {
		t.Errorf("unexpected stats map %v", all)
	}
}
