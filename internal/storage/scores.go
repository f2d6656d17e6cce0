package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one recorded final score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SaveScore records a final score and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns the best scores of a game, highest first. A limit of
// zero or less returns all of them.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collect(rows, func(sc scanner) (ScoreEntry, error) {
		var e ScoreEntry
		var created any
		err := sc.Scan(&e.ID, &e.GameID, &e.Score, &created)
		e.CreatedAt = parseTimestamp(created)
		return e, err
	})
}

// HighScore returns the best score of a game, or 0 when none is recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes the scores of a game and returns how many went.
// Saved runs are kept.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

// GameStats aggregates the scores of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), MAX(created_at)`

func scanStats(sc scanner) (GameStats, error) {
	var st GameStats
	var last any
	err := sc.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last)
	st.LastPlayed = parseTimestamp(last)
	return st, err
}

// Stats returns the aggregate of one game. A game without scores yields
// zero counts and a zero LastPlayed.
func (s *Store) Stats(gameID string) (GameStats, error) {
	rows, err := s.db.Query(`SELECT `+statsColumns+` FROM scores WHERE game_id = ? GROUP BY game_id`, gameID)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats, err := collect(rows, scanStats)
	if err != nil {
		return GameStats{}, err
	}
	if len(stats) == 0 {
		return GameStats{GameID: gameID}, nil
	}
	return stats[0], nil
}

// AllStats returns the aggregate of every game with at least one score,
// keyed by game id.
func (s *Store) AllStats() (map[string]GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats, err := collect(rows, scanStats)
	if err != nil {
		return nil, err
	}
	byGame := make(map[string]GameStats, len(stats))
	for _, st := range stats {
		byGame[st.GameID] = st
	}
	return byGame, nil
}
