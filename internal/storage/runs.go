package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run is a finished (or abandoned) game together with the move history
// needed to replay it.
type Run struct {
	ID        string // uuid, generated by SaveRun when empty
	GameID    string
	Width     int
	Height    int
	Score     int
	Moves     int
	History   []int  // rectangle index of every accepted split
	Digest    uint64 // board digest after the last move
	CreatedAt time.Time
}

// SaveRun records a run and returns its id.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", run.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, width, height, score, moves, history, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.GameID,
		run.Width,
		run.Height,
		run.Score,
		run.Moves,
		encodeHistory(run.History),
		strconv.FormatUint(run.Digest, 16),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// LoadRun retrieves a run by id. Returns nil if it does not exist.
func (s *Store) LoadRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, width, height, score, moves, history, digest, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty
// gameID returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, game_id, width, height, score, moves, history, digest, created_at
		 FROM runs`
	args := []any{}
	if gameID != "" {
		query += " WHERE game_id = ?"
		args = append(args, gameID)
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collect(rows, func(sc scanner) (Run, error) {
		run, err := scanRun(sc)
		if err != nil {
			return Run{}, err
		}
		return *run, nil
	})
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	var history, digest string
	var createdAt any
	if err := sc.Scan(
		&run.ID,
		&run.GameID,
		&run.Width,
		&run.Height,
		&run.Score,
		&run.Moves,
		&history,
		&digest,
		&createdAt,
	); err != nil {
		return nil, err
	}

	moves, err := decodeHistory(history)
	if err != nil {
		return nil, err
	}
	run.History = moves

	if run.Digest, err = strconv.ParseUint(digest, 16, 64); err != nil {
		return nil, fmt.Errorf("bad digest %q: %w", digest, err)
	}
	run.CreatedAt = parseTimestamp(createdAt)
	return &run, nil
}

// encodeHistory stores move indices as a comma separated list.
func encodeHistory(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

func decodeHistory(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	moves := make([]int, len(parts))
	for i, p := range parts {
		m, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad history entry %q: %w", p, err)
		}
		moves[i] = m
	}
	return moves, nil
}
