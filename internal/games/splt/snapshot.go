package splt

import "github.com/vovakirdan/splt/internal/games/splt/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	ID          string
	Width       int
	Height      int
	Score       int
	Moves       int
	Orientation string
	CursorX     int
	CursorY     int
	Rects       []engine.Rectangle
	History     []int
	Digest      uint64
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:        g.tick,
		ID:          g.ID(),
		Width:       g.board.Width(),
		Height:      g.board.Height(),
		Score:       g.board.Score(),
		Moves:       g.board.Moves(),
		Orientation: g.board.Orientation().String(),
		CursorX:     g.cursorX,
		CursorY:     g.cursorY,
		Rects:       g.board.Rectangles(),
		History:     g.board.History(),
		Digest:      g.board.Digest(),
		State:       state,
	}
}
