// Package env wraps the SPL-T engine in a step/reset environment for
// automated players. Actions are board cells, observations are the
// binarised raster.
package env

import (
	"fmt"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
)

// Observation is the (2h+1)x(2w+1) raster reduced to 0/1 values, stored
// row-major. Borders and counting cells are 1, empty and void cells are 0.
// Cell (0, 0) carries the orientation: 1 for horizontal, 0 for vertical.
type Observation struct {
	Rows int
	Cols int
	Data []uint8
}

// At returns the value at raster column col and row row.
func (o Observation) At(col, row int) uint8 {
	return o.Data[row*o.Cols+col]
}

// StepResult is the outcome of one Step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
	Moved       bool              // false when the chosen cell could not be split
	Report      engine.MoveReport // zero value when Moved is false
}

// Env is a single game instance. It is not safe for concurrent use; run one
// Env per goroutine.
type Env struct {
	width  int
	height int
	board  *engine.Board
}

// New creates an environment with a fresh board of the given size.
func New(width, height int) *Env {
	return &Env{
		width:  width,
		height: height,
		board:  engine.NewBoard(width, height),
	}
}

// Reset starts a new game and returns the first observation.
func (e *Env) Reset() Observation {
	e.board = engine.NewBoard(e.width, e.height)
	return e.Observation()
}

// NumActions returns the size of the action space (one action per cell).
func (e *Env) NumActions() int { return e.width * e.height }

// Board returns the underlying board. Callers must not modify it.
func (e *Env) Board() *engine.Board { return e.board }

// Score returns the current board score.
func (e *Env) Score() int { return e.board.Score() }

// Done reports whether the game is over.
func (e *Env) Done() bool { return e.board.Terminal() }

// Step splits the rectangle covering cell action = y*width + x.
// Choosing a void cell or a rectangle that cannot be split leaves the board
// untouched and yields a penalty of half the current score.
func (e *Env) Step(action int) (StepResult, error) {
	if action < 0 || action >= e.NumActions() {
		return StepResult{}, fmt.Errorf("env: action %d out of range [0,%d)", action, e.NumActions())
	}
	x, y := action%e.width, action/e.width

	var res StepResult
	if idx, ok := e.board.IndexAt(x, y); ok {
		res.Report, res.Moved = e.board.Apply(idx)
	}
	if res.Moved {
		res.Reward = float64(res.Report.Delta)
	} else {
		res.Reward = -float64(e.board.Score()) / 2
	}

	res.Observation = e.Observation()
	res.Done = e.board.Terminal()
	return res, nil
}

// ActionMask reports, per action, whether choosing it would split a
// rectangle.
func (e *Env) ActionMask() []bool {
	mask := make([]bool, e.NumActions())
	for _, idx := range e.board.LegalMoves() {
		r := e.board.Rect(idx)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				mask[y*e.width+x] = true
			}
		}
	}
	return mask
}

// LegalActions returns one representative action (the top-left cell) per
// splittable rectangle, in rectangle index order.
func (e *Env) LegalActions() []int {
	moves := e.board.LegalMoves()
	actions := make([]int, 0, len(moves))
	for _, idx := range moves {
		r := e.board.Rect(idx)
		actions = append(actions, r.Y*e.width+r.X)
	}
	return actions
}

// Observation encodes the current board.
func (e *Env) Observation() Observation {
	rs := e.board.RenderGrid()
	obs := Observation{
		Rows: rs.Rows(),
		Cols: rs.Cols(),
		Data: make([]uint8, rs.Rows()*rs.Cols()),
	}
	for row := 0; row < obs.Rows; row++ {
		for col := 0; col < obs.Cols; col++ {
			switch rs.At(col, row).Kind {
			case engine.GlyphHorizontal, engine.GlyphVertical, engine.GlyphPoints:
				obs.Data[row*obs.Cols+col] = 1
			}
		}
	}

	// Parity bit
	if e.board.Orientation() == engine.Vertical {
		obs.Data[0] = 0
	} else {
		obs.Data[0] = 1
	}
	return obs
}
