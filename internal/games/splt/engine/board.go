package engine

import (
	"fmt"
)

// Orientation is the axis the next split cuts along.
type Orientation int

const (
	// Horizontal cuts with a horizontal line, halving the height.
	Horizontal Orientation = iota
	// Vertical cuts with a vertical line, halving the width.
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Board owns the rectangles of one game. The rectangle slice is kept in
// insertion order; destruction compacts it, so an index is only meaningful
// at the time it is used.
type Board struct {
	width       int
	height      int
	rects       []Rectangle
	orientation Orientation
	score       int
	history     []int
	tracer      Tracer
}

// NewBoard creates a board covered by a single zero-point rectangle.
// Panics if either dimension is not positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:       width,
		height:      height,
		rects:       []Rectangle{NewRectangle(0, 0, width, height, 0)},
		orientation: Horizontal,
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Orientation returns the orientation the next split will use.
func (b *Board) Orientation() Orientation { return b.orientation }

// Moves returns the number of accepted splits.
func (b *Board) Moves() int { return len(b.history) }

// History returns the chosen rectangle index of every accepted split, in order.
func (b *Board) History() []int {
	out := make([]int, len(b.history))
	copy(out, b.history)
	return out
}

// Len returns the number of rectangles on the board.
func (b *Board) Len() int { return len(b.rects) }

// Rect returns the rectangle at index i.
func (b *Board) Rect(i int) Rectangle { return b.rects[i] }

// Rectangles returns a copy of all rectangles in index order.
func (b *Board) Rectangles() []Rectangle {
	out := make([]Rectangle, len(b.rects))
	copy(out, b.rects)
	return out
}

// SetTracer installs a phase observer. Pass nil to remove it.
func (b *Board) SetTracer(t Tracer) { b.tracer = t }

// LegalMoves returns the indices of all rectangles splittable with the
// current orientation. An empty result means the game is over.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, len(b.rects))
	for i, r := range b.rects {
		if r.Splittable(b.orientation) {
			moves = append(moves, i)
		}
	}
	return moves
}

// Terminal reports whether no rectangle can be split.
func (b *Board) Terminal() bool {
	for _, r := range b.rects {
		if r.Splittable(b.orientation) {
			return false
		}
	}
	return true
}

// IndexAt returns the index of the rectangle covering board cell (x, y).
// Returns false for void cells and coordinates off the board.
func (b *Board) IndexAt(x, y int) (int, bool) {
	for i, r := range b.rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the board. The tracer is not copied.
func (b *Board) Clone() *Board {
	return &Board{
		width:       b.width,
		height:      b.height,
		rects:       append([]Rectangle(nil), b.rects...),
		orientation: b.orientation,
		score:       b.score,
		history:     append([]int(nil), b.history...),
	}
}

// Covered returns the number of board cells covered by rectangles.
func (b *Board) Covered() int {
	total := 0
	for _, r := range b.rects {
		total += r.Area()
	}
	return total
}

// Validate checks the structural invariants that hold between moves:
// every rectangle is inside the board, has a positive size and a
// non-negative point value, and no two rectangles overlap.
func (b *Board) Validate() error {
	bounds := NewRectangle(0, 0, b.width, b.height, 0)
	for i, r := range b.rects {
		if r.W < 1 || r.H < 1 {
			return fmt.Errorf("engine: rectangle %d has size %dx%d", i, r.W, r.H)
		}
		if r.X < 0 || r.Y < 0 || r.Right() > bounds.Right() || r.Bottom() > bounds.Bottom() {
			return fmt.Errorf("engine: rectangle %d at (%d,%d) %dx%d is outside the board", i, r.X, r.Y, r.W, r.H)
		}
		if r.Points < 0 {
			return fmt.Errorf("engine: rectangle %d has points %d", i, r.Points)
		}
		for j := i + 1; j < len(b.rects); j++ {
			if r.Overlaps(b.rects[j].Rect) {
				return fmt.Errorf("engine: rectangles %d and %d overlap", i, j)
			}
		}
	}
	return nil
}
