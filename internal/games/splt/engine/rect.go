// Package engine implements the SPL-T board simulation: a single rectangle is
// repeatedly bisected, equal-sized 2x2 groups turn into countdown blocks,
// exploded blocks leave voids, rectangles fall and new blocks refill the
// space. One player choice resolves the whole cascade atomically.
//
// The package is pure and deterministic: no I/O, no randomness, no goroutines.
package engine

import "github.com/vovakirdan/splt/internal/core"

// Exploding is the transient points value of a rectangle that counted down
// to zero during the current move. It never survives a completed move.
const Exploding = -1

// Rectangle is one block on the board. Points is 0 for a splittable block,
// positive while counting down and Exploding just before removal.
type Rectangle struct {
	core.Rect
	Points int

	// Per-move scratch state, always zero between moves.
	pending int  // cluster value scheduled during a scan
	fell    bool // moved by gravity while carrying points
}

// NewRectangle creates a rectangle at (x, y) with the given size and points.
func NewRectangle(x, y, w, h, points int) Rectangle {
	return Rectangle{Rect: core.NewRect(x, y, w, h), Points: points}
}

// SameShape reports whether a and b have the same width, height and points.
// Position is ignored: two distinct blocks can be the same shape.
func SameShape(a, b Rectangle) bool {
	return a.SameSize(b.Rect) && a.Points == b.Points
}

// Splittable reports whether the rectangle can be bisected along o.
func (r Rectangle) Splittable(o Orientation) bool {
	if r.Points != 0 {
		return false
	}
	if o == Vertical {
		return r.W > 1
	}
	return r.H > 1
}
