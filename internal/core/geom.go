// Package core holds the dependency-free primitives shared by the game and
// the terminal platform: board geometry, a colored screen buffer, input
// actions and runtime settings. Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned block of board cells. Y grows downward, so
// (X, Y) is the top-left cell and the right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with its top-left cell at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.W * r.H }

// SameSize reports whether r and o have equal width and height.
func (r Rect) SameSize(o Rect) bool { return r.W == o.W && r.H == o.H }

// Overlaps reports whether r and o share at least one cell. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
