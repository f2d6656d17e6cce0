package engine

// split bisects rectangle i along the current orientation. The rectangle
// keeps its origin and the floor half of the cut dimension; the remainder
// is appended as a new zero-point rectangle directly right of or below it.
// Returns false without touching the board when the split is not allowed.
func (b *Board) split(i int) bool {
	r := b.rects[i]
	if !r.Splittable(b.orientation) {
		return false
	}

	var half Rectangle
	switch b.orientation {
	case Vertical:
		keep := r.W / 2
		half = NewRectangle(r.X+keep, r.Y, r.W-keep, r.H, 0)
		b.rects[i].W = keep
	default:
		keep := r.H / 2
		half = NewRectangle(r.X, r.Y+keep, r.W, r.H-keep, 0)
		b.rects[i].H = keep
	}

	b.rects = append(b.rects, half)
	b.history = append(b.history, i)
	b.orientation = b.orientation.Flip()
	return true
}
