package engine

// settle lets rectangles fall into voids beneath them. A rectangle only
// falls as far as the shallowest void under any of its columns. Passes
// repeat until one moves nothing. Returns the sorted columns spanned by
// any rectangle that moved.
func (b *Board) settle() []int {
	rs := b.RenderGrid()

	// Columns without a void before gravity starts never need a probe
	voidCols := make([]bool, b.width)
	for x := range voidCols {
		voidCols[x] = rs.ColumnHasVoid(x)
	}

	moved := make(map[int]bool)
	for pass := true; pass; {
		pass = false
		for i := range b.rects {
			r := &b.rects[i]
			if !voidCols[r.X] || r.Bottom() == b.height {
				continue
			}
			dist := rs.dropDistance(r.X, r.W, r.Bottom())
			if dist == 0 {
				continue
			}

			r.Y += dist
			if r.Points > 0 {
				r.fell = true
			}
			for x := r.X; x < r.Right(); x++ {
				moved[x] = true
			}
			rs = b.RenderGrid()
			pass = true
		}
	}
	return sortedKeys(moved)
}
