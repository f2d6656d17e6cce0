package engine

// Refill block sizes, largest first.
var (
	fillWidths  = []int{32, 16, 8, 4, 2, 1}
	fillHeights = []int{32, 16, 8, 4, 2}
)

// skyline measures how many void cells sit at the top of every column.
// With a non-nil rows filter only rows in the set are counted and the first
// row outside it stops the column.
func skyline(rs Raster, width int, rows map[int]bool) []int {
	depth := make([]int, width)
	for x := range depth {
		for y := 0; y < rs.height && rs.IsVoid(x, y); y++ {
			if rows != nil && !rows[y] {
				break
			}
			depth[x]++
		}
	}
	return depth
}

// refill drops new zero-point blocks into the pockets described by depth.
// The deepest valley of the leftmost pocket is filled first with the widest
// and tallest power-of-two block it can hold; a block is placed at the top
// and falls as far as the voids below allow. Valleys that cannot hold a
// block of at least 2x2 are shaved one row at a time. depth is consumed.
// Returns the new blocks as created, before they fell.
func (b *Board) refill(depth []int) []Rectangle {
	var created []Rectangle
	for {
		start, end, ok := firstPocket(depth)
		if !ok {
			return created
		}
		if start == end {
			depth[start] = 0
			continue
		}

		deepest, valley, run := deepestValley(depth, start, end)
		w := floorTo(fillWidths, run)
		if w == 1 || deepest%2 == 1 {
			for x := valley; x < valley+w; x++ {
				depth[x]--
			}
			continue
		}

		h := floorTo(fillHeights, deepest)
		block := NewRectangle(valley, 0, w, h, 0)
		created = append(created, block)
		b.rects = append(b.rects, block)

		rs := b.RenderGrid()
		b.rects[len(b.rects)-1].Y += rs.dropDistance(valley, w, h)

		for x := valley; x < valley+w; x++ {
			depth[x] -= h
		}
	}
}

// firstPocket returns the inclusive bounds of the leftmost run of
// positive depths.
func firstPocket(depth []int) (int, int, bool) {
	start := -1
	for x, d := range depth {
		if d > 0 && start < 0 {
			start = x
		}
		if d <= 0 && start >= 0 {
			return start, x - 1, true
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, len(depth) - 1, true
}

// deepestValley finds the maximum depth inside [start, end] and the first
// run of columns reaching it. Returns the depth, the run start and its
// length.
func deepestValley(depth []int, start, end int) (int, int, int) {
	deepest := 0
	for x := start; x <= end; x++ {
		if depth[x] > deepest {
			deepest = depth[x]
		}
	}
	valley := start
	for depth[valley] != deepest {
		valley++
	}
	run := 0
	for x := valley; x <= end && depth[x] == deepest; x++ {
		run++
	}
	return deepest, valley, run
}

// floorTo returns the largest size not exceeding n. sizes must be sorted
// in descending order. Returns 0 if n is smaller than every size.
func floorTo(sizes []int, n int) int {
	for _, s := range sizes {
		if s <= n {
			return s
		}
	}
	return 0
}
