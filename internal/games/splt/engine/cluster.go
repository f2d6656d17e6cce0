package engine

// scanClusters marks closed 2x2 groups of same-shape zero-point rectangles.
// A group is anchored at its upper-left member and needs three partners:
// right, diagonal and below. Every member of a found group gets its pending
// value set to value. Only anchors accepted by anchor are considered.
// Returns the number of groups found; overlapping groups are all counted.
func (b *Board) scanClusters(value int, anchor func(Rectangle) bool) int {
	groups := 0
	members := make([]int, 0, 3)
	for i := range b.rects {
		a := b.rects[i]
		if a.Points != 0 || !anchor(a) {
			continue
		}

		members = members[:0]
		for j := range b.rects {
			o := b.rects[j]
			if j == i || !SameShape(a, o) {
				continue
			}
			switch {
			case o.X == a.Right() && o.Y == a.Y,
				o.X == a.Right() && o.Y == a.Bottom(),
				o.X == a.X && o.Y == a.Bottom():
				members = append(members, j)
			}
		}
		if len(members) != 3 {
			continue
		}

		b.rects[i].pending = value
		for _, j := range members {
			b.rects[j].pending = value
		}
		groups++
	}
	return groups
}

// localClusters looks for groups shaped like the rectangle created by the
// split that just happened. Members start counting down from the number
// of moves made so far, including this one.
func (b *Board) localClusters() int {
	last := b.rects[len(b.rects)-1]
	groups := b.scanClusters(len(b.history)+1, func(r Rectangle) bool {
		return SameShape(r, last)
	})
	for i := range b.rects {
		if p := b.rects[i].pending; p > 0 {
			b.rects[i].Points += p
			b.rects[i].pending = 0
		}
	}
	return groups
}

// globalClusters looks for groups of any shape after gravity moved blocks.
// Members skip the first tick: they start one lower than a local cluster
// would and the skipped tick is paid out immediately. Returns the number
// of groups and the countdown score earned.
func (b *Board) globalClusters() (int, int) {
	groups := b.scanClusters(len(b.history)+1, func(Rectangle) bool { return true })
	score := 0
	for i := range b.rects {
		if p := b.rects[i].pending; p > 0 {
			b.rects[i].Points += p - 1
			b.rects[i].pending = 0
			score++
		}
	}
	return groups, score
}
