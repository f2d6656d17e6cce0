package engine

import "sort"

// countDown ticks every counting rectangle once. A rectangle at one becomes
// Exploding. Each tick earns one point.
func (b *Board) countDown() int {
	score := 0
	for i := range b.rects {
		switch p := b.rects[i].Points; {
		case p > 1:
			b.rects[i].Points--
			score++
		case p == 1:
			b.rects[i].Points = Exploding
			score++
		}
	}
	return score
}

// destroy removes exploding rectangles, keeping the order of the rest.
// Returns the area removed and the sorted board rows it occupied.
func (b *Board) destroy() (int, []int) {
	area := 0
	rows := make(map[int]bool)
	kept := b.rects[:0]
	for _, r := range b.rects {
		if r.Points != Exploding {
			kept = append(kept, r)
			continue
		}
		area += r.Area()
		for y := r.Y; y < r.Bottom(); y++ {
			rows[y] = true
		}
	}
	b.rects = kept
	return area, sortedKeys(rows)
}

// halve pays out half the value of every counting rectangle that fell this
// move, rounded up, and leaves it with the floor half. Clears all per-move
// flags. Returns the score earned.
func (b *Board) halve() int {
	score := 0
	for i := range b.rects {
		r := &b.rects[i]
		if r.fell && r.Points > 1 {
			score += (r.Points + 1) / 2
			r.Points /= 2
		}
		r.fell = false
		r.pending = 0
	}
	return score
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
