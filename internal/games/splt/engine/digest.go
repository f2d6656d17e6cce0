package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 64-bit hash of the board: size, orientation, score,
// move count and every rectangle in index order. Two boards reached by the
// same move sequence always have the same digest.
func (b *Board) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}

	put(b.width)
	put(b.height)
	put(int(b.orientation))
	put(b.score)
	put(len(b.history))
	for _, r := range b.rects {
		put(r.X)
		put(r.Y)
		put(r.W)
		put(r.H)
		put(r.Points)
	}
	return d.Sum64()
}
