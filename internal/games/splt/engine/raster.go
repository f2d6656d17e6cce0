package engine

import "strings"

// GlyphKind classifies one raster cell.
type GlyphKind uint8

const (
	GlyphEmpty      GlyphKind = iota // zero-point block interior or unused gap
	GlyphVoid                        // board cell not covered by a live block
	GlyphHorizontal                  // top or bottom border
	GlyphVertical                    // left or right border
	GlyphPoints                      // board cell of a counting block
)

// Glyph is one raster cell. Points is only set for GlyphPoints.
type Glyph struct {
	Kind   GlyphKind
	Points int
}

// Rune returns the ASCII drawing of the glyph. Point values above nine
// are drawn as '+'.
func (g Glyph) Rune() rune {
	switch g.Kind {
	case GlyphVoid:
		return '*'
	case GlyphHorizontal:
		return '-'
	case GlyphVertical:
		return '|'
	case GlyphPoints:
		if g.Points > 9 {
			return '+'
		}
		return rune('0' + g.Points)
	default:
		return ' '
	}
}

// Raster is a double-resolution drawing of the board: board cell (x, y)
// maps to raster cell (2x+1, 2y+1) and the even rows and columns hold the
// borders between blocks. It is a derived view; changing the board never
// updates an existing Raster.
type Raster struct {
	cols   int
	rows   int
	height int // board rows
	cells  [][]Glyph
}

// RenderGrid builds the raster for the current rectangles.
func (b *Board) RenderGrid() Raster {
	rs := Raster{
		cols:   b.width*2 + 1,
		rows:   b.height*2 + 1,
		height: b.height,
	}
	rs.cells = make([][]Glyph, rs.rows)
	for y := range rs.cells {
		rs.cells[y] = make([]Glyph, rs.cols)
	}

	// Every board cell starts as void until a block claims it
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			rs.cells[y*2+1][x*2+1] = Glyph{Kind: GlyphVoid}
		}
	}

	for _, r := range b.rects {
		top, bottom := r.Y*2, r.Bottom()*2
		left, right := r.X*2, r.Right()*2

		for col := left; col <= right; col++ {
			rs.cells[top][col] = Glyph{Kind: GlyphHorizontal}
			rs.cells[bottom][col] = Glyph{Kind: GlyphHorizontal}
		}
		for row := top; row <= bottom; row++ {
			rs.cells[row][left] = Glyph{Kind: GlyphVertical}
			rs.cells[row][right] = Glyph{Kind: GlyphVertical}
		}

		fill := Glyph{Kind: GlyphEmpty}
		switch {
		case r.Points == Exploding:
			fill = Glyph{Kind: GlyphVoid}
		case r.Points > 0:
			fill = Glyph{Kind: GlyphPoints, Points: r.Points}
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				rs.cells[y*2+1][x*2+1] = fill
			}
		}
	}

	return rs
}

// Cols returns the raster width (2*board width + 1).
func (rs Raster) Cols() int { return rs.cols }

// Rows returns the raster height (2*board height + 1).
func (rs Raster) Rows() int { return rs.rows }

// At returns the glyph at raster coordinates.
func (rs Raster) At(col, row int) Glyph { return rs.cells[row][col] }

// Cell returns the glyph at the centre of board cell (x, y).
func (rs Raster) Cell(x, y int) Glyph { return rs.cells[y*2+1][x*2+1] }

// IsVoid reports whether board cell (x, y) is void.
func (rs Raster) IsVoid(x, y int) bool { return rs.Cell(x, y).Kind == GlyphVoid }

// ColumnHasVoid reports whether board column x has any void cell.
func (rs Raster) ColumnHasVoid(x int) bool {
	for y := 0; y < rs.height; y++ {
		if rs.IsVoid(x, y) {
			return true
		}
	}
	return false
}

// VoidDepth counts contiguous void cells in column x starting at board
// row y and going down, stopping at a non-void cell or the floor.
func (rs Raster) VoidDepth(x, y int) int {
	depth := 0
	for row := y; row < rs.height && rs.IsVoid(x, row); row++ {
		depth++
	}
	return depth
}

// dropDistance returns how far a block spanning columns [x, x+w) whose
// bottom edge is at row y can fall: the smallest void depth under any of
// its columns.
func (rs Raster) dropDistance(x, w, y int) int {
	dist := -1
	for col := x; col < x+w; col++ {
		d := rs.VoidDepth(col, y)
		if dist < 0 || d < dist {
			dist = d
		}
		if dist == 0 {
			break
		}
	}
	if dist < 0 {
		return 0
	}
	return dist
}

// String draws the raster as ASCII, one line per raster row.
func (rs Raster) String() string {
	var sb strings.Builder
	sb.Grow((rs.cols + 1) * rs.rows)
	for row := 0; row < rs.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < rs.cols; col++ {
			sb.WriteRune(rs.cells[row][col].Rune())
		}
	}
	return sb.String()
}
