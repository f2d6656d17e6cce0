package splt

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/games/splt/engine"
)

const (
	hudHeight    = 3 // title, score line, status line
	footerHeight = 1
)

// blockPalette colors zero-point blocks in compact mode.
var blockPalette = []core.Color{
	core.ColorBlue,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// checkScreenSize picks the full or compact layout, or flags the screen
// as too small for either.
func (g *Game) checkScreenSize() {
	cw := g.cfg.Display.CellWidth
	w, h := g.cfg.Board.Width, g.cfg.Board.Height

	fullW := w*(cw+1) + 1
	fullH := 2*h + 1
	if g.screenW >= fullW && g.screenH >= hudHeight+fullH+footerHeight {
		g.compact = false
		g.tooSmall = false
		return
	}

	g.compact = true
	g.tooSmall = g.screenW < w*cw || g.screenH < hudHeight+h+footerHeight
}

// boardSize returns the on-screen size of the board in the current layout.
func (g *Game) boardSize() (int, int) {
	cw := g.cfg.Display.CellWidth
	w, h := g.board.Width(), g.board.Height()
	if g.compact {
		return w * cw, h
	}
	return w*(cw+1) + 1, 2*h + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	if g.compact {
		g.renderCompact(dst, boardX, boardY)
	} else {
		g.renderRaster(dst, boardX, boardY)
	}
	g.renderFooter(dst)

	if g.gameOver {
		g.drawOverlay(dst, boardX+boardW/2, boardY+boardH/2,
			"GAME OVER",
			fmt.Sprintf("Score: %d in %d moves", g.board.Score(), g.board.Moves()),
			"Press R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and split status.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))
	moves := fmt.Sprintf("Moves: %d", g.board.Moves())
	dst.DrawText(max(boardX, boardX+boardW-len(moves)), 1, moves)

	glyph := '─'
	if g.board.Orientation() == engine.Vertical {
		glyph = '│'
	}
	status := fmt.Sprintf("Next %c  Legal: %d", glyph, len(g.board.LegalMoves()))
	if g.lastDelta > 0 {
		status += fmt.Sprintf("  Last: +%d", g.lastDelta)
	}
	dst.DrawTextColor(boardX, 2, status, core.ColorGray)
}

// renderFooter draws the status message or the control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.screenH - 1
	if g.message != "" {
		x := (g.screenW - len(g.message)) / 2
		dst.DrawTextColor(x, y, g.message, core.ColorYellow)
		return
	}
	dst.DrawTextColor(max(0, (g.screenW-len(g.Controls()))/2), y, g.Controls(), core.ColorGray)
}

// renderRaster draws the double resolution raster. Even raster columns are
// one screen column wide, odd ones are cell_width wide.
func (g *Game) renderRaster(dst *core.Screen, boardX, boardY int) {
	rs := g.board.RenderGrid()
	cw := g.cfg.Display.CellWidth

	var cursor engine.Rectangle
	idx, hasCursor := g.board.IndexAt(g.cursorX, g.cursorY)
	if hasCursor {
		cursor = g.board.Rect(idx)
	}

	for row := 0; row < rs.Rows(); row++ {
		y := boardY + row
		for col := 0; col < rs.Cols(); col++ {
			x := boardX + (col/2)*(cw+1) + col%2
			width := 1
			if col%2 == 1 {
				width = cw
			}

			color := core.ColorGray
			if hasCursor && onBorder(cursor, col, row) {
				color = core.ColorBrightCyan
			}

			glyph := rs.At(col, row)
			switch glyph.Kind {
			case engine.GlyphHorizontal:
				r := '─'
				if col%2 == 0 {
					r = junction(rs, col, row)
				}
				dst.Fill(x, y, width, r, color)
			case engine.GlyphVertical:
				r := '│'
				if row%2 == 0 {
					r = junction(rs, col, row)
				}
				dst.SetColor(x, y, r, color)
			case engine.GlyphVoid:
				if col/2 == g.cursorX && row/2 == g.cursorY {
					dst.Fill(x, y, width, '▒', core.ColorBrightWhite)
				} else {
					dst.Fill(x, y, width, '░', core.ColorGray)
				}
			case engine.GlyphPoints:
				g.drawPoints(dst, x, y, width, glyph.Points, col/2 == g.cursorX && row/2 == g.cursorY)
			case engine.GlyphEmpty:
				if col%2 == 1 && row%2 == 1 {
					g.drawEmptyCell(dst, x, y, width, col/2, row/2)
				}
			}
		}
	}
}

// drawEmptyCell draws the interior of a zero-point block cell.
func (g *Game) drawEmptyCell(dst *core.Screen, x, y, width, bx, by int) {
	if bx == g.cursorX && by == g.cursorY {
		dst.Fill(x, y, width, '▒', core.ColorBrightWhite)
		return
	}
	if !g.cfg.Display.ShowIndex {
		return
	}
	idx, ok := g.board.IndexAt(bx, by)
	if !ok {
		return
	}
	if r := g.board.Rect(idx); r.X == bx && r.Y == by {
		label := strconv.Itoa(idx)
		if len(label) > width {
			label = label[len(label)-width:]
		}
		dst.DrawTextColor(x, y, label, core.ColorGray)
	}
}

// drawPoints draws a countdown value centered in a cell.
func (g *Game) drawPoints(dst *core.Screen, x, y, width, points int, underCursor bool) {
	color := pointsColor(points)
	if underCursor {
		color = core.ColorBrightWhite
	}
	label := strconv.Itoa(points)
	if len(label) > width {
		label = "+"
	}
	dst.Fill(x, y, width, '·', color)
	dst.DrawTextColor(x+(width-len(label))/2, y, label, color)
}

// renderCompact draws one screen row per board row. Blocks are told apart
// by color and by a gap column at vertical boundaries.
func (g *Game) renderCompact(dst *core.Screen, boardX, boardY int) {
	cw := g.cfg.Display.CellWidth
	for by := 0; by < g.board.Height(); by++ {
		for bx := 0; bx < g.board.Width(); bx++ {
			x := boardX + bx*cw
			y := boardY + by

			idx, ok := g.board.IndexAt(bx, by)
			if !ok {
				dst.Fill(x, y, cw, '░', core.ColorGray)
				continue
			}

			r := g.board.Rect(idx)
			cursor := bx == g.cursorX && by == g.cursorY
			switch {
			case r.Points > 0:
				g.drawPoints(dst, x, y, cw, r.Points, cursor)
			case cursor:
				dst.Fill(x, y, cw, '▓', core.ColorBrightWhite)
			default:
				dst.Fill(x, y, cw, '█', blockPalette[idx%len(blockPalette)])
			}

			if cw > 1 && bx == r.Right()-1 && bx < g.board.Width()-1 && r.Points == 0 && !cursor {
				dst.Set(x+cw-1, y, ' ')
			}
		}
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			var r rune
			switch {
			case (y == boxY || y == boxY+boxH-1) && (x == boxX || x == boxX+boxW-1):
				r = '+'
			case y == boxY || y == boxY+boxH-1:
				r = '-'
			case x == boxX || x == boxX+boxW-1:
				r = '|'
			default:
				r = ' '
			}
			dst.SetColor(x, y, r, core.ColorWhite)
		}
	}

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, boxY+1+i, line, core.ColorBrightWhite)
	}
}

// onBorder reports whether raster cell (col, row) lies on the border of r.
func onBorder(r engine.Rectangle, col, row int) bool {
	left, right := r.X*2, r.Right()*2
	top, bottom := r.Y*2, r.Bottom()*2
	if col < left || col > right || row < top || row > bottom {
		return false
	}
	return col == left || col == right || row == top || row == bottom
}

// junction picks a box drawing rune for a raster corner from the borders
// that meet there.
func junction(rs engine.Raster, col, row int) rune {
	isH := func(c, r int) bool {
		return c >= 0 && c < rs.Cols() && r >= 0 && r < rs.Rows() && rs.At(c, r).Kind == engine.GlyphHorizontal
	}
	isV := func(c, r int) bool {
		return c >= 0 && c < rs.Cols() && r >= 0 && r < rs.Rows() && rs.At(c, r).Kind == engine.GlyphVertical
	}
	up, down := isV(col, row-1), isV(col, row+1)
	left, right := isH(col-1, row), isH(col+1, row)

	switch {
	case up && down && left && right:
		return '┼'
	case up && down && right:
		return '├'
	case up && down && left:
		return '┤'
	case down && left && right:
		return '┬'
	case up && left && right:
		return '┴'
	case down && right:
		return '┌'
	case down && left:
		return '┐'
	case up && right:
		return '└'
	case up && left:
		return '┘'
	case up || down:
		return '│'
	default:
		return '─'
	}
}

// pointsColor maps a countdown value to a color: the closer to exploding,
// the hotter.
func pointsColor(points int) core.Color {
	switch {
	case points <= 2:
		return core.ColorBrightRed
	case points <= 5:
		return core.ColorOrange
	case points <= 9:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}
