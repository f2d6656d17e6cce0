// Package splt implements the SPL-T split puzzle as an arcade game.
// The player moves a cursor over the board and splits the block under it;
// the engine package resolves everything that follows.
package splt

import (
	"strings"
	"sync"

	"github.com/vovakirdan/splt/internal/config"
	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/games/splt/engine"
	"github.com/vovakirdan/splt/internal/registry"
)

// GameID is the id of the game that uses the configured board size.
const GameID = "splt"

// messageTicks is how long a status message stays on screen.
const messageTicks = 45

// Package-level configuration shared by all new games
var (
	configMu   sync.RWMutex
	configured = config.DefaultSpltConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.SpltConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configured = cfg
}

// CurrentConfig returns the configuration new games are created with.
func CurrentConfig() config.SpltConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return configured
}

// Game implements registry.Game for SPL-T.
type Game struct {
	preset config.BoardPreset // empty for the configured board
	cfg    config.SpltConfig
	tick   uint64

	board   *engine.Board
	reports []engine.MoveReport

	cursorX int
	cursorY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	tooSmall bool
	compact  bool // one screen row per board row

	message      string
	messageTicks int
	lastDelta    int
}

// New creates a game using the configured board size.
func New() *Game {
	return &Game{}
}

// NewPreset creates a game with a fixed preset board size. Scores of preset
// games are kept apart from the configured game.
func NewPreset(p config.BoardPreset) *Game {
	return &Game{preset: p}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(GameID+"_"+string(config.PresetMini), func() registry.Game {
		return NewPreset(config.PresetMini)
	})
	registry.Register(GameID+"_"+string(config.PresetWide), func() registry.Game {
		return NewPreset(config.PresetWide)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.preset == "" {
		return GameID
	}
	return GameID + "_" + string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == "" {
		return "SPL-T"
	}
	name := string(g.preset)
	return "SPL-T (" + strings.ToUpper(name[:1]) + name[1:] + ")"
}

// BoardSize returns the board size the next Reset will use.
func (g *Game) BoardSize() (int, int) {
	if g.preset != "" {
		return g.preset.Size()
	}
	cfg := CurrentConfig()
	return cfg.Board.Width, cfg.Board.Height
}

// Reset starts a new game on a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = CurrentConfig()
	if g.preset != "" {
		config.ApplyPreset(&g.cfg, g.preset)
	}

	g.tick = 0
	g.board = engine.NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.reports = nil
	g.cursorX = 0
	g.cursorY = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = g.board.Terminal()
	g.message = ""
	g.messageTicks = 0
	g.lastDelta = 0

	g.checkScreenSize()
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Cursor movement
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	moved := false
	if in.Has(core.ActionConfirm) {
		_, moved = g.SplitAt(g.cursorX, g.cursorY)
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// moveCursor shifts the cursor, keeping it on the board.
func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.board.Width()-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.board.Height()-1)
}

// SplitAt splits the block covering board cell (x, y).
// Returns false and shows a message when there is nothing to split there.
func (g *Game) SplitAt(x, y int) (engine.MoveReport, bool) {
	if g.gameOver {
		return engine.MoveReport{}, false
	}

	idx, ok := g.board.IndexAt(x, y)
	if !ok {
		g.flash("Nothing to split here")
		return engine.MoveReport{}, false
	}

	rep, ok := g.board.Apply(idx)
	if !ok {
		if g.board.Rect(idx).Points > 0 {
			g.flash("Block is counting down")
		} else {
			g.flash("Too thin to split " + g.board.Orientation().String() + "ly")
		}
		return rep, false
	}

	g.reports = append(g.reports, rep)
	g.lastDelta = rep.Delta
	g.message = ""
	g.messageTicks = 0
	if g.board.Terminal() {
		g.gameOver = true
	}
	return rep, true
}

// flash shows a short status message.
func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = messageTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		Moves:    g.board.Moves(),
		GameOver: g.gameOver,
	}
}

// Board returns the current board. Callers must not modify it.
func (g *Game) Board() *engine.Board { return g.board }

// Reports returns the report of every accepted move, oldest first.
func (g *Game) Reports() []engine.MoveReport {
	out := make([]engine.MoveReport, len(g.reports))
	copy(out, g.reports)
	return out
}

// Cursor returns the cursor position in board cells.
func (g *Game) Cursor() (int, int) { return g.cursorX, g.cursorY }

// Config returns the configuration of the current game.
func (g *Game) Config() config.SpltConfig { return g.cfg }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Enter/Space: Split | R: Restart | Q: Quit"
}
