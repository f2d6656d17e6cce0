package engine

import "fmt"

// Phase identifies one stage of move resolution.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSplitting
	PhaseLocalClustering
	PhaseCounting
	PhaseDestroying
	PhaseFalling
	PhaseRefilling
	PhaseGlobalClustering
	PhaseHalving
	PhaseScored
)

var phaseNames = [...]string{
	PhaseIdle:             "idle",
	PhaseSplitting:        "splitting",
	PhaseLocalClustering:  "local-clustering",
	PhaseCounting:         "counting",
	PhaseDestroying:       "destroying",
	PhaseFalling:          "falling",
	PhaseRefilling:        "refilling",
	PhaseGlobalClustering: "global-clustering",
	PhaseHalving:          "halving",
	PhaseScored:           "scored",
}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Tracer observes a move as it resolves. OnPhase is called after each
// phase completes with the board in its intermediate state. The board must
// not be modified by the tracer.
type Tracer interface {
	OnPhase(p Phase, b *Board)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(p Phase, b *Board)

// OnPhase calls f(p, b).
func (f TracerFunc) OnPhase(p Phase, b *Board) { f(p, b) }

// MoveReport describes how one accepted move resolved.
type MoveReport struct {
	Index          int         // rectangle index that was split
	Phases         []Phase     // phases that ran, in order; global clustering and halving only after a fall
	LocalClusters  int         // groups formed by the split
	GlobalClusters int         // groups formed after gravity
	Countdown      int         // countdown score, including global cluster ticks
	Destruction    int         // area of exploded rectangles
	HalvingBonus   int         // score paid out by halving fallen blocks
	DestroyedRows  []int       // board rows touched by explosions
	FallColumns    []int       // columns spanned by rectangles that fell
	Filled         []Rectangle // refill blocks as created, before falling
	Fell           bool        // whether gravity moved anything
	Delta          int         // total score earned by the move
	Score          int         // board score after the move
	Digest         uint64      // board digest after the move
}

// ApplyMove splits rectangle index and resolves the full cascade.
// Returns false and leaves the board untouched if the rectangle cannot be
// split with the current orientation. Panics if index is out of range.
func (b *Board) ApplyMove(index int) bool {
	_, ok := b.Apply(index)
	return ok
}

// Apply is ApplyMove with a report of what happened.
func (b *Board) Apply(index int) (MoveReport, bool) {
	if index < 0 || index >= len(b.rects) {
		panic(fmt.Sprintf("engine: rectangle index %d out of range [0,%d)", index, len(b.rects)))
	}

	rep := MoveReport{Index: index}
	if !b.split(index) {
		return rep, false
	}
	b.enter(&rep, PhaseSplitting)

	rep.LocalClusters = b.localClusters()
	b.enter(&rep, PhaseLocalClustering)

	rep.Countdown = b.countDown()
	b.enter(&rep, PhaseCounting)

	var destroyed int
	destroyed, rep.DestroyedRows = b.destroy()
	rep.Destruction = destroyed
	b.enter(&rep, PhaseDestroying)

	rep.FallColumns = b.settle()
	rep.Fell = len(rep.FallColumns) > 0
	b.enter(&rep, PhaseFalling)

	// Explosions without any fall only refill the rows they cleared
	var rows map[int]bool
	if !rep.Fell && len(rep.DestroyedRows) > 0 {
		rows = make(map[int]bool, len(rep.DestroyedRows))
		for _, y := range rep.DestroyedRows {
			rows[y] = true
		}
	}
	rep.Filled = b.refill(skyline(b.RenderGrid(), b.width, rows))
	b.enter(&rep, PhaseRefilling)

	if rep.Fell {
		var ticks int
		rep.GlobalClusters, ticks = b.globalClusters()
		rep.Countdown += ticks
		b.enter(&rep, PhaseGlobalClustering)

		rep.HalvingBonus = b.halve()
		b.enter(&rep, PhaseHalving)
	}

	rep.Delta = 1 + rep.Countdown + rep.Destruction + rep.HalvingBonus
	b.score += rep.Delta
	rep.Score = b.score
	rep.Digest = b.Digest()
	b.enter(&rep, PhaseScored)

	return rep, true
}

// enter records p in the report and notifies the tracer.
func (b *Board) enter(rep *MoveReport, p Phase) {
	rep.Phases = append(rep.Phases, p)
	if b.tracer != nil {
		b.tracer.OnPhase(p, b)
	}
}
