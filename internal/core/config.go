package core

// RuntimeConfig is what the platform tells a game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int // ticks per second
}

// DefaultConfig is an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is the part of a game the platform records.
type GameState struct {
	Score    int
	Moves    int // accepted splits
	GameOver bool
}

// StepResult reports the outcome of one tick.
type StepResult struct {
	State GameState
	Moved bool // a split was accepted this tick
}
