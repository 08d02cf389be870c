package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Recorded with the run; the simulation itself is deterministic
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended, won or lost
	Won      bool // Whether the game ended by clearing every block
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for persistence.
type RunSummary struct {
	GameID        string
	Score         int
	Won           bool
	BlocksCleared int
	BallsLost     int
	Ticks         int
}

// Outcome returns "win" or "loss".
func (s RunSummary) Outcome() string {
	if s.Won {
		return "win"
	}
	return "loss"
}
