package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Score shown in the HUD
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the game has ended for good
	Paused   bool
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	Score      int   // Final score (landed index + 1, capped at road length + 1)
	MoveIndex  int   // Tile index the player landed on
	RoadLength int   // Length of the generated road
	Seed       int64 // Seed the road was generated from
	Ticks      int   // Simulation ticks spent in the Playing state
	Overshot   bool  // Player jumped past the last tile
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Round is non-nil on the tick a round ends.
	Round *RoundSummary
}
