package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick      uint64 // Ticks simulated since the last reset
	Asteroids int    // Live asteroids
	Shots     int    // Live projectiles
	Wave      int    // Current wave, starting at 1
	GameOver  bool   // Ship destroyed; waiting for restart
	Quit      bool   // Quit requested through the input stream
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
