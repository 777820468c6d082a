package core

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
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

// HUDRows is the number of screen rows reserved above the playfield.
const HUDRows = 2

// FieldSize returns the playfield dimensions for this screen.
func (c RuntimeConfig) FieldSize() (w, h float64) {
	fh := c.ScreenH - HUDRows - 1 // bottom row is the ground line
	if fh < 1 {
		fh = 1
	}
	return float64(c.ScreenW), float64(fh)
}

// GameState summarizes the engine for the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
	Running  bool // Whether keystrokes are accepted
}
