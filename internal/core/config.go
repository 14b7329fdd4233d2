package core

// RuntimeConfig carries the platform-level parameters handed to a session
// at startup: terminal size for projection, tick rate for the loop, and
// the RNG seed for the simulation's random source.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means time-based in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
