// Package game implements the simulation core: avatar physics, the pipe
// stream, particle effects, collision and scoring, and the
// PLAYING/GAME_OVER session state machine. Everything runs in a fixed
// 800x600 pixel coordinate space at a fixed tick rate; presentation is
// someone else's problem and only ever sees read-only snapshots.
package game

// Config is the immutable set of simulation constants, fixed at session
// construction. Not runtime-configurable; a struct rather than package
// globals so tests can inject alternate physics.
type Config struct {
	ScreenW float64 // Simulation width in pixels
	ScreenH float64 // Simulation height in pixels

	TickRate int // Simulation ticks per second

	Gravity     float64 // Downward acceleration per tick
	JumpImpulse float64 // Velocity set on jump (negative = up)

	AvatarW      float64 // Avatar hitbox width
	AvatarH      float64 // Avatar hitbox height
	AvatarStartX float64 // Spawn position, avatar center
	AvatarStartY float64

	PipeSpeed       float64 // Horizontal pipe velocity per tick (negative = left)
	PipeWidth       float64
	GapSize         float64 // Vertical opening between pipe halves
	GapMargin       float64 // Gap center is drawn from [GapMargin, ScreenH-GapMargin]
	SpawnIntervalMS float64 // Milliseconds between pipe spawns
	SpawnMargin     float64 // Pipes spawn at ScreenW + SpawnMargin

	GroundHeight float64 // Solid band at the bottom of the screen

	ShakeTicks int // Screen shake duration after a crash
	ShakeAmp   int // Max shake offset in pixels, each axis
	BurstSize  int // Death particles spawned on a crash
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,

		Gravity:     0.4,
		JumpImpulse: -9,

		AvatarW:      45,
		AvatarH:      35,
		AvatarStartX: 150,
		AvatarStartY: 300,

		PipeSpeed:       -4,
		PipeWidth:       80,
		GapSize:         180,
		GapMargin:       200,
		SpawnIntervalMS: 1400,
		SpawnMargin:     50,

		GroundHeight: 100,

		ShakeTicks: 20,
		ShakeAmp:   5,
		BurstSize:  30,
	}
}

// GroundY returns the y-coordinate of the ground line.
func (c Config) GroundY() float64 {
	return c.ScreenH - c.GroundHeight
}
