package game

import (
	"math"

	"github.com/flapterm/flapterm/internal/core"
)

// Avatar is the player-controlled bird: a falling box that jumps on input
// and continuously sheds trail particles.
type Avatar struct {
	X, Y float64 // Top-left corner
	W, H float64
	Vel  float64 // Vertical velocity, positive = down

	trail TrailSet

	cfg Config
	rng Rand
}

// NewAvatar creates an avatar at its spawn position with zero velocity.
func NewAvatar(cfg Config, rng Rand) *Avatar {
	return &Avatar{
		X:   cfg.AvatarStartX - cfg.AvatarW/2,
		Y:   cfg.AvatarStartY - cfg.AvatarH/2,
		W:   cfg.AvatarW,
		H:   cfg.AvatarH,
		cfg: cfg,
		rng: rng,
	}
}

// Update advances the avatar one tick: gravity, movement, top clamp, and
// the trail effect. The vertical step is the velocity truncated toward
// zero, so the avatar only moves by whole pixels.
func (a *Avatar) Update() {
	a.Vel += a.cfg.Gravity
	a.Y += math.Trunc(a.Vel)

	// Never leave the top of the screen
	if a.Y < 0 {
		a.Y = 0
		a.Vel = 0
	}

	a.emitTrail()
	a.trail.Age()
}

// Jump sets the upward impulse. Valid mid-fall or mid-rise; it replaces
// whatever velocity the avatar had.
func (a *Avatar) Jump() {
	a.Vel = a.cfg.JumpImpulse
}

// emitTrail sheds one particle just behind the avatar with jittered
// vertical offset, radius and lifetime.
func (a *Avatar) emitTrail() {
	a.trail.Emit(TrailParticle{
		X:        a.X - 5,
		Y:        a.CenterY() + float64(a.rng.IntBetween(-5, 5)),
		Radius:   float64(a.rng.IntBetween(2, 4)),
		Lifetime: a.rng.IntBetween(10, 20),
	})
}

// Rect returns the avatar's collision box.
func (a *Avatar) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

// CenterX returns the horizontal center.
func (a *Avatar) CenterX() float64 {
	return a.X + a.W/2
}

// CenterY returns the vertical center.
func (a *Avatar) CenterY() float64 {
	return a.Y + a.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (a *Avatar) Bottom() float64 {
	return a.Y + a.H
}

// Trail returns the avatar's trail particle set.
func (a *Avatar) Trail() *TrailSet {
	return &a.trail
}
