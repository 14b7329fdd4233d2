package game

import "github.com/flapterm/flapterm/internal/core"

// Particle tuning. Trail particles drift left behind the avatar and
// shrink until their lifetime runs out; death particles fly ballistically
// from the crash point and shrink to nothing.
const (
	trailDrift  = 2.0 // Horizontal drift per tick
	trailShrink = 0.1 // Radius lost per tick

	burstGravity = 0.3 // Vertical acceleration per tick
	burstShrink  = 0.2 // Size lost per tick
)

// burstPalette is the set of colors death particles are drawn from.
var burstPalette = []core.Color{
	core.ColorBirdLight,
	core.ColorBirdDark,
	core.ColorEmber,
}

// TrailParticle is one decorative marker in the avatar's exhaust trail.
// Physically inert: it never collides with anything.
type TrailParticle struct {
	X, Y     float64
	Radius   float64
	Lifetime int // Remaining ticks
}

// TrailSet holds the avatar's live trail particles.
type TrailSet struct {
	particles []TrailParticle
}

// Emit appends a new particle to the trail.
func (t *TrailSet) Emit(p TrailParticle) {
	t.particles = append(t.particles, p)
}

// Age advances every particle by one tick: lifetime counts down, expired
// particles are dropped, survivors drift left and shrink.
func (t *TrailSet) Age() {
	live := t.particles[:0]
	for _, p := range t.particles {
		p.Lifetime--
		if p.Lifetime <= 0 {
			continue
		}
		p.X -= trailDrift
		p.Radius -= trailShrink
		live = append(live, p)
	}
	t.particles = live
}

// Particles returns the live trail particles.
func (t *TrailSet) Particles() []TrailParticle {
	return t.particles
}

// Len returns the number of live particles.
func (t *TrailSet) Len() int {
	return len(t.particles)
}

// DeathParticle is one fragment of the crash burst.
type DeathParticle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color
}

// Burst holds the death particles spawned when the avatar crashes.
// Populated once per game over, cleared on restart.
type Burst struct {
	particles []DeathParticle
}

// Spawn fills the burst with count particles at (cx, cy), each with
// independent random velocity biased upward and a random palette color.
func (b *Burst) Spawn(cx, cy float64, count int, rng Rand) {
	b.particles = b.particles[:0]
	for i := 0; i < count; i++ {
		b.particles = append(b.particles, DeathParticle{
			X:     cx,
			Y:     cy,
			VX:    rng.FloatBetween(-4, 4),
			VY:    rng.FloatBetween(-6, 2),
			Size:  float64(rng.IntBetween(5, 10)),
			Color: burstPalette[rng.IntBetween(0, len(burstPalette)-1)],
		})
	}
}

// Age advances the burst one tick: gravity-accelerated ballistic motion
// with shrinking size. Particles are dropped once their size reaches zero.
func (b *Burst) Age() {
	live := b.particles[:0]
	for _, p := range b.particles {
		p.VY += burstGravity
		p.X += p.VX
		p.Y += p.VY
		p.Size -= burstShrink
		if p.Size <= 0 {
			continue
		}
		live = append(live, p)
	}
	b.particles = live
}

// Particles returns the live death particles.
func (b *Burst) Particles() []DeathParticle {
	return b.particles
}

// Len returns the number of live particles.
func (b *Burst) Len() int {
	return len(b.particles)
}

// Clear drops all particles.
func (b *Burst) Clear() {
	b.particles = b.particles[:0]
}
