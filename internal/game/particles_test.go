package game

import (
	"math"
	"testing"

	"github.com/flapterm/flapterm/internal/core"
)

func TestTrailSetAge(t *testing.T) {
	var trail TrailSet
	trail.Emit(TrailParticle{X: 100, Y: 50, Radius: 3, Lifetime: 2})

	trail.Age()
	if trail.Len() != 1 {
		t.Fatalf("particle with lifetime 2 should survive one tick, got len %d", trail.Len())
	}
	p := trail.Particles()[0]
	if p.Lifetime != 1 {
		t.Errorf("Lifetime = %d, expected 1", p.Lifetime)
	}
	if p.X != 98 {
		t.Errorf("X = %f, expected 98 (drift left by 2)", p.X)
	}
	if math.Abs(p.Radius-2.9) > 1e-9 {
		t.Errorf("Radius = %f, expected 2.9", p.Radius)
	}

	trail.Age()
	if trail.Len() != 0 {
		t.Errorf("particle should be removed when lifetime reaches 0, got len %d", trail.Len())
	}
}

func TestTrailSetAgeKeepsOrder(t *testing.T) {
	var trail TrailSet
	trail.Emit(TrailParticle{X: 1, Lifetime: 1})
	trail.Emit(TrailParticle{X: 2, Lifetime: 5})
	trail.Emit(TrailParticle{X: 3, Lifetime: 5})

	trail.Age()
	ps := trail.Particles()
	if len(ps) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(ps))
	}
	if ps[0].X != 0 || ps[1].X != 1 {
		t.Errorf("survivors out of order: %v", ps)
	}
}

func TestBurstSpawn(t *testing.T) {
	var b Burst
	b.Spawn(400, 300, 30, NewRand(7))

	if b.Len() != 30 {
		t.Fatalf("Spawn should create exactly 30 particles, got %d", b.Len())
	}
	for _, p := range b.Particles() {
		if p.X != 400 || p.Y != 300 {
			t.Errorf("particle should start at the burst center, got (%f, %f)", p.X, p.Y)
		}
		if p.VX < -4 || p.VX >= 4 {
			t.Errorf("VX = %f, out of [-4, 4)", p.VX)
		}
		if p.VY < -6 || p.VY >= 2 {
			t.Errorf("VY = %f, out of [-6, 2)", p.VY)
		}
		if p.Size < 5 || p.Size > 10 {
			t.Errorf("Size = %f, out of [5, 10]", p.Size)
		}
	}
}

func TestBurstSpawnReplacesPrevious(t *testing.T) {
	var b Burst
	b.Spawn(0, 0, 10, midRand{})
	b.Spawn(0, 0, 30, midRand{})

	if b.Len() != 30 {
		t.Errorf("second Spawn should replace the first, got len %d", b.Len())
	}
}

func TestBurstAgeBallistics(t *testing.T) {
	var b Burst
	b.Spawn(100, 100, 1, midRand{})

	// midRand gives VX=0, VY=-2, Size=7
	b.Age()
	p := b.Particles()[0]
	if math.Abs(p.VY-(-1.7)) > 1e-9 {
		t.Errorf("VY = %f, expected -1.7 after one tick of gravity", p.VY)
	}
	if math.Abs(p.Y-98.3) > 1e-9 {
		t.Errorf("Y = %f, expected 98.3", p.Y)
	}
	if p.X != 100 {
		t.Errorf("X = %f, expected unchanged with zero VX", p.X)
	}
	if math.Abs(p.Size-6.8) > 1e-9 {
		t.Errorf("Size = %f, expected 6.8", p.Size)
	}
}

func TestBurstAgePrunesDeadParticles(t *testing.T) {
	var b Burst
	b.Spawn(0, 0, 5, midRand{})

	// Size 7 shrinking by 0.2 per tick: gone after 35 ticks
	for i := 0; i < 35; i++ {
		b.Age()
	}
	if b.Len() != 0 {
		t.Errorf("all particles should be pruned once size reaches 0, got %d", b.Len())
	}
}

func TestBurstPaletteColors(t *testing.T) {
	var b Burst
	b.Spawn(0, 0, 50, NewRand(3))

	valid := map[core.Color]bool{
		core.ColorBirdLight: true,
		core.ColorBirdDark:  true,
		core.ColorEmber:     true,
	}
	for _, p := range b.Particles() {
		if !valid[p.Color] {
			t.Fatalf("particle color %d not in palette", p.Color)
		}
	}
}
