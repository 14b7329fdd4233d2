package game

import (
	"math"
	"testing"
)

func TestAvatarSpawn(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	if a.CenterX() != 150 || a.CenterY() != 300 {
		t.Errorf("avatar should spawn centered at (150, 300), got (%f, %f)", a.CenterX(), a.CenterY())
	}
	if a.Vel != 0 {
		t.Errorf("spawn velocity = %f, expected 0", a.Vel)
	}
	if a.W != 45 || a.H != 35 {
		t.Errorf("hitbox = %fx%f, expected 45x35", a.W, a.H)
	}
}

func TestAvatarGravityTruncation(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	// One tick with no jump: velocity 0.4, but the truncated step is 0
	// so the position does not move yet.
	a.Update()
	if math.Abs(a.Vel-0.4) > 1e-9 {
		t.Errorf("Vel = %f, expected 0.4", a.Vel)
	}
	if a.CenterY() != 300 {
		t.Errorf("CenterY = %f, expected 300 (truncated step)", a.CenterY())
	}

	// Velocity keeps accumulating by exactly the gravity constant.
	a.Update()
	if math.Abs(a.Vel-0.8) > 1e-9 {
		t.Errorf("Vel = %f, expected 0.8", a.Vel)
	}

	// Third tick: velocity 1.2, truncated step 1.
	y := a.Y
	a.Update()
	if a.Y != y+1 {
		t.Errorf("Y moved by %f, expected 1", a.Y-y)
	}
}

func TestAvatarJump(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	// Jump replaces velocity regardless of prior value.
	a.Vel = 7.5
	a.Jump()
	if a.Vel != -9 {
		t.Errorf("Vel after jump = %f, expected -9", a.Vel)
	}

	// Jumping while already rising is valid.
	a.Jump()
	if a.Vel != -9 {
		t.Errorf("Vel after double jump = %f, expected -9", a.Vel)
	}
}

func TestAvatarTopClamp(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})
	a.Y = 2
	a.Vel = -9

	a.Update()
	if a.Y != 0 {
		t.Errorf("Y = %f, expected clamp to 0", a.Y)
	}
	if a.Vel != 0 {
		t.Errorf("Vel = %f, expected 0 after clamp", a.Vel)
	}

	// A clamped avatar immediately starts falling again.
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Y <= 0 {
		t.Errorf("avatar should fall away from the top, Y = %f", a.Y)
	}
}

func TestAvatarNeverAboveTop(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	// Hammer jump every tick; the top edge must never go negative.
	for i := 0; i < 200; i++ {
		a.Jump()
		a.Update()
		if a.Y < 0 {
			t.Fatalf("top edge went negative on tick %d: %f", i, a.Y)
		}
	}
}

func TestAvatarTrailEmission(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	a.Update()
	if a.Trail().Len() != 1 {
		t.Fatalf("one trail particle should be emitted per tick, got %d", a.Trail().Len())
	}

	// The fresh particle is aged in the same tick: with midRand it was
	// emitted with radius 3 and lifetime 15 at x = left-5.
	p := a.Trail().Particles()[0]
	if p.Lifetime != 14 {
		t.Errorf("Lifetime = %d, expected 14", p.Lifetime)
	}
	if math.Abs(p.Radius-2.9) > 1e-9 {
		t.Errorf("Radius = %f, expected 2.9", p.Radius)
	}
	if p.X != a.X-5-2 {
		t.Errorf("X = %f, expected emitted at left-5 then drifted by 2", p.X)
	}
}

func TestAvatarTrailSaturates(t *testing.T) {
	a := NewAvatar(DefaultConfig(), midRand{})

	// With a constant lifetime of 15 the trail holds at most 14 live
	// particles (each one is aged on its emission tick).
	for i := 0; i < 50; i++ {
		a.Update()
	}
	if a.Trail().Len() != 14 {
		t.Errorf("trail length = %d, expected steady state 14", a.Trail().Len())
	}
}
