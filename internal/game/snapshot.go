package game

import "github.com/flapterm/flapterm/internal/core"

// DrawKind tags a drawable so the renderer can pick glyphs. The set of
// entity kinds is closed: pipes, the avatar, particles, nothing else.
type DrawKind int

const (
	DrawPipe DrawKind = iota
	DrawAvatar
	DrawParticle
)

// Drawable is one renderable box in simulation pixel space.
type Drawable struct {
	Kind  DrawKind
	Box   core.RectF
	Color core.Color
}

// Snapshot is the per-tick render contract handed to the presentation
// layer. It is a value copy of everything a renderer needs; the
// simulation state itself is never exposed.
type Snapshot struct {
	Tick   uint64
	State  State
	Paused bool
	Score  int

	// Shake offset in pixels; zero when the shake timer has expired.
	ShakeX int
	ShakeY int

	// AvatarVel lets the renderer pose the avatar (climbing vs diving).
	AvatarVel float64

	// Drawables in back-to-front draw order: pipe halves, avatar, particles.
	Drawables []Drawable
}

// Snapshot builds the current render snapshot. Pure read: the shake
// offset was sampled during Step, so calling this any number of times
// per tick yields identical results.
func (g *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Paused:    g.paused,
		Score:     g.score,
		ShakeX:    g.shakeX,
		ShakeY:    g.shakeY,
		AvatarVel: g.avatar.Vel,
	}

	for _, p := range g.stream.Pairs() {
		snap.Drawables = append(snap.Drawables,
			Drawable{Kind: DrawPipe, Box: p.TopRect(g.cfg), Color: core.ColorPipe},
			Drawable{Kind: DrawPipe, Box: p.BottomRect(g.cfg), Color: core.ColorPipe},
		)
	}

	snap.Drawables = append(snap.Drawables, Drawable{
		Kind:  DrawAvatar,
		Box:   g.avatar.Rect(),
		Color: core.ColorBirdLight,
	})

	for _, p := range g.avatar.Trail().Particles() {
		if p.Radius <= 0 {
			continue
		}
		snap.Drawables = append(snap.Drawables, Drawable{
			Kind:  DrawParticle,
			Box:   core.NewRectF(p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2),
			Color: core.ColorTrail,
		})
	}

	for _, p := range g.burst.Particles() {
		snap.Drawables = append(snap.Drawables, Drawable{
			Kind:  DrawParticle,
			Box:   core.NewRectF(p.X, p.Y, p.Size, p.Size),
			Color: p.Color,
		})
	}

	return snap
}
