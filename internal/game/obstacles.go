package game

import "github.com/flapterm/flapterm/internal/core"

// PipePair is one spawned obstacle: two vertically-opposed pipes sharing
// a gap. The halves are derived geometry; the pair is the logical unit
// the scoring rules see.
type PipePair struct {
	X      float64 // Left edge
	GapY   float64 // Gap center
	Passed bool    // Set once the avatar has passed; never reset
}

// TopRect returns the collision box of the upper pipe half.
func (p PipePair) TopRect(cfg Config) core.RectF {
	h := p.GapY - cfg.GapSize/2
	return core.NewRectF(p.X, 0, cfg.PipeWidth, h)
}

// BottomRect returns the collision box of the lower pipe half.
func (p PipePair) BottomRect(cfg Config) core.RectF {
	top := p.GapY + cfg.GapSize/2
	return core.NewRectF(p.X, top, cfg.PipeWidth, cfg.ScreenH-top)
}

// CenterX returns the pair's horizontal center, shared by both halves.
func (p PipePair) CenterX(cfg Config) float64 {
	return p.X + cfg.PipeWidth/2
}

// Right returns the x-coordinate of the pair's right edge.
func (p PipePair) Right(cfg Config) float64 {
	return p.X + cfg.PipeWidth
}

// Stream owns the live pipe pairs in spawn order (left to right on
// screen) and the spawn-interval timer.
type Stream struct {
	pairs   []PipePair
	spawnMS float64 // Accumulated time toward the next spawn

	cfg Config
	rng Rand
}

// NewStream creates an empty stream.
func NewStream(cfg Config, rng Rand) *Stream {
	return &Stream{
		pairs: make([]PipePair, 0, 8),
		cfg:   cfg,
		rng:   rng,
	}
}

// Reset drops all pipes and restarts the spawn timer.
func (st *Stream) Reset() {
	st.pairs = st.pairs[:0]
	st.spawnMS = 0
}

// Advance runs one tick of spawning and scrolling. Retirement is a
// separate sweep so scoring can run against the full set first.
func (st *Stream) Advance() {
	st.spawnMS += 1000.0 / float64(st.cfg.TickRate)
	if st.spawnMS >= st.cfg.SpawnIntervalMS {
		st.spawnMS -= st.cfg.SpawnIntervalMS
		st.spawn()
	}

	for i := range st.pairs {
		st.pairs[i].X += st.cfg.PipeSpeed
	}
}

// spawn creates a pair just off the right edge with a uniformly random
// gap center inside the playable band.
func (st *Stream) spawn() {
	lo := int(st.cfg.GapMargin)
	hi := int(st.cfg.ScreenH - st.cfg.GapMargin)
	st.pairs = append(st.pairs, PipePair{
		X:    st.cfg.ScreenW + st.cfg.SpawnMargin,
		GapY: float64(st.rng.IntBetween(lo, hi)),
	})
}

// Retire removes pairs whose right edge has scrolled past the left edge
// of the screen.
func (st *Stream) Retire() {
	live := st.pairs[:0]
	for _, p := range st.pairs {
		if p.Right(st.cfg) >= 0 {
			live = append(live, p)
		}
	}
	st.pairs = live
}

// Pairs returns the live pairs. Callers index into the slice to mutate
// the Passed flag; the stream retains ownership.
func (st *Stream) Pairs() []PipePair {
	return st.pairs
}

// Len returns the number of live pairs.
func (st *Stream) Len() int {
	return len(st.pairs)
}

// Collides reports whether the given box overlaps any pipe half.
func (st *Stream) Collides(box core.RectF) bool {
	for _, p := range st.pairs {
		if box.Intersects(p.TopRect(st.cfg)) || box.Intersects(p.BottomRect(st.cfg)) {
			return true
		}
	}
	return false
}
