package game

import "github.com/flapterm/flapterm/internal/core"

// State is the session's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the game state machine. It owns the avatar, the pipe stream
// and the death burst, advances them on fixed ticks, and exposes a
// read-only snapshot to the presentation layer. Single-threaded: one
// goroutine drives Step, nothing else mutates the graph.
type Session struct {
	cfg Config
	rng Rand

	avatar *Avatar
	stream *Stream
	burst  Burst

	state  State
	score  int
	paused bool

	shake  int // Remaining screen-shake ticks
	shakeX int // Offset sampled for the current tick
	shakeY int

	tick uint64
}

// NewSession creates a session with the given constants and random
// source, ready to play.
func NewSession(cfg Config, rng Rand) *Session {
	s := &Session{
		cfg: cfg,
		rng: rng,
	}
	s.stream = NewStream(cfg, rng)
	s.Reset()
	return s
}

// Reset fully reinitializes the session: fresh avatar, empty stream,
// zero score, no shake, no death particles, state PLAYING.
func (g *Session) Reset() {
	g.avatar = NewAvatar(g.cfg, g.rng)
	g.stream.Reset()
	g.burst.Clear()
	g.state = StatePlaying
	g.score = 0
	g.paused = false
	g.shake = 0
	g.shakeX, g.shakeY = 0, 0
	g.tick = 0
}

// Step advances the simulation by one tick. The input frame carries
// every action drained from the platform this tick; actions invalid for
// the current state are ignored silently.
func (g *Session) Step(in core.InputFrame) {
	switch g.state {
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}
		if in.Has(core.ActionJump) {
			g.avatar.Jump()
		}
		g.stepPlaying()

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset()
			return
		}
		g.stepGameOver()
	}

	g.tick++
}

// stepPlaying runs one PLAYING tick: avatar physics, stream advance,
// collision, scoring, retirement sweep, shake countdown.
func (g *Session) stepPlaying() {
	g.avatar.Update()
	g.stream.Advance()

	crashed := g.stream.Collides(g.avatar.Rect())

	// Ground contact clamps the avatar even when a pipe already ended
	// the game this tick.
	if g.avatar.Bottom() >= g.cfg.GroundY() {
		g.avatar.Y = g.cfg.GroundY() - g.avatar.H
		crashed = true
	}

	if crashed {
		g.endGame()
	}

	g.updateScore()
	g.stream.Retire()
	g.tickShake()
}

// stepGameOver runs one GAME_OVER tick: pipes stay frozen, the death
// burst ages, shake keeps counting down.
func (g *Session) stepGameOver() {
	g.burst.Age()
	g.tickShake()
}

// endGame transitions to GAME_OVER, arms the screen shake and spawns the
// death burst at the avatar's last center position.
func (g *Session) endGame() {
	g.state = StateGameOver
	g.shake = g.cfg.ShakeTicks
	g.burst.Spawn(g.avatar.CenterX(), g.avatar.CenterY(), g.cfg.BurstSize, g.rng)
}

// updateScore awards one point per pair whose center has crossed behind
// the avatar's center. The flag lives on the pair, so each pair scores
// exactly once and the flag never reverts.
func (g *Session) updateScore() {
	pairs := g.stream.Pairs()
	for i := range pairs {
		if !pairs[i].Passed && pairs[i].CenterX(g.cfg) < g.avatar.CenterX() {
			pairs[i].Passed = true
			g.score++
		}
	}
}

// tickShake counts the shake timer down and samples this tick's offset.
// Sampling here keeps Snapshot a pure read.
func (g *Session) tickShake() {
	if g.shake > 0 {
		g.shake--
		g.shakeX = g.rng.IntBetween(-g.cfg.ShakeAmp, g.cfg.ShakeAmp)
		g.shakeY = g.rng.IntBetween(-g.cfg.ShakeAmp, g.cfg.ShakeAmp)
		return
	}
	g.shakeX, g.shakeY = 0, 0
}

// State returns the current lifecycle state.
func (g *Session) State() State {
	return g.state
}

// Score returns the current score.
func (g *Session) Score() int {
	return g.score
}

// Paused reports whether the simulation is paused.
func (g *Session) Paused() bool {
	return g.paused
}

// Tick returns the number of ticks stepped since the last reset.
func (g *Session) Tick() uint64 {
	return g.tick
}

// Config returns the session's simulation constants.
func (g *Session) Config() Config {
	return g.cfg
}
