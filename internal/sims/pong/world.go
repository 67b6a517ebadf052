package pong

import (
	"pong/internal/core"
	pcore "pong/pkg/core"
)

// Stats accumulates match counters for headless runs and the HUD.
type Stats struct {
	PlayerHits   int
	OpponentHits int
	PeakSpeed    float64
}

// World owns every piece of simulation state. It is not safe for concurrent
// use; frontends feed input from the goroutine that calls Step.
type World struct {
	cfg   Config
	arena Arena

	ball     Ball
	player   Paddle
	opponent Paddle

	tick   uint64
	phase  Phase
	scored Side
	hit    Side
	stats  Stats

	rng *pcore.RNG
}

// New returns a World with the provided arena dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options, ready
// to play.
func NewWithConfig(cfg Config) *World {
	w := &World{cfg: cfg}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string {
	if w.cfg.AutoPlayer {
		return "attract"
	}
	return "pong"
}

// Size reports the arena dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Reset starts a new match: centered ball, centered paddles, zero scores. A
// zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.arena = Arena{W: float64(w.cfg.Width), H: float64(w.cfg.Height)}
	w.ball = newBall(w.arena)
	w.player = newPaddle(0, w.arena)
	w.opponent = newPaddle(w.arena.W-PaddleWidth, w.arena)
	w.tick = 0
	w.phase = PhasePlaying
	w.scored = SideNone
	w.hit = SideNone
	w.stats = Stats{PeakSpeed: w.ball.Speed}
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.tick++
	w.phase = PhasePlaying
	w.scored = SideNone
	w.hit = SideNone

	if side := CheckScore(w.ball, w.arena); side != SideNone {
		w.paddle(side).Score++
		ResetBall(&w.ball, w.arena, w.rng.Float64())
		w.scored = side
		w.phase = PhasePointScored
	}

	w.ball.X += w.ball.VX
	w.ball.Y += w.ball.VY

	Track(&w.opponent, w.ball, OpponentGain)
	if w.cfg.AutoPlayer {
		Track(&w.player, w.ball, OpponentGain)
	}

	if w.ball.Y+w.ball.Radius > w.arena.H || w.ball.Y-w.ball.Radius < 0 {
		w.ball.VY = -w.ball.VY
	}

	side := w.candidate()
	if p := w.paddle(side); Collides(w.ball, *p) {
		Deflect(&w.ball, *p, w.arena)
		w.hit = side
		if side == SidePlayer {
			w.stats.PlayerHits++
		} else {
			w.stats.OpponentHits++
		}
		if w.ball.Speed > w.stats.PeakSpeed {
			w.stats.PeakSpeed = w.ball.Speed
		}
	}
}

// Tick advances one step and returns the resulting state.
func (w *World) Tick() Snapshot {
	w.Step()
	return w.Snapshot()
}

// SetPlayerY replaces the top edge of the player paddle. Out-of-arena values
// are kept as given.
func (w *World) SetPlayerY(y float64) { w.player.Y = y }

// PointerMoved centers the player paddle on a surface-relative pointer Y.
// Attract mode ignores the pointer.
func (w *World) PointerMoved(y float64) {
	if w.cfg.AutoPlayer {
		return
	}
	w.SetPlayerY(y - w.player.Height/2)
}

// Ball returns a copy of the ball.
func (w *World) Ball() Ball { return w.ball }

// Player returns a copy of the player paddle.
func (w *World) Player() Paddle { return w.player }

// Opponent returns a copy of the opponent paddle.
func (w *World) Opponent() Paddle { return w.opponent }

// Arena returns the arena dimensions used by the last tick.
func (w *World) Arena() Arena { return w.arena }

// Stats returns the match counters.
func (w *World) Stats() Stats { return w.stats }

// Scores returns the player and opponent scores.
func (w *World) Scores() (player, opponent int) {
	return w.player.Score, w.opponent.Score
}

// candidate picks the paddle on the ball's half of the arena.
func (w *World) candidate() Side {
	if w.ball.X < w.arena.MidX() {
		return SidePlayer
	}
	return SideOpponent
}

func (w *World) paddle(side Side) *Paddle {
	if side == SidePlayer {
		return &w.player
	}
	return &w.opponent
}

func init() {
	core.Register("pong", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("attract", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.AutoPlayer = true
		return NewWithConfig(c)
	})
}
