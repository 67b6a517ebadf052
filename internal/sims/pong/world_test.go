package pong

import (
	"math"
	"testing"

	"pong/internal/core"
)

func TestStepAdvancesBallWithoutCollision(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 390, Y: 300, Radius: BallRadius, VX: 8, VY: 0, Speed: 8}
	w.player.Y = 240

	snap := w.Tick()

	if snap.Ball.X != 398 || snap.Ball.Y != 300 {
		t.Fatalf("ball = (%v, %v), want (398, 300)", snap.Ball.X, snap.Ball.Y)
	}
	if snap.Ball.VX != 8 || snap.Ball.VY != 0 || snap.Ball.Speed != 8 {
		t.Fatalf("velocity/speed changed: %+v", snap.Ball)
	}
	if snap.Hit != SideNone || snap.Scored != SideNone {
		t.Fatalf("hit=%v scored=%v, want none", snap.Hit, snap.Scored)
	}
	if snap.Tick != 1 {
		t.Fatalf("tick = %d, want 1", snap.Tick)
	}
}

func TestStepDeflectsOffPlayerPaddle(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 23, Y: 300, Radius: BallRadius, VX: -8, VY: 0, Speed: 8}
	w.player.Y = 240

	snap := w.Tick()

	if snap.Hit != SidePlayer {
		t.Fatalf("hit = %v, want player", snap.Hit)
	}
	if snap.Ball.VX != 8 || snap.Ball.VY != 0 {
		t.Fatalf("velocity = (%v, %v), want (8, 0)", snap.Ball.VX, snap.Ball.VY)
	}
	if !near(snap.Ball.Speed, 8.2) {
		t.Fatalf("speed = %v, want 8.2", snap.Ball.Speed)
	}
	if w.Stats().PlayerHits != 1 {
		t.Fatalf("player hits = %d, want 1", w.Stats().PlayerHits)
	}
}

func TestStepScoresForOpponent(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 11, Y: 300, Radius: BallRadius, VX: -20, VY: 3, Speed: 20}

	snap := w.Tick()

	if snap.Opponent.Score != 1 || snap.Player.Score != 0 {
		t.Fatalf("score = %d:%d, want 0:1", snap.Player.Score, snap.Opponent.Score)
	}
	if snap.Scored != SideOpponent || snap.Phase != PhasePointScored {
		t.Fatalf("scored=%v phase=%v, want opponent/point-scored", snap.Scored, snap.Phase)
	}
	// Reset to the midline, flip VX, then integrate once.
	if snap.Ball.X != 400+20 {
		t.Fatalf("X = %v, want %v", snap.Ball.X, 420.0)
	}
	if snap.Ball.Speed != InitialBallSpeed {
		t.Fatalf("speed = %v, want %v", snap.Ball.Speed, InitialBallSpeed)
	}

	next := w.Tick()
	if next.Phase != PhasePlaying || next.Scored != SideNone {
		t.Fatalf("point-scored state leaked into the next tick: %v/%v", next.Phase, next.Scored)
	}
}

func TestStepScoresForPlayer(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 789, Y: 300, Radius: BallRadius, VX: 15, VY: -2, Speed: 15}

	snap := w.Tick()

	if snap.Player.Score != 1 || snap.Opponent.Score != 0 {
		t.Fatalf("score = %d:%d, want 1:0", snap.Player.Score, snap.Opponent.Score)
	}
	if snap.Ball.X != 400-15 {
		t.Fatalf("X = %v, want %v", snap.Ball.X, 385.0)
	}
	if snap.Ball.VY != -2 && snap.Ball.VY != 2 {
		t.Fatalf("VY magnitude changed across reset: %v", snap.Ball.VY)
	}
}

func TestStepBouncesOffWalls(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 400, Y: 590, Radius: BallRadius, VX: 0, VY: 5, Speed: 8}
	snap := w.Tick()
	if snap.Ball.VY != -5 {
		t.Fatalf("VY after bottom wall = %v, want -5", snap.Ball.VY)
	}

	w.ball = Ball{X: 400, Y: 14, Radius: BallRadius, VX: 0, VY: -5, Speed: 8}
	snap = w.Tick()
	if snap.Ball.VY != 5 {
		t.Fatalf("VY after top wall = %v, want 5", snap.Ball.VY)
	}
}

func TestSpeedNeverDecreasesWithinPointAndStaysCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoPlayer = true
	cfg.Seed = 99
	w := NewWithConfig(cfg)

	prev := w.Ball().Speed
	hits := 0
	for i := 0; i < 50000; i++ {
		snap := w.Tick()
		if snap.Ball.Speed > MaxBallSpeed {
			t.Fatalf("tick %d: speed %v exceeds max", snap.Tick, snap.Ball.Speed)
		}
		if snap.Phase == PhasePlaying && snap.Ball.Speed < prev {
			t.Fatalf("tick %d: speed dropped from %v to %v within a point", snap.Tick, prev, snap.Ball.Speed)
		}
		if snap.Hit != SideNone {
			hits++
		}
		prev = snap.Ball.Speed
	}
	if hits == 0 {
		t.Fatal("expected at least one paddle hit in attract mode")
	}
}

func TestResetDeterministic(t *testing.T) {
	run := func(seed int64) []Snapshot {
		w := New(800, 600)
		w.Reset(seed)
		out := make([]Snapshot, 0, 3000)
		for i := 0; i < 3000; i++ {
			out = append(out, w.Tick())
		}
		return out
	}
	a := run(42)
	b := run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d differs between identical seeds", i)
		}
	}
}

func TestPointerMovedCentersPaddle(t *testing.T) {
	w := New(800, 600)
	w.PointerMoved(100)
	if got := w.Player().Y; got != 40 {
		t.Fatalf("player Y = %v, want 40", got)
	}
	w.PointerMoved(-300)
	if got := w.Player().Y; got != -360 {
		t.Fatalf("player Y = %v, want -360 (no clamping)", got)
	}

	var sink core.PointerSink = w
	sink.PointerMoved(300)
	if got := w.Player().Y; got != 240 {
		t.Fatalf("player Y via PointerSink = %v, want 240", got)
	}
}

func TestAttractModeDrivesPlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoPlayer = true
	w := NewWithConfig(cfg)
	w.PointerMoved(0)
	if got := w.Player().Y; got != 240 {
		t.Fatalf("pointer moved attract paddle to %v", got)
	}
	w.ball.Y = 100
	w.ball.VY = 0
	before := w.Player().Y
	w.Step()
	if w.Player().Y >= before {
		t.Fatalf("player paddle did not track upward: %v -> %v", before, w.Player().Y)
	}
}

func TestOpponentTracksDuringStep(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 400, Y: 100, Radius: BallRadius, VX: 0, VY: 0, Speed: 8}
	w.opponent.Y = 240
	w.Step()
	want := 240 + (100-300)*OpponentGain
	if math.Abs(w.Opponent().Y-want) > eps {
		t.Fatalf("opponent Y = %v, want %v", w.Opponent().Y, want)
	}
}

func TestRegistryHasPongSims(t *testing.T) {
	for _, name := range []string{"pong", "attract"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := factory(map[string]string{"w": "640", "h": "480"})
		if sim.Name() != name {
			t.Fatalf("factory %q built sim named %q", name, sim.Name())
		}
		if sz := sim.Size(); sz.W != 640 || sz.H != 480 {
			t.Fatalf("size = %+v, want 640x480", sz)
		}
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{"w": "-4", "h": "abc", "seed": "12", "auto": "true"})
	if c.Width != 800 || c.Height != 600 {
		t.Fatalf("size = %dx%d, want defaults", c.Width, c.Height)
	}
	if c.Seed != 12 || !c.AutoPlayer {
		t.Fatalf("seed=%d auto=%v, want 12/true", c.Seed, c.AutoPlayer)
	}
}
