package pong

import (
	"testing"

	"pong/internal/core"
)

func TestFrameLayout(t *testing.T) {
	w := New(800, 600)
	w.player.Score = 3
	w.opponent.Score = 11
	f := w.Frame()

	dashes := 41 // y = 0, 15, ..., 600
	want := 1 + dashes + 2 + 2 + 1
	if len(f.Cmds) != want {
		t.Fatalf("frame has %d commands, want %d", len(f.Cmds), want)
	}

	bg := f.Cmds[0]
	if bg.Kind != core.DrawRect || bg.W != 800 || bg.H != 600 || bg.Color != colorBackground {
		t.Fatalf("background = %+v", bg)
	}

	for i := 1; i <= dashes; i++ {
		d := f.Cmds[i]
		if d.Kind != core.DrawRect || d.X != 397.5 || d.W != NetWidth || d.H != NetDashLength {
			t.Fatalf("dash %d = %+v", i, d)
		}
		if d.Y != float64(i-1)*NetDashPitch {
			t.Fatalf("dash %d at y=%v, want %v", i, d.Y, float64(i-1)*NetDashPitch)
		}
	}

	player := f.Cmds[dashes+1]
	opponent := f.Cmds[dashes+2]
	if player.Kind != core.DrawText || player.Text != "3" || player.X != 200 || player.Y != 300 {
		t.Fatalf("player score = %+v", player)
	}
	if opponent.Text != "11" || opponent.X != 600 || opponent.FontSize != ScoreFontSize {
		t.Fatalf("opponent score = %+v", opponent)
	}

	ball := f.Cmds[len(f.Cmds)-1]
	if ball.Kind != core.DrawCircle || ball.X != 400 || ball.Y != 300 || ball.R != BallRadius {
		t.Fatalf("ball = %+v", ball)
	}
	right := f.Cmds[len(f.Cmds)-2]
	if right.Kind != core.DrawRect || right.X != 782 || right.H != PaddleHeight {
		t.Fatalf("opponent paddle = %+v", right)
	}
}

func TestParametersExposeMatchState(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 15, Y: 300, Radius: BallRadius, VX: 0, Speed: 8}
	w.player.Y = 240
	w.Step()

	params := w.Parameters()
	p, ok := params.Lookup("player_hits")
	if !ok || p.Value != "1" {
		t.Fatalf("player_hits = %+v (found %v), want 1", p, ok)
	}
	p, ok = params.Lookup("ball_speed_max")
	if !ok || p.Value != "40" {
		t.Fatalf("ball_speed_max = %+v (found %v), want 40", p, ok)
	}
	if _, ok := params.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key succeeded")
	}
}

func TestCollisionBoxesFollowCandidate(t *testing.T) {
	w := New(800, 600)
	w.ball = Ball{X: 790, Y: 300, Radius: BallRadius}
	ball, paddle, overlap := w.CollisionBoxes()
	if paddle.X != 782 {
		t.Fatalf("candidate paddle x = %v, want opponent at 782", paddle.X)
	}
	if ball.W != BallRadius || !overlap {
		t.Fatalf("ball box = %+v overlap=%v", ball, overlap)
	}
}
