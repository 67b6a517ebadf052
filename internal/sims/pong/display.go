package pong

import (
	"strconv"

	"pong/internal/core"
)

// Frame renders the current state as draw commands.
func (w *World) Frame() core.Frame {
	return w.Snapshot().Frame()
}

// Frame lists the draw commands for the snapshot: background, net, scores,
// paddles, then the ball on top.
func (s Snapshot) Frame() core.Frame {
	a := s.Arena
	f := core.Frame{W: a.W, H: a.H}
	f.Rect(0, 0, a.W, a.H, colorBackground)
	for y := 0.0; y <= a.H; y += NetDashPitch {
		f.Rect(a.MidX()-NetWidth/2, y, NetWidth, NetDashLength, colorForeground)
	}

	f.Text(strconv.Itoa(s.Player.Score), a.W/4, a.H/2, ScoreFontSize, colorForeground)
	f.Text(strconv.Itoa(s.Opponent.Score), a.W/4*3, a.H/2, ScoreFontSize, colorForeground)

	for _, p := range []Paddle{s.Player, s.Opponent} {
		f.Rect(p.X, p.Y, p.Width, p.Height, p.Color)
	}
	f.Circle(s.Ball.X, s.Ball.Y, s.Ball.Radius, colorForeground)
	return f
}
