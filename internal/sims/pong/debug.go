package pong

import "pong/internal/core"

// CollisionBoxes returns the ball's collision square, the paddle it is
// currently tested against, and whether they overlap.
func (w *World) CollisionBoxes() (ball, paddle core.Box, overlap bool) {
	p := w.paddle(w.candidate())
	return w.ball.Bounds(), p.Bounds(), Collides(w.ball, *p)
}

// BallVelocity returns the ball center and its per-tick displacement.
func (w *World) BallVelocity() (x, y, vx, vy float64) {
	return w.ball.X, w.ball.Y, w.ball.VX, w.ball.VY
}

// TrackingTarget returns the opponent paddle center and the point it steers
// toward.
func (w *World) TrackingTarget() (fromX, fromY, toX, toY float64) {
	o := w.opponent
	return o.X + o.Width/2, o.CenterY(), o.X + o.Width/2, w.ball.Y
}
