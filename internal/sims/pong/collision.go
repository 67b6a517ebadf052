package pong

// Collides reports whether the ball's bounding square overlaps the paddle.
//
// The square spans [X, X+Radius] x [Y, Y+Radius], not the disc's full extent.
func Collides(b Ball, p Paddle) bool {
	return b.X < p.X+p.Width &&
		b.X+b.Radius > p.X &&
		b.Y < p.Y+p.Height &&
		b.Y+b.Radius > p.Y
}
