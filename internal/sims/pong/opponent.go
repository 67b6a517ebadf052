package pong

// Track moves the paddle a fixed fraction of the way from its vertical center
// toward the ball. It does not predict and does not clamp to the arena.
func Track(p *Paddle, b Ball, gain float64) {
	p.Y += (b.Y - p.CenterY()) * gain
}
