package pong

import "math"

// MaxDeflection is the steepest angle, in radians, a paddle edge hit produces.
const MaxDeflection = math.Pi / 4

// DeflectionAngle maps the impact offset from the paddle's vertical center
// linearly onto [-MaxDeflection, +MaxDeflection].
func DeflectionAngle(b Ball, p Paddle) float64 {
	collidePoint := b.Y - p.CenterY()
	return MaxDeflection * (collidePoint / (p.Height / 2))
}

// Deflect sends the ball back off the struck paddle and ramps its speed. The
// new velocity uses the speed from before the ramp. It returns the deflection
// angle.
func Deflect(b *Ball, p Paddle, a Arena) float64 {
	angle := DeflectionAngle(*b, p)
	direction := -1.0
	if b.X+b.Radius < a.MidX() {
		direction = 1
	}
	b.VX = direction * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)

	b.Speed += SpeedIncrement
	if b.Speed > MaxBallSpeed {
		b.Speed = MaxBallSpeed
	}
	return angle
}
