package pong

import (
	"image/color"

	"pong/internal/core"
)

// Ball is the moving disc. Speed is tracked separately from the velocity
// vector and only the deflection resolver re-derives one from the other.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Speed  float64
}

// Bounds returns the square used by the collision test: it extends from the
// center by +Radius only, matching Collides.
func (b Ball) Bounds() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Radius, H: b.Radius}
}

// Paddle is a vertical bat anchored at its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
	Color         color.RGBA
}

// CenterY returns the vertical midpoint of the paddle.
func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Bounds returns the paddle rectangle.
func (p Paddle) Bounds() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Arena is the playing surface; its size is read each tick.
type Arena struct {
	W, H float64
}

// MidX returns the horizontal midline.
func (a Arena) MidX() float64 { return a.W / 2 }

func newBall(a Arena) Ball {
	return Ball{
		X:      a.W / 2,
		Y:      a.H / 2,
		Radius: BallRadius,
		VX:     InitialBallSpeed,
		VY:     InitialBallSpeed,
		Speed:  InitialBallSpeed,
	}
}

func newPaddle(x float64, a Arena) Paddle {
	return Paddle{
		X:      x,
		Y:      a.H/2 - PaddleHeight/2,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Color:  colorForeground,
	}
}
