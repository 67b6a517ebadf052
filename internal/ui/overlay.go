//go:build ebiten

package ui

import (
	"image/color"

	"pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type collisionBoxProvider interface {
	CollisionBoxes() (ball, paddle core.Box, overlap bool)
}

type velocityProvider interface {
	BallVelocity() (x, y, vx, vy float64)
}

type trackingProvider interface {
	TrackingTarget() (fromX, fromY, toX, toY float64)
}

// velocityLookahead stretches the per-tick velocity so the arrow is visible.
const velocityLookahead = 6

// Overlay draws optional debugging visuals on top of the play field.
type Overlay struct {
	sim   core.Sim
	scale int

	showBoxes    bool
	showVelocity bool
	showTracking bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBoxes = !o.showBoxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showTracking = !o.showTracking
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.scale)

	if o.showBoxes {
		if provider, ok := o.sim.(collisionBoxProvider); ok {
			ball, paddle, overlap := provider.CollisionBoxes()
			col := color.RGBA{R: 80, G: 220, B: 120, A: 255}
			if overlap {
				col = color.RGBA{R: 255, G: 80, B: 60, A: 255}
			}
			o.strokeBox(screen, ball, col)
			o.strokeBox(screen, paddle, col)
		}
	}

	if o.showVelocity {
		if provider, ok := o.sim.(velocityProvider); ok {
			x, y, vx, vy := provider.BallVelocity()
			x1 := x + vx*velocityLookahead
			y1 := y + vy*velocityLookahead
			col := color.RGBA{R: 255, G: 210, B: 40, A: 255}
			vector.StrokeLine(screen, float32(x)*s, float32(y)*s, float32(x1)*s, float32(y1)*s, 2, col, true)
			vector.FillCircle(screen, float32(x1)*s, float32(y1)*s, 3, col, true)
		}
	}

	if o.showTracking {
		if provider, ok := o.sim.(trackingProvider); ok {
			fx, fy, tx, ty := provider.TrackingTarget()
			col := color.RGBA{R: 90, G: 160, B: 255, A: 255}
			vector.StrokeLine(screen, float32(fx)*s, float32(fy)*s, float32(tx)*s, float32(ty)*s, 1, col, false)
			vector.FillCircle(screen, float32(tx)*s, float32(ty)*s, 4, col, true)
		}
	}
}

func (o *Overlay) strokeBox(screen *ebiten.Image, b core.Box, col color.RGBA) {
	s := float32(o.scale)
	vector.StrokeRect(screen, float32(b.X)*s, float32(b.Y)*s, float32(b.W)*s, float32(b.H)*s, 1, col, false)
}
