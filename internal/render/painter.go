//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pong/internal/core"
)

// FramePainter draws core.Frame commands onto an ebiten image.
type FramePainter struct {
	face  *text.GoXFace
	scale float64
}

// NewFramePainter returns a painter that maps one arena unit to scale pixels.
func NewFramePainter(scale float64) *FramePainter {
	if scale <= 0 {
		scale = 1
	}
	return &FramePainter{face: text.NewGoXFace(basicfont.Face7x13), scale: scale}
}

// Draw paints every command of f in order.
func (p *FramePainter) Draw(dst *ebiten.Image, f core.Frame) {
	s := float32(p.scale)
	for _, cmd := range f.Cmds {
		switch cmd.Kind {
		case core.DrawRect:
			vector.FillRect(dst, float32(cmd.X)*s, float32(cmd.Y)*s, float32(cmd.W)*s, float32(cmd.H)*s, cmd.Color, false)
		case core.DrawCircle:
			vector.FillCircle(dst, float32(cmd.X)*s, float32(cmd.Y)*s, float32(cmd.R)*s, cmd.Color, true)
		case core.DrawText:
			p.drawText(dst, cmd)
		}
	}
}

func (p *FramePainter) drawText(dst *ebiten.Image, cmd core.DrawCmd) {
	face := basicfont.Face7x13
	k := cmd.FontSize * p.scale / float64(face.Height)
	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(cmd.X*p.scale, cmd.Y*p.scale-float64(face.Ascent)*k)
	op.ColorScale.ScaleWithColor(cmd.Color)
	text.Draw(dst, cmd.Text, p.face, op)
}
