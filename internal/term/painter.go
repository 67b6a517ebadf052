package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"pong/internal/core"
	"pong/internal/render"
)

const halfBlock = '▀'

// Painter draws frames onto a terminal. Each cell shows two vertically
// stacked pixels: the glyph's foreground is the upper one, the background
// the lower one.
type Painter struct {
	screen tcell.Screen
}

// NewPainter wraps an initialized screen.
func NewPainter(s tcell.Screen) *Painter {
	return &Painter{screen: s}
}

// Paint rasterizes f to the current screen size and shows it.
func (p *Painter) Paint(f core.Frame) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	r := render.Rasterize(f, cols, rows*2)
	colors := r.Palette.Colors()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := cellColor(colors, r.Grid.At(x, y*2))
			bottom := cellColor(colors, r.Grid.At(x, y*2+1))
			p.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	for _, l := range r.Labels {
		p.drawLabel(r, l)
	}
	p.screen.Show()
}

// ArenaY converts a terminal row into an arena Y coordinate at the row's
// vertical center.
func (p *Painter) ArenaY(row int, arenaH float64) float64 {
	_, rows := p.screen.Size()
	if rows <= 0 {
		return 0
	}
	return (float64(row) + 0.5) * arenaH / float64(rows)
}

// drawLabel writes text one rune per cell with its baseline on the label's
// pixel row, over whatever background the raster left there.
func (p *Painter) drawLabel(r *render.Raster, l render.Label) {
	colors := r.Palette.Colors()
	x := int(l.X)
	y := int(l.Y) / 2
	for _, ch := range l.Text {
		bg := cellColor(colors, r.Grid.At(x, y*2+1))
		style := tcell.StyleDefault.Foreground(rgb(l.Color)).Background(bg).Bold(true)
		p.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func cellColor(palette []color.RGBA, idx uint8) tcell.Color {
	if int(idx) >= len(palette) || idx == 0 {
		return tcell.ColorBlack
	}
	return rgb(palette[idx])
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
