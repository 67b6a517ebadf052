package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pong/internal/core"
)

// Label is a text command translated into raster coordinates.
type Label struct {
	Text  string
	X, Y  float64 // baseline origin
	Size  float64 // glyph height in raster units
	Color color.RGBA
}

// Raster holds a frame's shapes as palette indices plus its text labels,
// which are left to the surface to draw.
type Raster struct {
	Grid    *core.ByteGrid
	Palette *Palette
	Labels  []Label
}

// Rasterize scales the frame onto a cols x rows grid.
func Rasterize(f core.Frame, cols, rows int) *Raster {
	r := &Raster{Grid: core.NewByteGrid(cols, rows), Palette: NewPalette()}
	if f.W <= 0 || f.H <= 0 {
		return r
	}
	sx := float64(r.Grid.W) / f.W
	sy := float64(r.Grid.H) / f.H
	for _, cmd := range f.Cmds {
		switch cmd.Kind {
		case core.DrawRect:
			r.Grid.FillRect(cmd.X*sx, cmd.Y*sy, cmd.W*sx, cmd.H*sy, r.Palette.Index(cmd.Color))
		case core.DrawCircle:
			// Non-uniform scaling keeps the disc round using the smaller axis.
			rad := cmd.R * math.Min(sx, sy)
			r.Grid.FillCircle(cmd.X*sx, cmd.Y*sy, rad, r.Palette.Index(cmd.Color))
		case core.DrawText:
			r.Labels = append(r.Labels, Label{
				Text:  cmd.Text,
				X:     cmd.X * sx,
				Y:     cmd.Y * sy,
				Size:  cmd.FontSize * sy,
				Color: cmd.Color,
			})
		}
	}
	return r
}

// Image rasterizes the frame at scale pixels per arena unit, including text.
func Image(f core.Frame, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(f.W * scale))
	h := int(math.Round(f.H * scale))
	r := Rasterize(f, w, h)
	img := image.NewRGBA(image.Rect(0, 0, r.Grid.W, r.Grid.H))
	fillPaletteRGBA(img.Pix, r.Grid.Cells(), r.Palette.Colors())
	for _, l := range r.Labels {
		drawLabel(img, l)
	}
	return img
}

// WritePNG encodes the frame as a PNG.
func WritePNG(w io.Writer, f core.Frame, scale float64) error {
	if err := png.Encode(w, Image(f, scale)); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// drawLabel renders text with the 7x13 bitmap face and scales it up to the
// label size with nearest-neighbor sampling.
func drawLabel(dst *image.RGBA, l Label) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, l.Text).Ceil()
	if width <= 0 || l.Size <= 0 {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(l.Color),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(l.Text)

	k := l.Size / float64(face.Height)
	x0 := int(math.Round(l.X))
	y0 := int(math.Round(l.Y - float64(face.Ascent)*k))
	dr := image.Rect(x0, y0, x0+int(math.Round(float64(width)*k)), y0+int(math.Round(float64(face.Height)*k)))
	draw.NearestNeighbor.Scale(dst, dr, glyphs, glyphs.Bounds(), draw.Over, nil)
}
