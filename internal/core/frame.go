package core

import "image/color"

// DrawKind enumerates the primitive shapes a rendering surface must support.
type DrawKind uint8

const (
	// DrawRect is a filled axis-aligned rectangle anchored at its top-left corner.
	DrawRect DrawKind = iota
	// DrawCircle is a filled disc centered on X, Y.
	DrawCircle
	// DrawText is a text label whose baseline starts at X, Y.
	DrawText
)

// DrawCmd is a single draw command. Fields not used by Kind are zero.
type DrawCmd struct {
	Kind  DrawKind
	X, Y  float64
	W, H  float64
	R     float64
	Color color.RGBA

	Text     string
	FontSize float64
}

// Frame is an ordered list of draw commands; later commands paint over
// earlier ones.
type Frame struct {
	W, H float64
	Cmds []DrawCmd
}

// Rect appends a filled rectangle.
func (f *Frame) Rect(x, y, w, h float64, c color.RGBA) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Circle appends a filled disc.
func (f *Frame) Circle(x, y, r float64, c color.RGBA) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawCircle, X: x, Y: y, R: r, Color: c})
}

// Text appends a text label.
func (f *Frame) Text(s string, x, y, size float64, c color.RGBA) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawText, X: x, Y: y, Text: s, FontSize: size, Color: c})
}

// Box is an axis-aligned rectangle in arena units.
type Box struct {
	X, Y, W, H float64
}
