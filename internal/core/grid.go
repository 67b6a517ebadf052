package core

import "math"

// ByteGrid stores a 2D raster of byte-sized palette indices in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set writes v at (x, y); writes outside the grid are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }

// FillRect sets every cell whose center lies inside the rectangle
// [x, x+w) x [y, y+h), clipped to the grid.
func (g *ByteGrid) FillRect(x, y, w, h float64, v uint8) {
	x0, x1 := span(x, x+w, g.W)
	y0, y1 := span(y, y+h, g.H)
	for py := y0; py < y1; py++ {
		row := py * g.W
		for px := x0; px < x1; px++ {
			g.data[row+px] = v
		}
	}
}

// FillCircle sets every cell whose center lies within r of (cx, cy).
func (g *ByteGrid) FillCircle(cx, cy, r float64, v uint8) {
	if r <= 0 {
		return
	}
	x0, x1 := clampSpan(int(math.Floor(cx-r)), int(math.Ceil(cx+r))+1, g.W)
	y0, y1 := clampSpan(int(math.Floor(cy-r)), int(math.Ceil(cy+r))+1, g.H)
	r2 := r * r
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				g.data[py*g.W+px] = v
			}
		}
	}
}

// span converts [lo, hi) in continuous coordinates into the half-open range
// of cell indices whose centers fall inside it, clipped to [0, limit).
func span(lo, hi float64, limit int) (int, int) {
	return clampSpan(int(math.Ceil(lo-0.5)), int(math.Ceil(hi-0.5)), limit)
}

func clampSpan(a, b, limit int) (int, int) {
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	if b < a {
		b = a
	}
	return a, b
}
