package render

import "image/color"

// Palette maps the colors used by a frame onto byte indices so frames can be
// rasterized into a core.ByteGrid. Index 0 is transparent black.
type Palette struct {
	colors []color.RGBA
	index  map[color.RGBA]uint8
}

// NewPalette returns a palette holding only the transparent entry.
func NewPalette() *Palette {
	return &Palette{
		colors: []color.RGBA{{}},
		index:  map[color.RGBA]uint8{{}: 0},
	}
}

// Index returns the index for c, adding it when unseen. Once 256 entries are
// in use, new colors map to the last entry.
func (p *Palette) Index(c color.RGBA) uint8 {
	if idx, ok := p.index[c]; ok {
		return idx
	}
	if len(p.colors) == 256 {
		return 255
	}
	idx := uint8(len(p.colors))
	p.colors = append(p.colors, c)
	p.index[c] = idx
	return idx
}

// Colors exposes the palette entries in index order.
func (p *Palette) Colors() []color.RGBA { return p.colors }

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
