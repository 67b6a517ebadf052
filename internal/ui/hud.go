//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel in the top-left corner.
type HUD struct {
	sim      core.Sim
	face     *text.GoXFace
	title    string
	snapshot core.ParameterSnapshot
	lines    []hudLine
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{
		sim:   sim,
		face:  text.NewGoXFace(basicfont.Face7x13),
		title: buildTitle(sim),
	}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.lines = nil
		return
	}
	h.snapshot = provider.Parameters()
	h.lines = h.lines[:0]
	for _, group := range h.snapshot.Groups {
		h.lines = append(h.lines, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: fmt.Sprintf("%-16s %s", p.Label, p.Value)})
		}
	}
}

// Draw paints the panel over the play field.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	height := panelPadding*2 + lineHeight*(len(h.lines)+1)
	vector.FillRect(screen, 0, 0, panelWidth, float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	y := panelPadding
	h.drawLine(screen, h.title, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.lines) == 0 {
		h.drawLine(screen, "No parameters", y+lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for _, l := range h.lines {
		y += lineHeight
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if l.header {
			clr = color.RGBA{R: 140, G: 180, B: 255, A: 255}
		}
		h.drawLine(screen, l.text, y, clr)
	}
}

func (h *HUD) drawLine(screen *ebiten.Image, s string, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(panelPadding, float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:] + " parameters"
}

const (
	panelPadding = 12
	panelWidth   = 240
	lineHeight   = 16
)
