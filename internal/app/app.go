//go:build ebiten

package app

import (
	"log/slog"
	"math"
	"time"

	"pong/internal/core"
	"pong/internal/render"
	"pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type scorer interface {
	Scores() (player, opponent int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	scale   int
	seed    int64
	showHUD bool

	cursorY       int
	playerScore   int
	opponentScore int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:     sim,
		painter: render.NewFramePainter(float64(scale)),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim),
		log:     slog.Default(),
		scale:   scale,
		seed:    seed,
		cursorY: math.MinInt,
	}
	g.playerScore, g.opponentScore = g.scores()
	return g
}

// Reset starts a new match with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.playerScore, g.opponentScore = g.scores()
	g.log.Info("match reset", "seed", seed)
}

// Update handles per-frame input and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.overlay.Update()

	// Only forward real pointer movement so the paddle stays put until the
	// cursor first moves.
	if sink, ok := g.sim.(core.PointerSink); ok {
		_, y := ebiten.CursorPosition()
		if y != g.cursorY {
			g.cursorY = y
			sink.PointerMoved(float64(y) / float64(g.scale))
		}
	}

	g.sim.Step()
	g.logScore()

	if g.showHUD {
		g.hud.Update()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.Frame())
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) logScore() {
	player, opponent := g.scores()
	if player == g.playerScore && opponent == g.opponentScore {
		return
	}
	side := "player"
	if opponent != g.opponentScore {
		side = "opponent"
	}
	g.playerScore, g.opponentScore = player, opponent
	g.log.Info("point scored", "side", side, "player", player, "opponent", opponent)
}

func (g *Game) scores() (int, int) {
	if s, ok := g.sim.(scorer); ok {
		return s.Scores()
	}
	return 0, 0
}
