package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/core"
)

// Sim is what the terminal frontend drives.
type Sim interface {
	core.Sim
	core.PointerSink
}

type scorer interface {
	Scores() (player, opponent int)
}

// Messages accepted on Runner.Inbox. Anything touching the sim goes through
// the inbox so only Run's goroutine ever mutates it.
type (
	PointerMsg struct{ Row int }
	ResetMsg   struct{ Seed int64 }
	ResizeMsg  struct{}
	QuitMsg    struct{}
)

// Runner owns a sim and steps it at a fixed rate, painting after each batch
// of ticks.
type Runner struct {
	Inbox chan any

	sim     Sim
	screen  tcell.Screen
	painter *Painter
	clock   *core.FixedStep
	log     *slog.Logger

	playerScore   int
	opponentScore int
}

// NewRunner wires a sim to an initialized screen.
func NewRunner(sim Sim, screen tcell.Screen, tps int, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	r := &Runner{
		Inbox:   make(chan any, 256),
		sim:     sim,
		screen:  screen,
		painter: NewPainter(screen),
		clock:   core.NewFixedStep(tps),
		log:     log,
	}
	r.playerScore, r.opponentScore = r.scores()
	return r
}

// Run processes input and ticks until ctx is done or a QuitMsg arrives.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.pollEvents(ctx)

	ticker := time.NewTicker(r.clock.Step())
	defer ticker.Stop()

	r.painter.Paint(r.sim.Frame())
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-r.Inbox:
			if quit := r.handle(msg); quit {
				return nil
			}
		case <-ticker.C:
			r.advance()
		}
	}
}

// handle applies one inbox message and reports whether the runner should
// stop.
func (r *Runner) handle(msg any) bool {
	switch m := msg.(type) {
	case PointerMsg:
		r.sim.PointerMoved(r.painter.ArenaY(m.Row, float64(r.sim.Size().H)))
	case ResetMsg:
		r.sim.Reset(m.Seed)
		r.playerScore, r.opponentScore = r.scores()
		r.log.Info("match reset", "seed", m.Seed)
		r.painter.Paint(r.sim.Frame())
	case ResizeMsg:
		r.screen.Sync()
		r.painter.Paint(r.sim.Frame())
	case QuitMsg:
		return true
	}
	return false
}

// advance runs every tick owed by the clock, in order, then paints once.
func (r *Runner) advance() int {
	n := r.clock.Due()
	for i := 0; i < n; i++ {
		r.sim.Step()
		r.logScore()
	}
	if n > 0 {
		r.painter.Paint(r.sim.Frame())
	}
	return n
}

func (r *Runner) logScore() {
	player, opponent := r.scores()
	if player == r.playerScore && opponent == r.opponentScore {
		return
	}
	side := "player"
	if opponent != r.opponentScore {
		side = "opponent"
	}
	r.playerScore, r.opponentScore = player, opponent
	r.log.Info("point scored", "side", side, "player", player, "opponent", opponent)
}

func (r *Runner) scores() (int, int) {
	if s, ok := r.sim.(scorer); ok {
		return s.Scores()
	}
	return 0, 0
}

// pollEvents forwards terminal events into the inbox. It returns when the
// screen is finalized or ctx ends.
func (r *Runner) pollEvents(ctx context.Context) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		msg := translate(ev)
		if msg == nil {
			continue
		}
		select {
		case r.Inbox <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func translate(ev tcell.Event) any {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return QuitMsg{}
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q', 'Q':
				return QuitMsg{}
			case 'r', 'R':
				return ResetMsg{}
			case 's', 'S':
				return ResetMsg{Seed: time.Now().UnixNano()}
			}
		}
	case *tcell.EventMouse:
		_, y := e.Position()
		return PointerMsg{Row: y}
	case *tcell.EventResize:
		return ResizeMsg{}
	}
	return nil
}
