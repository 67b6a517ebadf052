package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"pong/internal/app"
	"pong/internal/core"
	_ "pong/internal/sims/pong"
	"pong/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(app.EnvFile()); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, ok := factory(cfg.SimOptions()).(term.Sim)
	if !ok {
		log.Fatalf("sim %q does not accept pointer input", cfg.Sim)
	}
	sim.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "sim", sim.Name(), "tps", cfg.TPS, "seed", cfg.Seed)
	runErr := term.NewRunner(sim, screen, cfg.TPS, logger).Run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	logger.Info("stopped")
}
