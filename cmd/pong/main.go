//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"

	"pong/internal/app"
	"pong/internal/core"
	_ "pong/internal/sims/pong"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(app.EnvFile()); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()
	slog.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS, "seed", cfg.Seed)

	ebiten.SetWindowTitle("pong: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
