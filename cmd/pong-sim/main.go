package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"pong/internal/render"
	"pong/internal/sims/pong"
)

type matchResult struct {
	index        int
	seed         int64
	player       int
	opponent     int
	playerHits   int
	opponentHits int
	peakSpeed    float64
	world        *pong.World
}

func (r matchResult) String() string {
	return fmt.Sprintf("seed=%d score=%d:%d hits=%d/%d peak=%.1f",
		r.seed, r.player, r.opponent, r.playerHits, r.opponentHits, r.peakSpeed)
}

func main() {
	matches := flag.Int("matches", 8, "number of matches to run")
	ticks := flag.Int("ticks", 60*60, "ticks to simulate per match")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first match; match i uses seed+i")
	width := flag.Int("w", 800, "arena width")
	height := flag.Int("h", 600, "arena height")
	auto := flag.Bool("auto", true, "drive the player paddle with the tracking controller")
	pngPath := flag.String("png", "", "write the final frame of the first match to this PNG file")
	flag.Parse()

	base := pong.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.AutoPlayer = *auto

	fmt.Printf("Running %d matches (%d workers, %d ticks)\n", *matches, *workers, *ticks)

	jobs := make(chan int)
	results := make(chan matchResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- runMatch(base, idx, *seed+int64(idx), *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *matches; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	start := time.Now()
	var all []matchResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })
	elapsed := time.Since(start)

	var points, hits int
	var peak float64
	for _, res := range all {
		fmt.Printf("%3d) %s\n", res.index, res)
		points += res.player + res.opponent
		hits += res.playerHits + res.opponentHits
		if res.peakSpeed > peak {
			peak = res.peakSpeed
		}
	}
	fmt.Printf("\nTotal points=%d hits=%d peak=%.1f (elapsed %s)\n", points, hits, peak, elapsed.Round(time.Millisecond))

	if *pngPath != "" && len(all) > 0 {
		if err := writeFrame(*pngPath, all[0].world); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *pngPath)
	}
}

func runMatch(base pong.Config, index int, seed int64, ticks int) matchResult {
	cfg := base
	cfg.Seed = seed
	world := pong.NewWithConfig(cfg)
	for i := 0; i < ticks; i++ {
		world.Step()
	}
	player, opponent := world.Scores()
	stats := world.Stats()
	return matchResult{
		index:        index,
		seed:         seed,
		player:       player,
		opponent:     opponent,
		playerHits:   stats.PlayerHits,
		opponentHits: stats.OpponentHits,
		peakSpeed:    stats.PeakSpeed,
		world:        world,
	}
}

func writeFrame(path string, world *pong.World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WritePNG(f, world.Frame(), 1); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
