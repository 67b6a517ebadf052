package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"pong/internal/sims/pong"
)

func TestRunMatchIsDeterministic(t *testing.T) {
	base := pong.DefaultConfig()
	base.AutoPlayer = true

	a := runMatch(base, 0, 7, 2000)
	b := runMatch(base, 0, 7, 2000)
	if a.String() != b.String() {
		t.Fatalf("same seed gave different results: %s vs %s", a, b)
	}
	if a.playerHits+a.opponentHits == 0 {
		t.Fatalf("expected paddle hits over 2000 ticks, got %s", a)
	}
	if a.peakSpeed < pong.InitialBallSpeed || a.peakSpeed > pong.MaxBallSpeed {
		t.Fatalf("peak speed %.2f out of range", a.peakSpeed)
	}
}

func TestWriteFrameProducesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	w := pong.New(200, 150)
	if err := writeFrame(path, w); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("bounds = %v, want 200x150", b)
	}
}
