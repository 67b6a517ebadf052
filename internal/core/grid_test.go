package core

import "testing"

func TestByteGridFillRectUsesCellCenters(t *testing.T) {
	g := NewByteGrid(10, 4)
	g.FillRect(2.4, 1, 3, 2, 7)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := uint8(0)
			if x >= 2 && x <= 4 && y >= 1 && y <= 2 {
				want = 7
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestByteGridClipsOutOfBounds(t *testing.T) {
	g := NewByteGrid(4, 4)
	g.FillRect(-10, -10, 11, 100, 1)
	g.Set(9, 9, 2)
	g.FillCircle(100, 100, 5, 3)

	for y := 0; y < 4; y++ {
		if g.At(0, y) != 1 {
			t.Fatalf("column 0 row %d not filled", y)
		}
		if g.At(1, y) != 0 {
			t.Fatalf("column 1 row %d unexpectedly filled", y)
		}
	}
	if g.At(9, 9) != 0 {
		t.Fatal("At outside grid should return 0")
	}
}

func TestByteGridFillCircle(t *testing.T) {
	g := NewByteGrid(9, 9)
	g.FillCircle(4.5, 4.5, 2, 5)
	if g.At(4, 4) != 5 {
		t.Fatal("center cell not filled")
	}
	if g.At(0, 0) != 0 || g.At(8, 8) != 0 {
		t.Fatal("corner cells filled")
	}
	if g.At(6, 4) != 5 || g.At(7, 4) != 0 {
		t.Fatalf("radius edge wrong: (6,4)=%d (7,4)=%d", g.At(6, 4), g.At(7, 4))
	}
}
