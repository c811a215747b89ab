package render

import (
	"image/color"
	"slices"
	"testing"

	"lifeboard/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []core.Cell{core.Alive, core.Dead}
	buf := make([]byte, 4*len(cells))
	FillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillGhostRGBA(t *testing.T) {
	cur := []core.Cell{core.Dead, core.Alive, core.Dead, core.Dead}
	saved := []core.Cell{core.Alive, core.Alive, core.Dead, core.Alive}
	buf := make([]byte, 4*len(cur))
	for i := range buf {
		buf[i] = 9
	}
	tint := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	if n := FillGhostRGBA(buf, cur, saved, tint); n != 2 {
		t.Fatalf("marked %d cells, want 2", n)
	}
	want := []byte{
		10, 20, 30, 40,
		0, 0, 0, 0,
		0, 0, 0, 0,
		10, 20, 30, 40,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}
