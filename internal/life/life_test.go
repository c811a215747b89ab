package life

import (
	"errors"
	"math"
	"testing"

	"lifeboard/internal/core"
	"lifeboard/pkg/random"
)

func expectAlive(t *testing.T, g *core.Grid, alive map[[2]int]bool, stage string) {
	t.Helper()
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			got := g.At(row, col) == core.Alive
			want := alive[[2]int{row, col}]
			if got != want {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v\n%s", stage, row, col, got, want, g)
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := core.ParseGrid(
		"...",
		".#.",
		"...",
	)
	next := Next(g)
	if next.Population() != 0 {
		t.Fatalf("isolated cell survived:\n%s", next)
	}
}

func TestBlockStillLife(t *testing.T) {
	g := core.ParseGrid(
		"......",
		"......",
		"..##..",
		"..##..",
		"......",
		"......",
	)
	want := g.Clone()
	scratch := core.NewGrid(g.W, g.H)
	for i := 0; i < 10; i++ {
		if err := Step(g, scratch); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		g, scratch = scratch, g
		if !g.Equal(want) {
			t.Fatalf("block changed after %d steps:\n%s", i+1, g)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(2, 1, core.Alive)
	g.Set(2, 2, core.Alive)
	g.Set(2, 3, core.Alive)

	g = Next(g)
	expectAlive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after first step")

	g = Next(g)
	expectAlive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after second step")
}

func TestWrapAroundNeighbors(t *testing.T) {
	g := core.NewGrid(6, 4)
	g.Set(0, 0, core.Alive)
	g.Set(3, 5, core.Alive)
	if n := Neighbors(g, 0, 0); n != 1 {
		t.Fatalf("Neighbors(0,0) = %d, want 1 via the (H-1,W-1) corner", n)
	}
	if n := Neighbors(g, 3, 5); n != 1 {
		t.Fatalf("Neighbors(H-1,W-1) = %d, want 1 via the (0,0) corner", n)
	}
}

func TestBlinkerAcrossEdge(t *testing.T) {
	// A horizontal blinker straddling the left/right seam turns vertical at col 0.
	g := core.NewGrid(5, 5)
	g.Set(2, 4, core.Alive)
	g.Set(2, 0, core.Alive)
	g.Set(2, 1, core.Alive)

	g = Next(g)
	expectAlive(t, g, map[[2]int]bool{
		{1, 0}: true,
		{2, 0}: true,
		{3, 0}: true,
	}, "seam blinker")
}

func TestStepDeterministicAndPure(t *testing.T) {
	g := CreateWith(random.NewRNG(5), 16, 20, true, random.Quarter)
	orig := g.Clone()

	a := Next(g)
	b := Next(g)
	if !a.Equal(b) {
		t.Fatal("identical inputs produced different generations")
	}
	if !g.Equal(orig) {
		t.Fatal("Step mutated its input")
	}
}

func TestStepRejectsBadBuffers(t *testing.T) {
	g := core.NewGrid(4, 4)
	if err := Step(g, g); !errors.Is(err, ErrAliased) {
		t.Fatalf("Step(g, g) = %v, want ErrAliased", err)
	}
	if err := Step(g, core.NewGrid(4, 5)); !errors.Is(err, core.ErrSizeMismatch) {
		t.Fatalf("Step mismatched = %v, want ErrSizeMismatch", err)
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if Rule(true, n) != wantAlive {
			t.Fatalf("Rule(alive, %d) = %v", n, !wantAlive)
		}
		if Rule(false, n) != (n == 3) {
			t.Fatalf("Rule(dead, %d) = %v", n, n != 3)
		}
	}
}

func TestCreateDead(t *testing.T) {
	g := Create(7, 9, false, random.Quarter)
	if g.H != 7 || g.W != 9 {
		t.Fatalf("Create size = %dx%d, want 7x9", g.H, g.W)
	}
	if g.Population() != 0 {
		t.Fatal("non-random grid has alive cells")
	}
}

func TestRandomizeDistribution(t *testing.T) {
	const (
		boards = 200
		h, w   = 40, 50
	)
	for _, p := range []random.Ratio{{Num: 1, Den: 4}, {Num: 1, Den: 2}, {Num: 1, Den: 10}} {
		alive := 0
		for i := 0; i < boards; i++ {
			alive += Create(h, w, true, p).Population()
		}
		total := float64(boards * h * w)
		got := float64(alive) / total
		sigma := math.Sqrt(p.Float() * (1 - p.Float()) / total)
		if math.Abs(got-p.Float()) > 6*sigma {
			t.Fatalf("density %v: empirical %.4f outside 6 sigma (%.5f)", p, got, sigma)
		}
	}
}

func TestFillReusesGrid(t *testing.T) {
	g := core.NewGrid(8, 8)
	cells := g.Cells()
	Fill(random.NewRNG(3), g, true, random.Ratio{Num: 1, Den: 1})
	if g.Population() != 64 {
		t.Fatalf("certain density filled %d cells, want 64", g.Population())
	}
	Fill(random.NewRNG(3), g, false, random.Quarter)
	if g.Population() != 0 {
		t.Fatal("Fill without randomize left alive cells")
	}
	if &g.Cells()[0] != &cells[0] {
		t.Fatal("Fill reallocated the backing slice")
	}
}
