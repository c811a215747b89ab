package core

import (
	"errors"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("size = %dx%d, want 3 rows x 4 cols", g.H, g.W)
	}
	if !g.Contains(2, 3) || g.Contains(3, 0) || g.Contains(0, 4) || g.Contains(-1, 0) {
		t.Fatal("Contains disagrees with [0,H)x[0,W)")
	}

	g.Set(2, 3, Alive)
	if g.At(2, 3) != Alive {
		t.Fatal("Set/At round trip failed")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At out of range panicked with %v, want ErrOutOfBounds", r)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Row != 0 || be.Col != 4 {
			t.Fatalf("BoundsError = %+v, want (0,4)", be)
		}
	}()
	// Column 4 would alias row 1 column 0 without the explicit check.
	g.At(0, 4)
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("NewGrid(0,-3) = %dx%d", g.H, g.W)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := ParseGrid(
		"#..",
		".#.",
	)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c.Set(0, 0, Dead)
	if g.At(0, 0) != Alive {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestCopyFrom(t *testing.T) {
	src := ParseGrid("##", "..")
	dst := NewGrid(2, 2)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !dst.Equal(src) {
		t.Fatal("CopyFrom did not copy contents")
	}
	if err := NewGrid(3, 2).CopyFrom(src); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("CopyFrom mismatched = %v, want ErrSizeMismatch", err)
	}
}

func TestWrapAndMod(t *testing.T) {
	g := NewGrid(5, 4)
	row, col := g.Wrap(-1, -1)
	if row != 3 || col != 4 {
		t.Fatalf("Wrap(-1,-1) = (%d,%d), want (3,4)", row, col)
	}
	row, col = g.Wrap(4, 5)
	if row != 0 || col != 0 {
		t.Fatalf("Wrap(4,5) = (%d,%d), want (0,0)", row, col)
	}
	if Mod(-7, 3) != 2 {
		t.Fatalf("Mod(-7,3) = %d, want 2", Mod(-7, 3))
	}
}

func TestPopulationAndString(t *testing.T) {
	g := ParseGrid(
		".#.",
		"##",
	)
	if g.W != 3 || g.H != 2 {
		t.Fatalf("ParseGrid size = %dx%d", g.H, g.W)
	}
	if g.Population() != 3 {
		t.Fatalf("Population() = %d, want 3", g.Population())
	}
	if got, want := g.String(), ".#.\n##.\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear left alive cells")
	}
}

func TestPacer(t *testing.T) {
	p := NewPacer(0)
	if p.TPS() != DefaultTPS {
		t.Fatalf("TPS() = %d, want default %d", p.TPS(), DefaultTPS)
	}
	if !p.SetTPS(25) {
		t.Fatal("SetTPS should report a change")
	}
	if p.SetTPS(25) {
		t.Fatal("SetTPS with same rate should report no change")
	}
	if p.Interval().Milliseconds() != 40 {
		t.Fatalf("Interval() = %v, want 40ms", p.Interval())
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 10, HasMin: true, HasMax: true}
	if c.Clamp(0) != 1 || c.Clamp(11) != 10 || c.Clamp(5) != 5 {
		t.Fatal("Clamp ignored bounds")
	}
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Name: "g", Params: []Parameter{{Key: "k", Value: "v"}}}}}
	if p, ok := snap.Lookup("k"); !ok || p.Value != "v" {
		t.Fatal("Lookup missed existing key")
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
