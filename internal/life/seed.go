package life

import (
	"lifeboard/internal/core"
	"lifeboard/pkg/random"
)

// Create returns a fresh h x w grid: all dead, or with each cell alive with
// probability p when randomize is set. Draws come from the process-wide
// source.
func Create(h, w int, randomize bool, p random.Ratio) *core.Grid {
	return CreateWith(random.Shared(), h, w, randomize, p)
}

// CreateWith is Create with an explicit random source.
func CreateWith(rng *random.RNG, h, w int, randomize bool, p random.Ratio) *core.Grid {
	g := core.NewGrid(w, h)
	Fill(rng, g, randomize, p)
	return g
}

// Fill reinitializes g in place with the same semantics as Create.
func Fill(rng *random.RNG, g *core.Grid, randomize bool, p random.Ratio) {
	cells := g.Cells()
	if !randomize {
		g.Clear()
		return
	}
	for i := range cells {
		cells[i] = core.CellOf(rng.Hit(p))
	}
}
