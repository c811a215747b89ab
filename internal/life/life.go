// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"errors"
	"fmt"

	"lifeboard/internal/core"
)

// ErrAliased is returned when Step is asked to write into its own input.
var ErrAliased = errors.New("life: next generation must not alias the current grid")

// Rule is the B3/S23 transition: an alive cell survives with 2 or 3
// neighbours, a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Neighbors counts the alive cells among the 8 toroidal neighbours of
// (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			n += int(cells[g.Index(r, c)])
		}
	}
	return n
}

// Step writes the generation following cur into next. cur is never modified.
func Step(cur, next *core.Grid) error {
	if cur == next {
		return ErrAliased
	}
	if cur.W != next.W || cur.H != next.H {
		return fmt.Errorf("step %dx%d into %dx%d: %w", cur.H, cur.W, next.H, next.W, core.ErrSizeMismatch)
	}
	src := cur.Cells()
	dst := next.Cells()
	for row := 0; row < cur.H; row++ {
		for col := 0; col < cur.W; col++ {
			idx := cur.Index(row, col)
			dst[idx] = core.CellOf(Rule(src[idx] == core.Alive, Neighbors(cur, row, col)))
		}
	}
	return nil
}

// Next returns the following generation in a freshly allocated grid.
func Next(cur *core.Grid) *core.Grid {
	next := core.NewGrid(cur.W, cur.H)
	// Sizes match and the grids are distinct, so Step cannot fail.
	_ = Step(cur, next)
	return next
}
