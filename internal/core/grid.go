package core

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the binary state of one grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// CellOf converts a boolean into a Cell.
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("cell coordinate out of bounds")
	// ErrSizeMismatch reports an operation between differently sized grids.
	ErrSizeMismatch = errors.New("grid size mismatch")
)

// BoundsError carries the offending coordinate and the grid size.
type BoundsError struct {
	Row, Col int
	Size     Size
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Size.H, e.Size.W)
}

// Is makes errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Grid stores a fixed-size 2D field of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with w columns and h rows.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so hot loops can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the cell at (row, col). It panics with a *BoundsError when the
// coordinate is outside the grid; callers validate with Contains first.
func (g *Grid) At(row, col int) Cell {
	g.check(row, col)
	return g.data[row*g.W+col]
}

// Set stores c at (row, col). Same bounds contract as At.
func (g *Grid) Set(row, col int, c Cell) {
	g.check(row, col)
	g.data[row*g.W+col] = c
}

func (g *Grid) check(row, col int) {
	if !g.Contains(row, col) {
		panic(&BoundsError{Row: row, Col: col, Size: g.Size()})
	}
}

// Mod is a modulo that is never negative for n > 0.
func Mod(a, n int) int {
	return (a%n + n) % n
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	return Mod(row, g.H), Mod(col, g.W)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g with the contents of src.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.W != src.W || g.H != src.H {
		return fmt.Errorf("copy %dx%d into %dx%d: %w", src.H, src.W, g.H, g.W, ErrSizeMismatch)
	}
	copy(g.data, src.data)
	return nil
}

// Clear sets every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for row := 0; row < g.H; row++ {
		for _, c := range g.data[row*g.W : (row+1)*g.W] {
			if c == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid builds a grid from rows of '#' and '.'; any other non-space
// character counts as alive. Short rows are padded with dead cells.
func ParseGrid(rows ...string) *Grid {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	g := NewGrid(w, len(rows))
	for row, r := range rows {
		for col := 0; col < len(r); col++ {
			if r[col] != '.' && r[col] != ' ' {
				g.data[row*g.W+col] = Alive
			}
		}
	}
	return g
}
