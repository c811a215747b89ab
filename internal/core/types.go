package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// View is the read-only face of a grid handed to presentation code.
type View interface {
	Size() Size
	At(row, col int) Cell
	Cells() []Cell
	Population() int
}

var _ View = (*Grid)(nil)
