package term

import (
	"flag"

	"lifeboard/internal/session"
	"lifeboard/pkg/random"
)

// Config holds the terminal front end's parameters. Zero dimensions fit the
// board to the screen.
type Config struct {
	Cols int
	Rows int

	PlayTPS int
	EditTPS int
	Density random.Ratio
	Seed    int64

	StartPaused bool
	Ghost       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{PlayTPS: 12, EditTPS: 60, Density: random.Quarter, Ghost: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns (0 = fit screen)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows (0 = fit screen)")
	fs.IntVar(&c.PlayTPS, "tps", c.PlayTPS, "ticks per second while playing")
	fs.IntVar(&c.EditTPS, "edit-tps", c.EditTPS, "ticks per second while paused")
	fs.Var(&c.Density, "density", "alive probability for randomized boards (n/d)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards (0 = unseeded)")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused")
	fs.BoolVar(&c.Ghost, "ghost", c.Ghost, "show the undo baseline while paused")
}

// Session sizes the board for a screen of sw x sh character cells. Each board
// cell takes two columns; the last row is the status line.
func (c *Config) Session(sw, sh int) session.Config {
	cols, rows := c.Cols, c.Rows
	if cols <= 0 {
		cols = sw / cellWidth
	}
	if rows <= 0 {
		rows = sh - 1
	}
	return session.Config{
		Width:       max(cols, 1),
		Height:      max(rows, 1),
		PlayTPS:     c.PlayTPS,
		EditTPS:     c.EditTPS,
		Density:     c.Density,
		StartPaused: c.StartPaused,
	}
}
