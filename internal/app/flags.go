package app

import (
	"errors"
	"flag"
	"fmt"

	"lifeboard/internal/core"
	"lifeboard/internal/session"
	"lifeboard/pkg/random"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int

	PlayTPS int
	EditTPS int
	Density random.Ratio
	Seed    int64

	StartPaused bool
	HUD         bool
	Ghost       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1200,
		Height:   800,
		CellSize: 5,
		PlayTPS:  24,
		EditTPS:  100,
		Density:  random.Quarter,
		HUD:      true,
		Ghost:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "display width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "display height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.PlayTPS, "tps", c.PlayTPS, "ticks per second while playing")
	fs.IntVar(&c.EditTPS, "edit-tps", c.EditTPS, "ticks per second while paused")
	fs.Var(&c.Density, "density", "alive probability for randomized boards (n/d)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized boards (0 = unseeded)")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
	fs.BoolVar(&c.Ghost, "ghost", c.Ghost, "overlay the undo baseline while paused")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: display %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.CellSize > c.Width || c.CellSize > c.Height:
		return fmt.Errorf("%w: cell size %d exceeds display %dx%d", ErrInvalidConfig, c.CellSize, c.Width, c.Height)
	case c.PlayTPS <= 0 || c.EditTPS <= 0:
		return fmt.Errorf("%w: tick rates %d/%d must be positive", ErrInvalidConfig, c.PlayTPS, c.EditTPS)
	case !c.Density.Valid():
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Density)
	}
	return nil
}

// GridSize derives the board dimensions from the display and cell size.
func (c *Config) GridSize() core.Size {
	return core.Size{W: c.Width / c.CellSize, H: c.Height / c.CellSize}
}

// Session converts the display config into a session config.
func (c *Config) Session() session.Config {
	size := c.GridSize()
	return session.Config{
		Width:       size.W,
		Height:      size.H,
		PlayTPS:     c.PlayTPS,
		EditTPS:     c.EditTPS,
		Density:     c.Density,
		StartPaused: c.StartPaused,
	}
}
