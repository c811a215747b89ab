// Package session drives a Game of Life board through play, pause, single
// step, edit and undo.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"lifeboard/internal/core"
	"lifeboard/internal/life"
	"lifeboard/pkg/random"
)

// ErrPlaying is returned when a cell edit is attempted while the simulation runs.
var ErrPlaying = errors.New("session: cells can only be edited while paused")

// State is the playback state of a session.
type State int

const (
	Playing State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Parameter keys exposed through Parameters and SetIntParameter.
const (
	KeyState      = "state"
	KeyGeneration = "generation"
	KeyPopulation = "population"
	KeyPending    = "pending_save"
	KeyDensity    = "density"
	KeyPlayTPS    = "play_tps"
	KeyEditTPS    = "edit_tps"
)

// Config holds the session's tunables.
type Config struct {
	Width  int
	Height int

	PlayTPS int
	EditTPS int
	Density random.Ratio

	StartPaused bool
}

// DefaultConfig matches a 1200x800 display with 5px cells.
func DefaultConfig() Config {
	return Config{
		Width:   240,
		Height:  160,
		PlayTPS: 24,
		EditTPS: 100,
		Density: random.Quarter,
	}
}

// Controller owns the current, scratch and saved grids of one session. It is
// not safe for concurrent use; a single loop must own it.
type Controller struct {
	cfg Config
	rng *random.RNG

	cur     *core.Grid
	scratch *core.Grid
	saved   *core.Grid

	state       State
	pendingSave bool
	edited      bool
	stepOnce    bool

	generation      int
	savedGeneration int
}

// New creates a session with a randomized board that doubles as the initial
// baseline. A nil rng selects the process-wide source.
func New(cfg Config, rng *random.RNG) *Controller {
	if rng == nil {
		rng = random.Shared()
	}
	def := DefaultConfig()
	if cfg.PlayTPS <= 0 {
		cfg.PlayTPS = def.PlayTPS
	}
	if cfg.EditTPS <= 0 {
		cfg.EditTPS = def.EditTPS
	}
	if !cfg.Density.Valid() {
		cfg.Density = def.Density
	}
	cur := life.CreateWith(rng, cfg.Height, cfg.Width, true, cfg.Density)
	c := &Controller{
		cfg:     cfg,
		rng:     rng,
		cur:     cur,
		scratch: core.NewGrid(cur.W, cur.H),
		saved:   cur.Clone(),
		state:   Playing,
	}
	if cfg.StartPaused {
		c.state = Paused
	}
	return c
}

// Size returns the board dimensions.
func (c *Controller) Size() core.Size { return c.cur.Size() }

// Current exposes the displayed board.
func (c *Controller) Current() core.View { return c.cur }

// Saved exposes the undo baseline.
func (c *Controller) Saved() core.View { return c.saved }

// State reports whether the session is playing or paused.
func (c *Controller) State() State { return c.state }

// Playing is shorthand for State() == Playing.
func (c *Controller) Playing() bool { return c.state == Playing }

// PendingSave reports whether the next play or step re-baselines the snapshot.
func (c *Controller) PendingSave() bool { return c.pendingSave }

// Generation counts generations since the last clear or randomize.
func (c *Controller) Generation() int { return c.generation }

// TickRate is the loop rate the driver should run at in the current state.
func (c *Controller) TickRate() int {
	if c.state == Playing {
		return c.cfg.PlayTPS
	}
	return c.cfg.EditTPS
}

// TogglePlay flips between playing and paused. Resuming commits a stale
// baseline.
func (c *Controller) TogglePlay() {
	if c.state == Playing {
		c.state = Paused
		return
	}
	c.state = Playing
	c.commitIfStale()
}

// StepOnce commits a stale baseline and, while paused, requests a single
// generation computed by the next AdvanceIfPlaying. A playing session already
// advances every tick, so no extra generation is requested.
func (c *Controller) StepOnce() {
	c.commitIfStale()
	if c.state == Paused {
		c.stepOnce = true
	}
}

// Restore replaces the board with the saved baseline.
func (c *Controller) Restore() {
	c.mustCopy(c.cur, c.saved)
	c.generation = c.savedGeneration
	c.edited = false
	if c.state == Paused {
		c.pendingSave = true
	}
}

// Clear kills every cell and marks the baseline stale.
func (c *Controller) Clear() {
	c.cur.Clear()
	c.generation = 0
	c.pendingSave = true
}

// RandomizeReset refills the board at the configured density. Edits made
// before the refill no longer count toward a stale baseline; the pending flag
// is left as is.
func (c *Controller) RandomizeReset() {
	life.Fill(c.rng, c.cur, true, c.cfg.Density)
	c.generation = 0
	c.edited = false
}

// EditCell sets a single cell while paused.
func (c *Controller) EditCell(row, col int, alive bool) error {
	if c.state != Paused {
		return ErrPlaying
	}
	if !c.cur.Contains(row, col) {
		return fmt.Errorf("edit: %w", &core.BoundsError{Row: row, Col: col, Size: c.cur.Size()})
	}
	v := core.CellOf(alive)
	if c.cur.At(row, col) != v {
		c.cur.Set(row, col, v)
		c.edited = true
	}
	return nil
}

// AdvanceIfPlaying is called once per tick. It computes one generation when
// playing or when StepOnce was requested, and reports whether it did.
func (c *Controller) AdvanceIfPlaying() bool {
	if c.state != Playing && !c.stepOnce {
		return false
	}
	c.stepOnce = false
	if err := life.Step(c.cur, c.scratch); err != nil {
		// Both buffers are allocated together with identical sizes.
		panic(err)
	}
	c.cur, c.scratch = c.scratch, c.cur
	c.generation++
	return true
}

func (c *Controller) commitIfStale() {
	if !c.pendingSave && !c.edited {
		return
	}
	c.mustCopy(c.saved, c.cur)
	c.savedGeneration = c.generation
	c.pendingSave = false
	c.edited = false
}

func (c *Controller) mustCopy(dst, src *core.Grid) {
	if err := dst.CopyFrom(src); err != nil {
		panic(err)
	}
}
