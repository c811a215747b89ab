// Package input translates front-end events into session commands.
package input

import "lifeboard/internal/core"

// Command is a discrete keyboard action.
type Command int

const (
	None Command = iota
	TogglePlay
	Step
	Restore
	Clear
	Randomize
	Quit
)

func (c Command) String() string {
	switch c {
	case TogglePlay:
		return "toggle-play"
	case Step:
		return "step"
	case Restore:
		return "restore"
	case Clear:
		return "clear"
	case Randomize:
		return "randomize"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Button identifies a pointer button.
type Button int

const (
	Primary Button = iota
	Secondary
)

// Session is the subset of the controller that input drives.
type Session interface {
	TogglePlay()
	StepOnce()
	Restore()
	Clear()
	RandomizeReset()
	EditCell(row, col int, alive bool) error
	Playing() bool
	Size() core.Size
}

// Apply forwards cmd to s and reports whether the loop should exit.
func Apply(s Session, cmd Command) (quit bool) {
	switch cmd {
	case TogglePlay:
		s.TogglePlay()
	case Step:
		s.StepOnce()
	case Restore:
		s.Restore()
	case Clear:
		s.Clear()
	case Randomize:
		s.RandomizeReset()
	case Quit:
		return true
	}
	return false
}

// CellAt maps a pixel position to a grid cell. ok is false when the position
// falls outside the grid.
func CellAt(x, y, cellSize int, size core.Size) (row, col int, ok bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return 0, 0, false
	}
	col = x / cellSize
	row = y / cellSize
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Brush tracks held pointer buttons and paints cells while paused. Primary
// paints alive cells, secondary paints dead ones. A stroke paints each cell
// once per entry, so a pointer resting on a cell does not repaint it.
type Brush struct {
	held    [2]bool
	painted int

	last    [2]int
	hasLast bool
}

// Down starts a stroke and paints the cell under the pointer.
func (b *Brush) Down(s Session, btn Button, row, col int) {
	if btn != Primary && btn != Secondary {
		return
	}
	if s.Playing() {
		return
	}
	b.held[btn] = true
	b.hasLast = false
	b.paint(s, btn, row, col)
}

// Up ends the stroke for btn.
func (b *Brush) Up(btn Button) {
	if btn != Primary && btn != Secondary {
		return
	}
	b.held[btn] = false
	if !b.held[Primary] && !b.held[Secondary] {
		b.hasLast = false
	}
}

// Move paints under the pointer while a button is held. Primary wins when
// both are held.
func (b *Brush) Move(s Session, row, col int) {
	if s.Playing() {
		return
	}
	if b.hasLast && b.last == [2]int{row, col} {
		return
	}
	switch {
	case b.held[Primary]:
		b.paint(s, Primary, row, col)
	case b.held[Secondary]:
		b.paint(s, Secondary, row, col)
	}
}

// Held reports whether btn is currently held.
func (b *Brush) Held(btn Button) bool {
	if btn != Primary && btn != Secondary {
		return false
	}
	return b.held[btn]
}

// Painted counts the cells written since the brush was created.
func (b *Brush) Painted() int { return b.painted }

func (b *Brush) paint(s Session, btn Button, row, col int) {
	if err := s.EditCell(row, col, btn == Primary); err == nil {
		b.painted++
		b.last = [2]int{row, col}
		b.hasLast = true
	}
}
