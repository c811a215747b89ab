//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/core"
	"lifeboard/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ghostTint = color.RGBA{R: 70, G: 110, B: 170, A: 160}

// Overlay shows the undo baseline under the board while paused: cells that
// Restore would bring back are tinted. G toggles it.
type Overlay struct {
	painter  *render.GridPainter
	cellSize int
	enabled  bool
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(size core.Size, cellSize int, enabled bool) *Overlay {
	return &Overlay{
		painter:  render.NewGridPainter(size.W, size.H),
		cellSize: cellSize,
		enabled:  enabled,
	}
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.enabled = !o.enabled
	}
}

// Draw paints the ghost of saved over the already drawn board.
func (o *Overlay) Draw(screen *ebiten.Image, cur, saved core.View) {
	if o == nil || !o.enabled {
		return
	}
	o.painter.BlitGhost(screen, cur.Cells(), saved.Cells(), ghostTint, o.cellSize)
}
