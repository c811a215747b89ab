//go:build ebiten

package render

import (
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from board cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells into the painter image and draws it scaled by
// cellSize, so each cell becomes a filled square.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, on, off color.Color, cellSize int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, cellSize)
}

// BlitGhost draws the cells of saved that are dead in cur using tint.
func (gp *GridPainter) BlitGhost(dst *ebiten.Image, cur, saved []core.Cell, tint color.RGBA, cellSize int) {
	if len(cur) != gp.w*gp.h || len(saved) != len(cur) {
		return
	}
	if FillGhostRGBA(gp.buf, cur, saved, tint) == 0 {
		return
	}
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, cellSize)
}

func (gp *GridPainter) draw(dst *ebiten.Image, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
