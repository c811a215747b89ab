//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var keyHelp = []string{
	"Space  play/pause",
	"Right  step",
	"Left   restore",
	"Bksp   clear",
	"Enter  randomize",
	"G      ghost",
	"Esc    quit",
}

// HUD renders the session status panel to the right of the board.
type HUD struct {
	provider  core.ParameterProvider
	intSetter core.IntParameterSetter

	width        int
	panel        *ebiten.Image
	lastHeight   int
	snapshot     core.ParameterSnapshot
	controls     []hudControlState
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src, which may implement any of the core
// parameter interfaces.
func NewHUD(src any, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := src.(core.ParameterProvider); ok {
		h.provider = p
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if cp, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range cp.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	return h
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.provider == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawStatus()
	h.layoutControls(y)
	h.drawControls()
	h.drawHelp(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) isControl(key string) bool {
	for i := range h.controls {
		if h.controls[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawStatus() int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += rowHeight
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += rowHeight
		}
		y += rowHeight / 2
	}
	return y
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.intSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) target(state *hudControlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.intValue + direction*step)
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target := h.target(state, direction)
	if target == state.intValue {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) layoutControls(top int) {
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), y, valueColor)

		canAdjust := state.hasValue && h.intSetter != nil
		h.drawButton(state.minusRect, "-", canAdjust && h.target(state, -1) != state.intValue)
		h.drawButton(state.plusRect, "+", canAdjust && h.target(state, 1) != state.intValue)
	}
}

func (h *HUD) drawHelp(height int) {
	face := basicfont.Face7x13
	y := height - panelPadding - (len(keyHelp)-1)*rowHeight
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += rowHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

const (
	panelPadding   = 12
	rowHeight      = 18
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)
