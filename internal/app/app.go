//go:build ebiten

package app

import (
	"image/color"

	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/session"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	brush   input.Brush

	onColor  color.Color
	offColor color.Color

	cellSize int
	tps      int
}

// New constructs a Game for the provided session.
func New(sess *session.Controller, cfg *Config) *Game {
	size := sess.Size()
	g := &Game{
		sess:     sess,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(size, cfg.CellSize, cfg.Ghost),
		onColor:  color.White,
		offColor: color.Black,
		cellSize: cfg.CellSize,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sess, hudWidth)
	}
	return g
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	for _, cmd := range g.commands() {
		if input.Apply(g.sess, cmd) {
			return ebiten.Termination
		}
	}
	g.handlePointer()
	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	g.sess.AdvanceIfPlaying()

	if rate := g.sess.TickRate(); rate != g.tps {
		g.tps = rate
		ebiten.SetTPS(rate)
	}
	return nil
}

// commands polls the keyboard. Play, clear, randomize and quit fire on
// release; step and restore fire on press.
func (g *Game) commands() []input.Command {
	var cmds []input.Command
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		cmds = append(cmds, input.TogglePlay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cmds = append(cmds, input.Step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cmds = append(cmds, input.Restore)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyBackspace) {
		cmds = append(cmds, input.Clear)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		cmds = append(cmds, input.Randomize)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		cmds = append(cmds, input.Quit)
	}
	return cmds
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	row, col, ok := input.CellAt(x, y, g.cellSize, g.sess.Size())

	for _, b := range pointerButtons {
		btn, mb := b.btn, b.mouse
		if inpututil.IsMouseButtonJustReleased(mb) {
			g.brush.Up(btn)
		}
		if ok && inpututil.IsMouseButtonJustPressed(mb) {
			g.brush.Down(g.sess, btn, row, col)
		}
	}
	if ok {
		g.brush.Move(g.sess, row, col)
	}
}

var pointerButtons = []struct {
	btn   input.Button
	mouse ebiten.MouseButton
}{
	{input.Primary, ebiten.MouseButtonLeft},
	{input.Secondary, ebiten.MouseButtonRight},
}

func (g *Game) boardWidth() int { return g.sess.Size().W * g.cellSize }

// Draw renders the current board, the baseline ghost while paused, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Current().Cells(), g.onColor, g.offColor, g.cellSize)
	if !g.sess.Playing() {
		g.overlay.Draw(screen, g.sess.Current(), g.sess.Saved())
	}
	g.hud.Draw(screen, g.boardWidth(), g.sess.Size().H*g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Size()
	return s.W*g.cellSize + g.hud.Width(), s.H * g.cellSize
}
