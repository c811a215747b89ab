// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/input"
	"lifeboard/internal/session"
	"lifeboard/pkg/random"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const cellWidth = 2

// Terminal draws a session on a tcell screen and feeds it keyboard and mouse
// events. A single loop owns the session.
type Terminal struct {
	screen tcell.Screen
	sess   *session.Controller
	brush  input.Brush
	pacer  *core.Pacer
	ghost  bool

	buttons tcell.ButtonMask

	alive  tcell.Style
	dead   tcell.Style
	shadow tcell.Style
	status tcell.Style
}

// New creates a Terminal on an initialized screen.
func New(screen tcell.Screen, cfg *Config) *Terminal {
	sw, sh := screen.Size()
	sess := session.New(cfg.Session(sw, sh), random.FromSeed(cfg.Seed))
	return &Terminal{
		screen: screen,
		sess:   sess,
		pacer:  core.NewPacer(sess.TickRate()),
		ghost:  cfg.Ghost,
		alive:  tcell.StyleDefault.Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
		shadow: tcell.StyleDefault.Background(tcell.ColorNavy),
		status: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

// Session exposes the controller driven by the terminal.
func (t *Terminal) Session() *session.Controller { return t.sess }

// Run pumps screen events and ticks until quit is requested, the event
// stream ends or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return t.loop(ctx, events)
	})
	return g.Wait()
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(t.pacer.Interval())
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || t.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			t.Tick()
			if t.pacer.SetTPS(t.sess.TickRate()) {
				ticker.Reset(t.pacer.Interval())
			}
		}
	}
}

// Tick advances the session if it is playing and redraws.
func (t *Terminal) Tick() {
	t.sess.AdvanceIfPlaying()
	t.Draw()
}

// Handle applies one event and reports whether the loop should exit.
func (t *Terminal) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'g' || ev.Rune() == 'G') {
			t.ghost = !t.ghost
			return false
		}
		return input.Apply(t.sess, keyCommand(ev))
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func keyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyRight:
		return input.Step
	case tcell.KeyLeft:
		return input.Restore
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Clear
	case tcell.KeyEnter:
		return input.Randomize
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.TogglePlay
		case 'q', 'Q':
			return input.Quit
		}
	}
	return input.None
}

var mouseButtons = []struct {
	btn  input.Button
	mask tcell.ButtonMask
}{
	{input.Primary, tcell.ButtonPrimary},
	{input.Secondary, tcell.ButtonSecondary},
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col, ok := input.CellAt(x/cellWidth, y, 1, t.sess.Size())
	now := ev.Buttons()
	for _, b := range mouseButtons {
		was, is := t.buttons&b.mask != 0, now&b.mask != 0
		switch {
		case was && !is:
			t.brush.Up(b.btn)
		case !was && is && ok:
			t.brush.Down(t.sess, b.btn, row, col)
		}
	}
	t.buttons = now
	if ok {
		t.brush.Move(t.sess, row, col)
	}
}

// Draw renders the board and the status line.
func (t *Terminal) Draw() {
	cur, saved := t.sess.Current(), t.sess.Saved()
	showGhost := t.ghost && !t.sess.Playing()
	size := cur.Size()
	cells, base := cur.Cells(), saved.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			idx := row*size.W + col
			style := t.dead
			switch {
			case cells[idx] == core.Alive:
				style = t.alive
			case showGhost && base[idx] == core.Alive:
				style = t.shadow
			}
			for i := 0; i < cellWidth; i++ {
				t.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}
	t.drawStatus(size.H)
	t.screen.Show()
}

func (t *Terminal) drawStatus(y int) {
	sw, sh := t.screen.Size()
	if y >= sh {
		return
	}
	line := fmt.Sprintf(" %s  gen %d  pop %d  tps %d  [space] play [→] step [←] restore [bksp] clear [enter] random [q] quit",
		t.sess.State(), t.sess.Generation(), t.sess.Current().Population(), t.sess.TickRate())
	x := 0
	for _, r := range line {
		if x >= sw {
			break
		}
		t.screen.SetContent(x, y, r, nil, t.status)
		x++
	}
	for ; x < sw; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.status)
	}
}
