//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gridsnake/internal/audio"
	"gridsnake/internal/render"
	"gridsnake/internal/session"
	"gridsnake/internal/ui"
	"gridsnake/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

var turnKeys = []turnBinding[ebiten.Key]{
	{ebiten.KeyArrowUp, core.Up},
	{ebiten.KeyArrowDown, core.Down},
	{ebiten.KeyArrowLeft, core.Left},
	{ebiten.KeyArrowRight, core.Right},
	{ebiten.KeyW, core.Up},
	{ebiten.KeyS, core.Down},
	{ebiten.KeyA, core.Left},
	{ebiten.KeyD, core.Right},
}

// Game adapts a snake session to the ebiten.Game interface. Update is the
// session's single owner: keyboard, pointer and remote commands are all
// applied from it.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cues    *audio.Cues

	remote  <-chan session.Command
	publish func(session.Frame)

	scale int
	frame session.Frame
	dirty bool
}

// New constructs a Game for the provided session. remote may be nil; when
// set, its commands are applied each frame and publish receives every new
// frame.
func New(sess *session.Session, scale int, remote <-chan session.Command, publish func(session.Frame)) *Game {
	w, h := sess.Game().Size()
	g := &Game{
		sess:    sess,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(sess, hudWidth),
		overlay: ui.NewOverlay(scale),
		cues:    audio.NewCues(),
		remote:  remote,
		publish: publish,
		scale:   scale,
	}
	g.cues.Attach(sess.Bus())
	sess.Start(time.Now())
	g.refresh()
	return g
}

// Update handles per-frame input and runs any scheduled tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()

	for _, dir := range pressedTurns(turnKeys, inpututil.IsKeyJustPressed) {
		g.apply(session.Turn(dir), now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.apply(session.Restart(), now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.cues.ToggleMute()
	}
	g.handlePointer(now)

	switch b := g.hud.Update(g.boardWidth()); b {
	case ui.PadNone:
	case ui.PadRestart:
		g.apply(session.Restart(), now)
	default:
		if d, ok := b.Direction(); ok {
			g.apply(session.Turn(d), now)
		}
	}

	g.drainRemote(now)
	g.overlay.Update()

	if g.sess.Poll(now).Changed() {
		g.dirty = true
	}
	if g.dirty {
		g.refresh()
	}
	return nil
}

func (g *Game) apply(cmd session.Command, now time.Time) {
	if g.sess.Apply(cmd, now).Changed() {
		g.dirty = true
	}
}

func (g *Game) drainRemote(now time.Time) {
	if g.remote == nil {
		return
	}
	for {
		select {
		case cmd, ok := <-g.remote:
			if !ok {
				g.remote = nil
				return
			}
			g.apply(cmd, now)
		default:
			return
		}
	}
}

// handlePointer steers toward a clicked or touched board cell.
func (g *Game) handlePointer(now time.Time) {
	var xs, ys []int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		xs, ys = append(xs, x), append(ys, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		xs, ys = append(xs, x), append(ys, y)
	}
	for i := range xs {
		if xs[i] >= g.boardWidth() {
			continue
		}
		target := core.V(xs[i]/g.scale, ys[i]/g.scale)
		if d, ok := ui.Steer(g.sess.Game().Head(), target); ok {
			g.apply(session.Turn(d), now)
		}
	}
}

func (g *Game) refresh() {
	g.frame = g.sess.Frame()
	g.dirty = false
	if g.publish != nil {
		g.publish(g.frame)
	}
}

func (g *Game) boardWidth() int { return g.frame.Projection.W * g.scale }

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	palette := render.Palette
	if g.frame.Finished {
		palette = render.FinishedPalette
	}
	g.painter.Blit(screen, g.frame.Projection, palette, g.scale)
	g.overlay.Draw(screen, g.frame, g.sess.Game().Pending())
	g.hud.Draw(screen, g.boardWidth(), g.frame.Projection.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize returns the board plus HUD size in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.boardWidth() + g.hud.Width(), g.frame.Projection.H * g.scale
}
