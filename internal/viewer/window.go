// Package viewer shows the engine's frames in a desktop window.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solar-raster/internal/controls"
	"solar-raster/internal/pipeline"
)

const tps = 60

// Run opens a window and blocks until it closes.
func Run(ctl *controls.Controller, title string) error {
	w, h := ctl.Engine.Size()
	g := &game{ctl: ctl, width: w, height: h}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

type game struct {
	ctl           *controls.Controller
	width, height int
	fbImg         *ebiten.Image

	dragging     bool
	lastX, lastY int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ctl.Apply(g.poll(), 1.0/tps)
	return nil
}

func (g *game) poll() controls.Input {
	in := controls.Input{Focus: controls.NoFocus}

	in.OrbitX = axis(ebiten.KeyArrowRight, ebiten.KeyArrowLeft)
	in.OrbitY = axis(ebiten.KeyArrowUp, ebiten.KeyArrowDown)
	in.Zoom = axis(ebiten.KeyW, ebiten.KeyS)
	in.PanX = axis(ebiten.KeyD, ebiten.KeyA)
	in.PanY = axis(ebiten.KeyE, ebiten.KeyQ)

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		in.DragX = float64(x - g.lastX)
		in.DragY = float64(y - g.lastY)
		g.lastX, g.lastY = x, y
	}
	_, in.Wheel = ebiten.Wheel()

	in.Wireframe = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.HUD = inpututil.IsKeyJustPressed(ebiten.KeyH)
	in.NextBackdrop = inpututil.IsKeyJustPressed(ebiten.KeyB)
	in.DetailUp = inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)
	in.DetailDown = inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)

	in.NextPattern = inpututil.IsKeyJustPressed(ebiten.KeyM)

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i, k := range focusKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if shift {
			if i < pipeline.NumPatterns {
				in.Pattern = i + 1
			}
		} else {
			in.Focus = i
		}
	}
	return in
}

var focusKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func axis(pos, neg ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}
	frame := g.ctl.Engine.Frame(g.ctl.State.Time, g.ctl.Camera, g.ctl.Options())
	g.fbImg.WritePixels(frame.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
