package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ballplay/internal/sim"
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	borderColor     = color.RGBA{A: 255}
	grabRingColor   = color.RGBA{A: 160}
)

// Draw clears the canvas and renders both balls plus the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := g.world.Size()
	vector.StrokeRect(screen, 0, 0, float32(w), float32(h), borderWidth, borderColor, false)

	drawBall(screen, g.world.KeyBall())
	drawBall(screen, g.world.MouseBall())

	if g.prefs.Settings().Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func drawBall(screen *ebiten.Image, b *sim.Ball) {
	x, y, r := float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius)
	vector.DrawFilledCircle(screen, x, y, r, b.Color, true)
	if b.Grabbed {
		vector.StrokeCircle(screen, x, y, r+3, 2, grabRingColor, true)
	}
}

func (g *Game) debugText() string {
	tps := ebiten.ActualTPS()
	if tps < 0 {
		tps = 0
	}
	k, m := g.world.KeyBall(), g.world.MouseBall()
	audioState := "off"
	if g.prefs.Settings().AudioEnabled {
		audioState = "on"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f (%.2fx)\nMode: %s [1/2/3, Tab]  R reset  M audio (%s)\n"+
		"Key   (%.1f, %.1f) v=(%.2f, %.2f)\nMouse (%.1f, %.1f) v=(%.2f, %.2f)\nCollisions: %d  Step: %.3f ms",
		ebiten.ActualFPS(), tps, tps/defaultTPS,
		g.world.Variant(), audioState,
		k.Pos.X, k.Pos.Y, k.Vel.X, k.Vel.Y,
		m.Pos.X, m.Pos.Y, m.Vel.X, m.Vel.Y,
		g.world.Collisions(), g.lastStepDur.Seconds()*1000)
}

// Layout sizes the canvas from the window: the width always follows the
// window less the border, the height does so only when not fixed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvasW, g.canvasH = canvasSize(g.cfg.Canvas.Width, g.cfg.Canvas.Height,
		g.cfg.Canvas.Border, g.cfg.Canvas.FixedHeight, outsideWidth, outsideHeight)
	return g.canvasW, g.canvasH
}

// canvasSize applies the resize rule to an outside window size.
func canvasSize(width, height, border int, fixedHeight bool, outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return width, height
	}
	cw := outsideWidth - border
	if cw < 1 {
		cw = 1
	}
	ch := height
	if !fixedHeight {
		ch = outsideHeight - border
		if ch < 1 {
			ch = 1
		}
	}
	return cw, ch
}
