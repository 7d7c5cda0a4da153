package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ballplay/internal/sim"
)

// input samples keyboard and mouse state for one frame. Auto-walk replaces
// the keyboard part while it runs.
func (g *Game) input() sim.Input {
	var in sim.Input
	if g.autoWalk {
		if time.Now().After(g.autoWalkDeadline) {
			g.finishAutoWalk()
		} else {
			in = g.autoWalkVector()
		}
	}
	if !g.autoWalk {
		in.Up = ebiten.IsKeyPressed(ebiten.KeyW)
		in.Down = ebiten.IsKeyPressed(ebiten.KeyS)
		in.Left = ebiten.IsKeyPressed(ebiten.KeyA)
		in.Right = ebiten.IsKeyPressed(ebiten.KeyD)
		in.Jump = inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	}

	cx, cy := ebiten.CursorPosition()
	in.Cursor = sim.Vec2{X: float64(cx), Y: float64(cy)}
	in.MouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.MouseReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return in
}

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autoWalkFrameCount = 0
	log.Printf("Auto-walk enabled for %s", duration)
}

// finishAutoWalk ends scripted movement and stops any profile it recorded.
func (g *Game) finishAutoWalk() {
	if g.autoWalk {
		log.Printf("Auto-walk finished")
	}
	g.autoWalk = false
	if g.profile != nil {
		path, err := g.profile.Stop()
		g.profile = nil
		if err != nil {
			log.Printf("CPU profile incomplete: %v", err)
		} else {
			log.Printf("CPU profile written to %s", path)
		}
	}
}

// autoWalkVector holds a random key combination for a random number of
// frames, then picks another one.
func (g *Game) autoWalkVector() sim.Input {
	if g.autoWalkFrameCount <= 0 {
		g.randomizeAutoWalkDirection()
	}
	g.autoWalkFrameCount--
	in := g.autoWalkInput
	in.Jump = g.autoWalkRand.Intn(autoWalkJumpOdds) == 0
	return in
}

// randomizeAutoWalkDirection picks one of the eight WASD headings.
func (g *Game) randomizeAutoWalkDirection() {
	var in sim.Input
	for in == (sim.Input{}) {
		switch g.autoWalkRand.Intn(3) {
		case 0:
			in.Up = true
		case 1:
			in.Down = true
		}
		switch g.autoWalkRand.Intn(3) {
		case 0:
			in.Left = true
		case 1:
			in.Right = true
		}
	}
	g.autoWalkInput = in
	g.autoWalkFrameCount = autoWalkMinFrames + g.autoWalkRand.Intn(autoWalkMaxFrames-autoWalkMinFrames+1)
}

// handleHotkeys processes variant, reset, overlay and audio hotkeys. It
// reports true when the player asked to quit.
func (g *Game) handleHotkeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.setVariant(sim.VariantDrag)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.setVariant(sim.VariantVelocity)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.setVariant(sim.VariantGravity)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.setVariant(g.world.Variant().Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.prefs.SetDebug(!g.prefs.Settings().Debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleAudio()
	}
	return false
}
