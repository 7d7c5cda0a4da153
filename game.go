package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ballplay/internal/config"
	"ballplay/internal/settings"
	"ballplay/internal/sim"
)

// Game adapts the two-ball world to Ebiten's update/draw loop.
type Game struct {
	cfg   *config.Config
	world *sim.World
	prefs *settings.Manager
	hits  *hitSound

	// canvasW/H is the size reported by the last Layout call; Update
	// applies it to the world.
	canvasW int
	canvasH int

	lastStep    sim.StepResult
	lastStepDur time.Duration

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkInput      sim.Input
	autoWalkFrameCount int
	profile            *cpuProfile
}

// newGame builds the world from cfg and applies the saved preferences.
func newGame(cfg *config.Config, prefs *settings.Manager) *Game {
	s := prefs.Settings()
	g := &Game{
		cfg:          cfg,
		prefs:        prefs,
		canvasW:      cfg.Canvas.Width,
		canvasH:      cfg.Canvas.Height,
		autoWalkRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.world = sim.NewWorld(cfg.Params(), cfg.Balls.Key.Ball(), cfg.Balls.Mouse.Ball(),
		s.Variant, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))

	if s.AudioEnabled || *hitSoundFlag != "" {
		hits, err := newHitSound(*hitSoundFlag, s.Volume, s.AudioEnabled)
		if err != nil {
			log.Printf("[Audio] Player creation failed: %v", err)
		} else {
			g.hits = hits
		}
	}
	log.Printf("Starting in %s mode (%dx%d)", s.Variant, cfg.Canvas.Width, cfg.Canvas.Height)
	return g
}

// Update advances the world by one frame.
func (g *Game) Update() error {
	if g.handleHotkeys() {
		return ebiten.Termination
	}
	if w, h := g.world.Size(); int(w) != g.canvasW || int(h) != g.canvasH {
		g.world.Resize(float64(g.canvasW), float64(g.canvasH))
	}

	start := time.Now()
	g.lastStep = g.world.Step(g.input(), start)
	g.lastStepDur = time.Since(start)
	if g.lastStep.Hit {
		g.hits.Play()
	}
	return nil
}

// setVariant switches the motion model and remembers the choice.
func (g *Game) setVariant(v sim.Variant) {
	if v == g.world.Variant() {
		return
	}
	g.world.SetVariant(v)
	g.prefs.SetVariant(v)
	log.Printf("Switched to %s mode", v)
}

// toggleAudio flips collision sounds, creating the player on first use.
func (g *Game) toggleAudio() {
	on := !g.prefs.Settings().AudioEnabled
	g.prefs.SetAudioEnabled(on)
	if on && g.hits == nil {
		hits, err := newHitSound(*hitSoundFlag, g.prefs.Settings().Volume, true)
		if err != nil {
			log.Printf("[Audio] Player creation failed: %v", err)
			g.prefs.SetAudioEnabled(false)
			return
		}
		g.hits = hits
	}
	g.hits.SetEnabled(on)
}

// close releases audio and finishes any running profile.
func (g *Game) close() {
	g.finishAutoWalk()
	g.hits.Close()
}
