package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ballplay/internal/config"
	"ballplay/internal/settings"
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPathFlag != "" {
		loaded, err := config.Load(*configPathFlag)
		if err != nil {
			log.Fatalf("Config load failed: %v", err)
		}
		cfg = loaded
		log.Printf("[Config] Loaded %s", *configPathFlag)
	}

	var prefs *settings.Manager
	if *noSaveFlag {
		prefs = settings.NewManager(nil)
	} else {
		prefs = settings.Open(appName)
	}
	if err := applyFlagOverrides(prefs); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	g := newGame(cfg, prefs)
	if *autoWalkFlag > 0 {
		if *recordPGOFlag != "" {
			profile, err := startCPUProfile(*recordPGOFlag)
			if err != nil {
				log.Fatalf("CPU profile start failed: %v", err)
			}
			g.profile = profile
		}
		g.enableAutoWalk(*autoWalkFlag)
	}

	ebiten.SetWindowSize(cfg.Canvas.Width+cfg.Canvas.Border, cfg.Canvas.Height+cfg.Canvas.Border)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(defaultTPS)

	runErr := ebiten.RunGame(g)
	g.close()
	if !*noSaveFlag {
		if err := prefs.Save(); err != nil {
			log.Printf("[Settings] %v", err)
		}
	}
	if runErr != nil {
		log.Fatalf("Game exited with error: %v", runErr)
	}
}
