package main

import (
	"flag"
	"fmt"

	"ballplay/internal/settings"
	"ballplay/internal/sim"
)

// Command-line flags. Flags given explicitly override the saved settings.
var (
	// configPathFlag points at an optional YAML tuning file.
	configPathFlag = flag.String("config", "", "path to a YAML tuning file (canvas, balls, motion, physics)")

	// variantFlag selects the starting variant.
	variantFlag = flag.String("variant", "drag", "starting variant: drag, velocity or gravity")

	// debugFlag enables the FPS and ball state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and ball state overlay")

	enableAudioFlag = flag.Bool("enable-audio", false, "play a blip on each collision")

	// hitSoundFlag replaces the synthesized blip with a WAV file.
	hitSoundFlag = flag.String("hit-sound", "", "WAV file played on collision instead of the synthesized blip")

	volumeFlag = flag.Float64("volume", 0.5, "collision sound volume (0-1)")

	// autoWalkFlag drives the keyboard ball randomly for a while.
	autoWalkFlag = flag.Duration("auto-walk", 0, "walk the keyboard ball randomly for this long (e.g. 15s)")

	// recordPGOFlag captures a CPU profile while auto-walking.
	recordPGOFlag = flag.String("record-pgo", "", "write a CPU profile to this path for the auto-walk duration")

	noSaveFlag = flag.Bool("no-save", false, "do not load or persist settings")
)

// applyFlagOverrides copies explicitly set flags into the settings.
func applyFlagOverrides(prefs *settings.Manager) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			v, perr := sim.ParseVariant(*variantFlag)
			if perr != nil {
				err = fmt.Errorf("-variant: %w", perr)
				return
			}
			prefs.SetVariant(v)
		case "debug":
			prefs.SetDebug(*debugFlag)
		case "enable-audio":
			prefs.SetAudioEnabled(*enableAudioFlag)
		case "volume":
			prefs.SetVolume(*volumeFlag)
		}
	})
	return err
}
