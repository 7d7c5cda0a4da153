package main

import "time"

// Application constants for the window, audio and scripted walking. Canvas
// size, ball styling and motion tuning live in internal/config.
const (
	appName     = "ballplay"
	windowTitle = "Ball Play"
	defaultTPS  = 60.0

	audioSampleRate          = 48000
	audioPlayerBufferLatency = 40 * time.Millisecond
	pcm16MaxValue            = 32767

	blipFrequency = 660.0
	blipDuration  = 90 * time.Millisecond
	blipDecay     = 40.0

	autoWalkMinFrames = 20
	autoWalkMaxFrames = 70
	autoWalkJumpOdds  = 40

	borderWidth = 2
)
