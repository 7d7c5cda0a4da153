package main

import (
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hitAudioStream is an endless stereo PCM stream that is silent until
// Trigger restarts the hit sound from its first sample.
type hitAudioStream struct {
	mu      sync.Mutex
	samples []float32
	pos     int
}

func newHitAudioStream(samples []float32) *hitAudioStream {
	return &hitAudioStream{samples: samples, pos: len(samples)}
}

// Trigger restarts the hit sound.
func (s *hitAudioStream) Trigger() {
	s.mu.Lock()
	s.pos = 0
	s.mu.Unlock()
}

func (s *hitAudioStream) Read(p []byte) (int, error) {
	// Ensure we generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += 4 {
		var v int16
		if s.pos < len(s.samples) {
			v = int16(clampUnit(s.samples[s.pos]) * pcm16MaxValue)
			s.pos++
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *hitAudioStream) Close() error {
	return nil
}

func clampUnit(v float32) float32 {
	if v > 1 {
		return 1
	} else if v < -1 {
		return -1
	}
	return v
}

// synthBlip renders a short decaying sine used when no hit sound is loaded.
func synthBlip(sampleRate int) []float32 {
	n := int(float64(sampleRate) * blipDuration.Seconds())
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-blipDecay * t)
		out[i] = float32(0.6 * env * math.Sin(2*math.Pi*blipFrequency*t))
	}
	return out
}

// hitSound owns the audio player that voices collisions.
type hitSound struct {
	stream  *hitAudioStream
	player  *audio.Player
	enabled bool
}

// newHitSound creates the audio context and player. wavPath may be empty,
// in which case a synthesized blip is used.
func newHitSound(wavPath string, volume float64, enabled bool) (*hitSound, error) {
	samples := synthBlip(audioSampleRate)
	if wavPath != "" {
		loaded, err := loadHitSamples(audioSampleRate, wavPath)
		if err != nil {
			log.Printf("[Audio] Hit sound %q unusable, falling back to blip: %v", wavPath, err)
		} else {
			samples = loaded
		}
	}
	ctx := sharedAudioContext()
	stream := newHitAudioStream(samples)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	player.SetBufferSize(audioPlayerBufferLatency)
	player.SetVolume(volume)
	player.Play()
	return &hitSound{stream: stream, player: player, enabled: enabled}, nil
}

// sharedAudioContext returns the process-wide audio context, creating it on
// first use. Ebiten allows only one context per process.
func sharedAudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(audioSampleRate)
}

// Play voices one collision when audio is enabled.
func (h *hitSound) Play() {
	if h == nil || !h.enabled {
		return
	}
	h.stream.Trigger()
}

func (h *hitSound) SetEnabled(on bool) {
	if h != nil {
		h.enabled = on
	}
}

func (h *hitSound) Close() {
	if h == nil || h.player == nil {
		return
	}
	if err := h.player.Close(); err != nil {
		log.Printf("[Audio] Player close failed: %v", err)
	}
}
