package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// pcmFrameBytes is one 16-bit stereo frame as produced by Ebiten's decoders.
const pcmFrameBytes = 4

// loadHitSamples reads the WAV at path and returns mono samples at
// sampleRate.
func loadHitSamples(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeHitWAV(sampleRate, raw, path)
}

// decodeHitWAV resamples raw WAV data to sampleRate and folds each stereo
// frame into one sample in [-1, 1).
func decodeHitWAV(sampleRate int, raw []byte, name string) ([]float32, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", name, err)
	}

	samples := make([]float32, 0, len(pcm)/pcmFrameBytes)
	for off := 0; off+pcmFrameBytes <= len(pcm); off += pcmFrameBytes {
		left := int32(int16(binary.LittleEndian.Uint16(pcm[off:])))
		right := int32(int16(binary.LittleEndian.Uint16(pcm[off+2:])))
		samples = append(samples, float32(left+right)/(2*32768))
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no usable samples", name)
	}
	return samples, nil
}
