package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
)

// cpuProfile is a CPU profile being written for the auto-walk window.
type cpuProfile struct {
	path string
	file *os.File

	once    sync.Once
	stopErr error
}

// startCPUProfile begins writing a CPU profile to path.
func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %q: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	return &cpuProfile{path: path, file: f}, nil
}

// Stop flushes the profile and returns the path it was written to. Later
// calls return the same result.
func (p *cpuProfile) Stop() (string, error) {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			p.stopErr = fmt.Errorf("closing profile %q: %w", p.path, err)
		}
	})
	return p.path, p.stopErr
}
