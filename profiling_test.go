package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUProfileStopReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	profile, err := startCPUProfile(path)
	require.NoError(t, err)

	got, err := profile.Stop()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "profile header is written on stop")

	got, err = profile.Stop()
	assert.NoError(t, err, "stopping twice is harmless")
	assert.Equal(t, path, got)
}

func TestCPUProfileBadPath(t *testing.T) {
	_, err := startCPUProfile(filepath.Join(t.TempDir(), "missing", "cpu.pprof"))
	assert.Error(t, err)
}
