package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 3, c.Sides)
	assert.Equal(t, 10, c.Subdivisions)
	assert.Equal(t, 150.0, c.Radius)
	assert.Equal(t, Point{X: 200, Y: 200}, c.Center)
	assert.Equal(t, 200, c.MaxFrames)
	assert.Equal(t, 20*time.Millisecond, c.TickInterval)
	assert.Equal(t, 50, c.TPS())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	doc := `
sides: 7
center: {x: 320, y: 240}
tick_interval: 40ms
sound: true
log:
  level: debug
`
	c, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 7, c.Sides)
	assert.Equal(t, Point{X: 320, Y: 240}, c.Center)
	assert.Equal(t, 40*time.Millisecond, c.TickInterval)
	assert.Equal(t, 25, c.TPS())
	assert.True(t, c.Sound)
	assert.Equal(t, "debug", c.Log.Level)

	// untouched keys keep defaults
	assert.Equal(t, 10, c.Subdivisions)
	assert.Equal(t, 0.01, c.Step)
}

func TestDecodeEmptyDocument(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("sides: 2\nsubdivisions: 0\nstep: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sides")
	assert.Contains(t, err.Error(), "subdivisions")
	assert.Contains(t, err.Error(), "step")
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("sides: [1, 2"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radius: 90\nmax_frames: 10\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90.0, c.Radius)
	assert.Equal(t, 10, c.MaxFrames)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
