package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iburimskiy/polygon-morph/internal/geometry"
	"github.com/iburimskiy/polygon-morph/internal/shape"
	"github.com/iburimskiy/polygon-morph/internal/surface"
)

func newTestDriver(t *testing.T, sides, maxFrames int) (*Driver, *surface.Canvas) {
	t.Helper()
	p, err := shape.NewPolygon(sides, shape.DefaultSubdivisions, geometry.DefaultScreen)
	require.NoError(t, err)
	c := surface.NewCanvas()
	return NewDriver(p, NewState(0.01, maxFrames), c, nil), c
}

func itemsOf(c *surface.Canvas, k surface.Kind) []surface.Item {
	var out []surface.Item
	for _, it := range c.Items() {
		if it.Kind == k {
			out = append(out, it)
		}
	}
	return out
}

func TestNewDriverCreatesItems(t *testing.T) {
	_, c := newTestDriver(t, 5, 10)

	assert.Len(t, itemsOf(c, surface.KindMarker), 5)
	assert.Len(t, itemsOf(c, surface.KindPolygon), 1)

	texts := itemsOf(c, surface.KindText)
	require.Len(t, texts, 2)
	assert.Equal(t, "n: 5", texts[0].Text)
	assert.Equal(t, "u: 0.00", texts[1].Text)
}

func TestDriverTickUpdatesSurface(t *testing.T) {
	d, c := newTestDriver(t, 3, 10)

	require.True(t, d.Tick())
	assert.InDelta(t, 0.01, d.State().U, 1e-12)
	assert.Equal(t, 1, d.State().Frame)

	poly := itemsOf(c, surface.KindPolygon)[0]
	assert.Len(t, poly.Points(), 3*shape.DefaultSubdivisions)

	want := d.Polygon().Frame(d.State().U)
	markers := itemsOf(c, surface.KindMarker)
	for k, m := range markers {
		assert.Equal(t, shape.Marker(want.Vertices[k], shape.MarkerRadius), m.Bounds)
	}
	assert.Equal(t, "u: 0.01", itemsOf(c, surface.KindText)[1].Text)
}

func TestDriverStopsAndRestarts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p, err := shape.NewPolygon(4, 2, geometry.DefaultScreen)
	require.NoError(t, err)
	d := NewDriver(p, NewState(0.01, 5), surface.NewCanvas(), zap.New(core))

	ticks := 0
	for d.Tick() {
		ticks++
	}
	assert.Equal(t, 6, ticks)
	assert.False(t, d.Running())
	assert.False(t, d.Tick())
	assert.Equal(t, 1, logs.FilterMessage("animation finished").Len())

	d.Restart()
	assert.True(t, d.Running())
	assert.Equal(t, 0.0, d.State().U)
	assert.Equal(t, 1, d.State().Direction)
	assert.True(t, d.Tick())
}

func TestDriverOnBounce(t *testing.T) {
	p, err := shape.NewPolygon(3, 1, geometry.DefaultScreen)
	require.NoError(t, err)
	d := NewDriver(p, NewState(0.25, 20), surface.NewCanvas(), nil)

	var bounces []float64
	d.OnBounce = func(u float64) { bounces = append(bounces, u) }
	for d.Tick() {
	}
	// up in 4 steps, down in 4, up in 4, down in 4, up in 4, then one more tick
	assert.Equal(t, []float64{1, 0, 1, 0, 1}, bounces)
}

func TestDriverSetSides(t *testing.T) {
	d, c := newTestDriver(t, 3, 10)
	d.Tick()

	require.NoError(t, d.SetSides(6))
	assert.Len(t, itemsOf(c, surface.KindMarker), 6)
	assert.Len(t, itemsOf(c, surface.KindPolygon)[0].Points(), 6*shape.DefaultSubdivisions)
	assert.Equal(t, "n: 6", itemsOf(c, surface.KindText)[0].Text)

	assert.ErrorIs(t, d.SetSides(2), shape.ErrTooFewSides)
	assert.Len(t, itemsOf(c, surface.KindMarker), 6)
}

func TestRunCompletes(t *testing.T) {
	d, _ := newTestDriver(t, 3, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, Run(ctx, d, time.Millisecond))
	assert.False(t, d.Running())
	assert.Equal(t, 5, d.State().Frame)
}

func TestRunCancelled(t *testing.T) {
	d, _ := newTestDriver(t, 3, 1_000_000)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := Run(ctx, d, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, d.Running())
}
