package surface

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasCreateAndUpdate(t *testing.T) {
	c := NewCanvas()

	m := c.CreateMarker(geom.Rect{})
	p := c.CreatePolygon()
	txt := c.CreateText(geom.Coord{X: 50, Y: 20}, "n: 3")
	assert.Equal(t, 3, c.Len())

	c.SetBounds(m, geom.Rect{Min: geom.Coord{X: 1, Y: 2}, Max: geom.Coord{X: 3, Y: 4}})
	c.SetCoords(p, []float64{0, 0, 10, 0, 10, 10})
	c.SetText(txt, "n: 4")

	it, ok := c.Item(m)
	require.True(t, ok)
	assert.Equal(t, KindMarker, it.Kind)
	assert.Equal(t, geom.Coord{X: 3, Y: 4}, it.Bounds.Max)

	it, ok = c.Item(p)
	require.True(t, ok)
	assert.Equal(t, []geom.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, it.Points())

	it, ok = c.Item(txt)
	require.True(t, ok)
	assert.Equal(t, "n: 4", it.Text)
}

func TestCanvasItemsAreCopies(t *testing.T) {
	c := NewCanvas()
	p := c.CreatePolygon()
	c.SetCoords(p, []float64{1, 2})

	items := c.Items()
	items[0].Coords[0] = 99

	it, _ := c.Item(p)
	assert.Equal(t, []float64{1, 2}, it.Coords)
}

func TestCanvasDeleteKeepsOrder(t *testing.T) {
	c := NewCanvas()
	a := c.CreateMarker(geom.Rect{})
	b := c.CreateMarker(geom.Rect{})
	d := c.CreateCircle(geom.Rect{}, true)

	c.Delete(b)
	c.Delete(b)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, a, items[0].ID)
	assert.Equal(t, d, items[1].ID)
	assert.True(t, items[1].Dashed)

	_, ok := c.Item(b)
	assert.False(t, ok)
}

func TestCanvasIgnoresUnknownIDs(t *testing.T) {
	c := NewCanvas()
	c.SetCoords(42, []float64{1, 2})
	c.SetBounds(42, geom.Rect{})
	c.SetText(42, "x")
	assert.Equal(t, 0, c.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "polygon", KindPolygon.String())
	assert.Equal(t, "unknown", Kind(17).String())
}
