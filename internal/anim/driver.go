package anim

import (
	"fmt"

	"github.com/jbeda/geom"
	"go.uber.org/zap"

	"github.com/iburimskiy/polygon-morph/internal/shape"
	"github.com/iburimskiy/polygon-morph/internal/surface"
)

// Label positions, matching a 400px wide canvas.
var (
	SidesLabelAt = geom.Coord{X: 50, Y: 20}
	ULabelAt     = geom.Coord{X: 350, Y: 20}
)

// Driver owns the animation state and the shape model and pushes every frame
// to a surface. It is not safe for concurrent use.
type Driver struct {
	state   State
	polygon *shape.Polygon
	surface surface.Surface
	log     *zap.Logger

	markers    []surface.ItemID
	outline    surface.ItemID
	sidesLabel surface.ItemID
	uLabel     surface.ItemID
	finished   bool

	// OnBounce, if set, is called every time the morph direction flips.
	OnBounce func(u float64)
}

func NewDriver(p *shape.Polygon, state State, s surface.Surface, lg *zap.Logger) *Driver {
	if lg == nil {
		lg = zap.NewNop()
	}
	d := &Driver{
		state:   state,
		polygon: p,
		surface: s,
		log:     lg,
	}
	d.createMarkers()
	d.outline = s.CreatePolygon()
	d.sidesLabel = s.CreateText(SidesLabelAt, sidesText(p.Sides()))
	d.uLabel = s.CreateText(ULabelAt, uText(state.U))
	return d
}

func (d *Driver) createMarkers() {
	d.markers = d.markers[:0]
	for i := 0; i < d.polygon.Sides(); i++ {
		d.markers = append(d.markers, d.surface.CreateMarker(geom.Rect{}))
	}
}

func (d *Driver) State() State { return d.state }

func (d *Driver) Polygon() *shape.Polygon { return d.polygon }

func (d *Driver) Running() bool { return d.state.Running() }

// Tick advances the animation by one frame and redraws it. It returns false,
// without touching the surface, once the frame budget is exhausted.
func (d *Driver) Tick() bool {
	if !d.state.Running() {
		if !d.finished {
			d.finished = true
			d.log.Info("animation finished", zap.Int("frames", d.state.Frame))
		}
		return false
	}

	if d.state.Advance() {
		d.log.Debug("direction flipped",
			zap.Int("frame", d.state.Frame),
			zap.Float64("u", d.state.U),
			zap.Int("direction", d.state.Direction))
		if d.OnBounce != nil {
			d.OnBounce(d.state.U)
		}
	}
	d.Redraw()
	return true
}

// Redraw pushes the current state to the surface without advancing it.
func (d *Driver) Redraw() {
	f := d.polygon.Frame(d.state.U)

	d.surface.SetCoords(d.outline, f.Flat())
	for k, id := range d.markers {
		if k < len(f.Vertices) {
			d.surface.SetBounds(id, shape.Marker(f.Vertices[k], shape.MarkerRadius))
		}
	}
	d.surface.SetText(d.sidesLabel, sidesText(d.polygon.Sides()))
	d.surface.SetText(d.uLabel, uText(d.state.U))
}

func (d *Driver) Restart() {
	d.state.Restart()
	d.finished = false
	d.log.Info("animation restarted", zap.Int("sides", d.polygon.Sides()))
}

// SetSides changes the polygon and rebuilds the vertex markers. The
// animation state is left alone.
func (d *Driver) SetSides(n int) error {
	if err := d.polygon.SetSides(n); err != nil {
		return err
	}
	for _, id := range d.markers {
		d.surface.Delete(id)
	}
	d.createMarkers()
	d.Redraw()
	d.log.Info("sides changed", zap.Int("sides", n))
	return nil
}

func sidesText(n int) string { return fmt.Sprintf("n: %d", n) }

func uText(u float64) string { return fmt.Sprintf("u: %.2f", u) }
