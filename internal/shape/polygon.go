// Package shape computes the outline of a regular polygon morphing into its
// circumscribed circle.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/iburimskiy/polygon-morph/internal/geometry"
)

const (
	MinSides            = 3
	DefaultSubdivisions = 10
	MarkerRadius        = 3
)

var (
	ErrTooFewSides    = errors.New("polygon needs at least 3 sides")
	ErrNoSubdivisions = errors.New("polygon needs at least 1 subdivision per edge")
)

// Polygon holds the subdivision state of an n-sided polygon.
type Polygon struct {
	sides        int
	subdivisions int
	screen       geometry.Screen
}

func NewPolygon(sides, subdivisions int, screen geometry.Screen) (*Polygon, error) {
	if sides < MinSides {
		return nil, fmt.Errorf("sides=%d: %w", sides, ErrTooFewSides)
	}
	if subdivisions < 1 {
		return nil, fmt.Errorf("subdivisions=%d: %w", subdivisions, ErrNoSubdivisions)
	}
	return &Polygon{sides: sides, subdivisions: subdivisions, screen: screen}, nil
}

func (p *Polygon) Sides() int { return p.sides }
func (p *Polygon) Subdivisions() int { return p.subdivisions }

func (p *Polygon) Screen() geometry.Screen { return p.screen }

func (p *Polygon) SetSides(sides int) error {
	if sides < MinSides {
		return fmt.Errorf("sides=%d: %w", sides, ErrTooFewSides)
	}
	p.sides = sides
	return nil
}

// Frame is the geometry of a single animation frame in screen space.
type Frame struct {
	// Outline holds sides*subdivisions points, edge by edge. Connecting
	// them in order and back to the first point closes the shape.
	Outline []geom.Coord
	// Vertices holds, per edge, the first outline sample of that edge.
	Vertices []geom.Coord
}

// Flat returns the outline as x0, y0, x1, y1, ...
func (f Frame) Flat() []float64 {
	flat := make([]float64, 0, 2*len(f.Outline))
	for _, c := range f.Outline {
		flat = append(flat, c.X, c.Y)
	}
	return flat
}

// Frame computes the outline for morph parameter u, where 0 is the pure
// polygon and 1 the pure circle. Inputs are not validated here; a polygon
// with no sides yields an empty frame.
func (p *Polygon) Frame(u float64) Frame {
	n, s := p.sides, p.subdivisions
	if n <= 0 || s <= 0 {
		return Frame{}
	}

	f := Frame{
		Outline:  make([]geom.Coord, 0, n*s),
		Vertices: make([]geom.Coord, n),
	}
	for k := 0; k < n; k++ {
		v1 := geometry.VertexOnUnitCircle(n, k)
		v2 := geometry.VertexOnUnitCircle(n, (k+1)%n)

		for i := 0; i < s; i++ {
			t := float64(i) / float64(s)
			edge := geometry.Interpolate(v1, v2, t)
			arc := geometry.PointOnCircle(2 * math.Pi * (float64(k) + t) / float64(n))

			pt := p.screen.ToScreen(geometry.Interpolate(edge, arc, u))
			f.Outline = append(f.Outline, pt)
			if i == 0 {
				f.Vertices[k] = pt
			}
		}
	}
	return f
}

// Marker returns the bounding box of a vertex marker centered on c.
func Marker(c geom.Coord, r float64) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: c.X - r, Y: c.Y - r},
		Max: geom.Coord{X: c.X + r, Y: c.Y + r},
	}
}

// Circumcircle returns the screen bounding box of the circumscribed circle.
func (p *Polygon) Circumcircle() geom.Rect {
	return p.screen.Bounds()
}
