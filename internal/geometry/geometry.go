package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// VertexOnUnitCircle returns the j-th vertex of a regular n-gon inscribed in
// the unit circle. j may be any integer; the result is periodic in n.
func VertexOnUnitCircle(n, j int) geom.Coord {
	return PointOnCircle(2 * math.Pi * float64(j) / float64(n))
}

// PointOnCircle returns the point of the unit circle at the given angle.
func PointOnCircle(angle float64) geom.Coord {
	return geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Interpolate returns (1-u)*p1 + u*p2. Values of u outside [0,1] extrapolate.
func Interpolate(p1, p2 geom.Coord, u float64) geom.Coord {
	return geom.Coord{
		X: (1-u)*p1.X + u*p2.X,
		Y: (1-u)*p1.Y + u*p2.Y,
	}
}

// Screen maps unit-circle space to pixel space. Screen y grows downward.
type Screen struct {
	Center geom.Coord
	Radius float64
}

var DefaultScreen = Screen{
	Center: geom.Coord{X: 200, Y: 200},
	Radius: 150,
}

func (s Screen) ToScreen(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: p.X*s.Radius + s.Center.X,
		Y: -p.Y*s.Radius + s.Center.Y,
	}
}

// FromScreen is the inverse of ToScreen. It is undefined for a zero radius.
func (s Screen) FromScreen(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: (p.X - s.Center.X) / s.Radius,
		Y: -(p.Y - s.Center.Y) / s.Radius,
	}
}

// Bounds returns the screen rectangle covered by the unit circle.
func (s Screen) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius},
		Max: geom.Coord{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius},
	}
}

func ToScreenCoords(x, y float64) geom.Coord {
	return DefaultScreen.ToScreen(geom.Coord{X: x, Y: y})
}

const floatEqualThresh = 1e-9

func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEqualThresh
}

func AlmostEqualCoord(a, b geom.Coord) bool {
	return AlmostEqual(a.X, b.X) && AlmostEqual(a.Y, b.Y)
}

// Dashes splits the circle of radius r around c into alternating dash and
// gap arcs of roughly dash length each, and returns the dashes as chords.
func Dashes(c geom.Coord, r, dash float64) [][2]geom.Coord {
	if r <= 0 || dash <= 0 {
		return nil
	}
	n := int(math.Round(2 * math.Pi * r / dash))
	if n < 2 {
		n = 2
	}
	n -= n % 2
	step := 2 * math.Pi / float64(n)

	out := make([][2]geom.Coord, 0, n/2)
	for i := 0; i < n; i += 2 {
		a := PointOnCircle(float64(i) * step).Times(r).Plus(c)
		b := PointOnCircle(float64(i+1) * step).Times(r).Plus(c)
		out = append(out, [2]geom.Coord{a, b})
	}
	return out
}
