// Package surface describes the drawing surface the animation driver talks
// to, and provides Canvas, a retained in-memory implementation of it.
package surface

import (
	"github.com/jbeda/geom"
)

type ItemID int

// Surface is a retained-mode drawing target. Items are created once and then
// updated in place every frame.
type Surface interface {
	CreateMarker(bounds geom.Rect) ItemID
	CreatePolygon() ItemID
	CreateText(at geom.Coord, text string) ItemID
	SetCoords(id ItemID, flat []float64)
	SetBounds(id ItemID, bounds geom.Rect)
	SetText(id ItemID, text string)
	Delete(id ItemID)
}

type Kind int

const (
	KindMarker Kind = iota
	KindPolygon
	KindCircle
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Item is a snapshot of a single drawable. Coords is only meaningful for
// polygons, Bounds for markers and circles, At and Text for labels.
type Item struct {
	ID     ItemID
	Kind   Kind
	Coords []float64
	Bounds geom.Rect
	At     geom.Coord
	Text   string
	Dashed bool
}

// Points returns the polygon coordinates as pairs.
func (it Item) Points() []geom.Coord {
	pts := make([]geom.Coord, 0, len(it.Coords)/2)
	for i := 0; i+1 < len(it.Coords); i += 2 {
		pts = append(pts, geom.Coord{X: it.Coords[i], Y: it.Coords[i+1]})
	}
	return pts
}
