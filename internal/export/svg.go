// Package export writes canvas snapshots as SVG documents.
package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/jbeda/geom"

	"github.com/iburimskiy/polygon-morph/internal/surface"
)

const (
	OutlineStyle = "fill: none; stroke: blue; stroke-width: 1"
	MarkerStyle  = "fill: red; stroke: none"
	CircleStyle  = "fill: none; stroke: red; stroke-width: 1"
	DashStyle    = "stroke-dasharray: 5 5"
	TextStyle    = "font-family: Arial; font-size: 12px; fill: black"
)

type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(width, height int) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" width="%d" height="%d" viewBox="0 0 %d %d"
     xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="white"/>
`, width, height, width, height)
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
}

func (s *svgWriter) polygon(pts []geom.Coord, style string) {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%f,%f", p.X, p.Y)
	}
	s.printf("<polygon points='%s' style='%s'/>\n", sb.String(), style)
}

func (s *svgWriter) ellipse(r geom.Rect, style string) {
	c := geom.Coord{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
	s.printf("<ellipse cx='%f' cy='%f' rx='%f' ry='%f' style='%s'/>\n",
		c.X, c.Y, r.Width()/2, r.Height()/2, style)
}

func (s *svgWriter) text(at geom.Coord, text string) {
	s.printf("<text x='%f' y='%f' text-anchor='middle' dominant-baseline='middle' style='%s'>%s</text>\n",
		at.X, at.Y, TextStyle, html.EscapeString(text))
}

// WriteSVG serializes every item of c, in draw order.
func WriteSVG(w io.Writer, c *surface.Canvas, width, height int) error {
	s := &svgWriter{w: bufio.NewWriter(w)}
	s.start(width, height)
	for _, it := range c.Items() {
		switch it.Kind {
		case surface.KindPolygon:
			if len(it.Coords) >= 2 {
				s.polygon(it.Points(), OutlineStyle)
			}
		case surface.KindMarker:
			s.ellipse(it.Bounds, MarkerStyle)
		case surface.KindCircle:
			style := CircleStyle
			if it.Dashed {
				style += "; " + DashStyle
			}
			s.ellipse(it.Bounds, style)
		case surface.KindText:
			s.text(it.At, it.Text)
		}
	}
	s.end()
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func SaveSVG(path string, c *surface.Canvas, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, c, width, height); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
