// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// Point is a position in raster pixel space (origin top-left, Y down).
type Point struct {
	X, Y float64
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Contour is one flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// Path is a list of flattened contours. Curves are flattened when they are
// added, so consumers only ever see straight segments.
type Path struct {
	contours  []Contour
	current   []Point
	tolerance float64
}

// NewPath creates an empty path with the default flattening tolerance.
func NewPath() *Path {
	return &Path{tolerance: Tolerance}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.flush(false)
	p.current = append(p.current[:0:0], Point{X: x, Y: y})
}

// LineTo appends a straight segment to the current contour.
func (p *Path) LineTo(x, y float64) {
	if len(p.current) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.current = append(p.current, Point{X: x, Y: y})
}

// CubicTo appends a cubic Bézier curve, flattened to line segments.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.current) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p0 := p.current[len(p.current)-1]
	p.current = flattenCubic(p.current, p0, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y}, p.tolerance)
}

// Close closes the current contour.
func (p *Path) Close() {
	p.flush(true)
}

// Contours returns the flattened contours, including an unterminated
// trailing one.
func (p *Path) Contours() []Contour {
	out := p.contours
	if len(p.current) > 0 {
		out = append(out[:len(out):len(out)], Contour{Points: p.current})
	}
	return out
}

// Bounds returns the bounding box of all points in the path.
// ok is false for an empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range p.Contours() {
		for _, pt := range c.Points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

func (p *Path) flush(closed bool) {
	if len(p.current) == 0 {
		return
	}
	p.contours = append(p.contours, Contour{Points: p.current, Closed: closed})
	p.current = nil
}
