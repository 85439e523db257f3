// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// Line returns an open single-segment path.
func Line(x0, y0, x1, y1 float64) *Path {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

// Rect returns a closed axis-aligned rectangle with top-left (x, y).
func Rect(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Polygon returns the closed polygon through pts. An empty slice yields an
// empty path.
func Polygon(pts []Point) *Path {
	p := NewPath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// Ellipse returns a closed axis-aligned ellipse centered at (cx, cy).
func Ellipse(cx, cy, rx, ry float64) *Path {
	p := arc(cx, cy, rx, ry, 0, 360)
	p.Close()
	return p
}

// Arc returns the open elliptical arc centered at (cx, cy) starting at
// start degrees and sweeping sweep degrees. Angles follow the screen
// convention: 0 points right and positive angles turn counter-clockwise as
// seen on screen, even though raster Y grows downward. Sweeps beyond a full
// turn are clamped to 360.
func Arc(cx, cy, rx, ry, start, sweep float64) *Path {
	return arc(cx, cy, rx, ry, start, math.Min(sweep, 360))
}

func arc(cx, cy, rx, ry, start, sweep float64) *Path {
	p := NewPath()
	a0 := start * math.Pi / 180
	total := sweep * math.Pi / 180

	at := func(a float64) Point {
		return Point{X: cx + rx*math.Cos(a), Y: cy - ry*math.Sin(a)}
	}
	// derivative of at with respect to a
	tangent := func(a float64) Point {
		return Point{X: -rx * math.Sin(a), Y: -ry * math.Cos(a)}
	}

	first := at(a0)
	p.MoveTo(first.X, first.Y)
	if total <= 0 {
		return p
	}

	n := int(math.Ceil(total / (math.Pi / 2)))
	step := total / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		a1 := a0 + float64(i)*step
		a2 := a1 + step
		s, e := at(a1), at(a2)
		ts, te := tangent(a1), tangent(a2)
		p.CubicTo(
			s.X+k*ts.X, s.Y+k*ts.Y,
			e.X-k*te.X, e.Y-k*te.Y,
			e.X, e.Y,
		)
	}
	return p
}
