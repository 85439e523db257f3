// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Filler paints path interiors with anti-aliased coverage.
//
// Every contour is implicitly closed. Coverage of overlapping contours with
// the same orientation saturates instead of cancelling, so stroke outlines
// produced as unions of pieces render solid.
//
// A Filler is not safe for concurrent use; its zero value is ready to use.
type Filler struct {
	ras vector.Rasterizer
}

// Fill composites src onto dst (draw.Over) wherever p covers a pixel.
func (f *Filler) Fill(dst draw.Image, p *Path, src image.Image) {
	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok {
		return
	}
	area := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	// Rasterize only the covered area; the accumulation buffer is w*h floats.
	f.ras.Reset(area.Dx(), area.Dy())
	f.ras.DrawOp = draw.Over

	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	drawn := false
	for _, c := range p.Contours() {
		if len(c.Points) < 3 {
			continue
		}
		f.ras.MoveTo(float32(c.Points[0].X-ox), float32(c.Points[0].Y-oy))
		for _, pt := range c.Points[1:] {
			f.ras.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		f.ras.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	f.ras.Draw(dst, area, src, area.Min)
}

// FillRect composites src over the integer rectangle r without
// anti-aliasing.
func FillRect(dst draw.Image, r image.Rectangle, src image.Image) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
}
