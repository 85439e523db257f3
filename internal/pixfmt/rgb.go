// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixfmt provides packed pixel layouts not covered by the standard
// image package.
package pixfmt

import (
	"image"
	"image/color"
)

// BytesPerPixel is the size of one RGB pixel.
const BytesPerPixel = 3

// RGB is an opaque image with 3 bytes per pixel in R, G, B order.
type RGB struct {
	// Pix holds the pixels in row-major order. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewRGB allocates an RGB image with bounds r.
func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGB{
		Pix:    make([]uint8, w*h*BytesPerPixel),
		Stride: w * BytesPerPixel,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *RGB) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *RGB) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the opaque color at (x, y), or transparent black outside
// the bounds.
func (p *RGB) RGBAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

// Set implements draw.Image. Alpha is discarded.
func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	r, g, b, _ := c.RGBA()
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = uint8(r>>8), uint8(g>>8), uint8(b>>8)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*BytesPerPixel
}

// Opaque reports whether the image is fully opaque, which is always true.
func (p *RGB) Opaque() bool { return true }

// FromRGBA repacks src into an RGB image, dropping the alpha channel.
// Color channels are un-premultiplied first so that translucent pixels keep
// their hue instead of darkening toward black.
func FromRGBA(src *image.RGBA) *RGB {
	b := src.Bounds()
	dst := NewRGB(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			switch a {
			case 0xff:
			case 0:
				r, g, bl = 0, 0, 0
			default:
				r = unpremultiply(r, a)
				g = unpremultiply(g, a)
				bl = unpremultiply(bl, a)
			}
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2] = r, g, bl
			si += 4
			di += BytesPerPixel
		}
	}
	return dst
}

func unpremultiply(c, a uint8) uint8 {
	v := (uint32(c)*0xff + uint32(a)/2) / uint32(a)
	if v > 0xff {
		v = 0xff
	}
	return uint8(v)
}
