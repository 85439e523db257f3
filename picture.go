package ggdraw

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// rotation returns the affine transform that places a src image scaled by
// (sx, sy) with its top-left corner at (left, top), then rotates it by deg
// degrees counter-clockwise on screen about (cx, cy). All positions are in
// raster pixels, where Y grows downward.
func rotation(deg, cx, cy, left, top, sx, sy float64) f64.Aff3 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return f64.Aff3{
		cos * sx, sin * sy, cx + cos*(left-cx) + sin*(top-cy),
		-sin * sx, cos * sy, cy - sin*(left-cx) + cos*(top-cy),
	}
}

// loadPicture resolves src through the image cache.
func (c *Canvas) loadPicture(name, src string) (image.Image, error) {
	img, err := c.images.Load(context.Background(), src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
	}
	return img, nil
}

// maxPictureSize caps each side of a scaled picture, in device pixels.
// Larger boxes only magnify the source pixels that remain on the surface.
const maxPictureSize = 1 << 22

// blit composites img (already at raster resolution when scale is 1) so
// that its center lands at raster position (cx, cy), rotated by deg.
func (c *Canvas) blit(img image.Image, cx, cy, left, top, scale, deg float64) {
	b := img.Bounds()
	if deg != 0 {
		c.transform(img, cx, cy, left, top, scale, scale, deg)
		return
	}
	dst := image.Rect(
		int(left), int(top),
		int(left)+int(float64(b.Dx())*scale), int(top)+int(float64(b.Dy())*scale),
	)
	if scale == 1 {
		draw.Draw(c.offscreen, dst, img, b.Min, draw.Over)
	} else {
		xdraw.NearestNeighbor.Scale(c.offscreen, dst, img, b, xdraw.Over, nil)
	}
}

// transform scales img by (sx, sy) with its top-left corner at (left, top)
// and rotates it by deg about (cx, cy). Only destination pixels inside the
// surface are visited, so the scaled size never has to be allocated.
func (c *Canvas) transform(img image.Image, cx, cy, left, top, sx, sy, deg float64) {
	b := img.Bounds()
	// rotation places the bounds origin at (left, top).
	s2d := rotation(deg, cx, cy, left-float64(b.Min.X)*sx, top-float64(b.Min.Y)*sy, sx, sy)
	xdraw.BiLinear.Transform(c.offscreen, s2d, img, b, xdraw.Over, nil)
}

// picture draws src centered at (x, y) at its natural size, one image
// pixel per device pixel.
func (c *Canvas) picture(name string, x, y float64, src string, deg float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite(name, x, y, deg); err != nil {
		return err
	}
	img, err := c.loadPicture(name, src)
	if err != nil {
		return err
	}

	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	ws, hs := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	left := float64(round(dx-ws/2) * c.ratio)
	top := float64(round(dy-hs/2) * c.ratio)
	c.blit(img, c.toRaster(dx), c.toRaster(dy), left, top, float64(c.ratio), deg)
	c.drawn()
	return nil
}

// pictureScaled draws src centered at (x, y) resized to the user-space
// width w and height h.
func (c *Canvas) pictureScaled(name string, x, y float64, src string, w, h, deg float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite(name, x, y, w, h, deg); err != nil {
		return err
	}
	if err := checkNonNegative(name, w, h); err != nil {
		return err
	}
	img, err := c.loadPicture(name, src)
	if err != nil {
		return err
	}

	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	ws, hs := min(m.factorX(w), maxPictureSize), min(m.factorY(h), maxPictureSize)
	if degenerate(ws, hs) {
		c.devicePixel(dx, dy)
		c.drawn()
		return nil
	}

	rw := max(round(ws), 1) * c.ratio
	rh := max(round(hs), 1) * c.ratio
	// Shrink with a filtering resize, bounded by the source size; the
	// transform does any remaining magnification.
	b := img.Bounds()
	if pw, ph := min(rw, b.Dx()), min(rh, b.Dy()); pw != b.Dx() || ph != b.Dy() {
		img = transform.Resize(img, pw, ph, transform.Linear)
		b = img.Bounds()
	}
	left := float64(round(dx-ws/2) * c.ratio)
	top := float64(round(dy-hs/2) * c.ratio)
	sx := float64(rw) / float64(b.Dx())
	sy := float64(rh) / float64(b.Dy())
	c.transform(img, c.toRaster(dx), c.toRaster(dy), left, top, sx, sy, deg)
	c.drawn()
	return nil
}

// Picture draws the image named by src centered at (x, y), one image pixel
// per device pixel.
//
// src is tried as a file path, then as an http(s) URL, then as a name in
// the filesystem set with WithResources. Decoded images are cached for the
// life of the canvas and never reloaded, even if the file changes. An
// unresolvable source returns ErrInvalidArgument.
func (c *Canvas) Picture(x, y float64, src string) error {
	return c.picture("Picture", x, y, src, 0)
}

// PictureRotated draws the image like Picture, rotated by deg degrees
// counter-clockwise about its center.
func (c *Canvas) PictureRotated(x, y float64, src string, deg float64) error {
	return c.picture("PictureRotated", x, y, src, deg)
}

// PictureScaled draws the image centered at (x, y), resized to the
// user-space width w and height h. If the result is at most one device
// pixel in both directions a single pixel is drawn instead.
func (c *Canvas) PictureScaled(x, y float64, src string, w, h float64) error {
	return c.pictureScaled("PictureScaled", x, y, src, w, h, 0)
}

// PictureScaledRotated draws the image like PictureScaled, rotated by deg
// degrees counter-clockwise about its center.
func (c *Canvas) PictureScaledRotated(x, y float64, src string, w, h, deg float64) error {
	return c.pictureScaled("PictureScaledRotated", x, y, src, w, h, deg)
}
