package ggdraw

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Alignment selects which point of a string is anchored at the text
// position.
type Alignment int

const (
	// AlignCenter centers the string horizontally on the position.
	AlignCenter Alignment = iota
	// AlignLeft starts the string at the position.
	AlignLeft
	// AlignRight ends the string at the position.
	AlignRight
)

// drawText draws s anchored at user point (x, y) with its baseline at the
// mapped y plus the font descent, so the descenders end at the anchor.
func (c *Canvas) drawText(name string, x, y float64, s string, align Alignment, deg float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite(name, x, y, deg); err != nil {
		return err
	}
	face, err := c.rasterFace()
	if err != nil {
		return invalidf("%s: %v", name, err)
	}
	if s == "" {
		c.drawn()
		return nil
	}

	m := c.mapper()
	cx, cy := c.toRaster(m.deviceX(x)), c.toRaster(m.deviceY(y))
	width := face.Advance(s)
	metrics := face.Metrics()

	left := cx
	switch align {
	case AlignCenter:
		left -= width / 2
	case AlignRight:
		left -= width
	}
	baseline := cy + metrics.Descent

	if deg == 0 {
		face.Draw(c.offscreen, s, left, baseline, c.pen.src)
		c.drawn()
		return nil
	}

	// Render upright into a scratch image, then rotate it into place.
	const pad = 2
	tmp := image.NewRGBA(image.Rect(0, 0,
		int(math.Ceil(width))+2*pad,
		int(math.Ceil(metrics.Ascent+metrics.Descent))+2*pad))
	face.Draw(tmp, s, pad, pad+metrics.Ascent, c.pen.src)
	s2d := rotation(deg, cx, cy, left-pad, baseline-metrics.Ascent-pad, 1, 1)
	xdraw.BiLinear.Transform(c.offscreen, s2d, tmp, tmp.Bounds(), xdraw.Over, nil)
	c.drawn()
	return nil
}

// Text draws s horizontally centered at (x, y) in the current font.
func (c *Canvas) Text(x, y float64, s string) error {
	return c.drawText("Text", x, y, s, AlignCenter, 0)
}

// TextLeft draws s starting at (x, y).
func (c *Canvas) TextLeft(x, y float64, s string) error {
	return c.drawText("TextLeft", x, y, s, AlignLeft, 0)
}

// TextRight draws s ending at (x, y).
func (c *Canvas) TextRight(x, y float64, s string) error {
	return c.drawText("TextRight", x, y, s, AlignRight, 0)
}

// TextRotated draws s centered at (x, y), rotated by deg degrees
// counter-clockwise about that point.
func (c *Canvas) TextRotated(x, y float64, s string, deg float64) error {
	return c.drawText("TextRotated", x, y, s, AlignCenter, deg)
}

// TextAligned draws s at (x, y) with the given alignment and rotation.
func (c *Canvas) TextAligned(x, y float64, s string, align Alignment, deg float64) error {
	return c.drawText("TextAligned", x, y, s, align, deg)
}

// TextWidth returns the width of s in user-space X units.
func (c *Canvas) TextWidth(s string) float64 {
	m := c.mapper()
	w := c.pen.face.Advance(s)
	return w * math.Abs(m.s.XMax-m.s.XMin) / m.width
}
