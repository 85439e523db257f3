package ggdraw

import (
	"image"
	"image/color"

	"github.com/gogpu/ggdraw/text"
)

// Pen defaults.
const (
	// DefaultPenRadius is the default stroke radius.
	DefaultPenRadius = 0.002

	// referenceSize converts pen radii to device pixels. It is fixed so that
	// stroke thickness does not depend on the current scale.
	referenceSize = 512
)

// DefaultPenColor is the default pen color.
var DefaultPenColor = Black

// pen is the drawing state read by every draw call.
type pen struct {
	color  color.Color
	src    *image.Uniform
	radius float64
	face   *text.Face

	// rasterFace is face scaled by the pixel ratio; built on first use.
	rasterFace *text.Face
}

func defaultPen() pen {
	return pen{
		color:  DefaultPenColor,
		src:    image.NewUniform(DefaultPenColor),
		radius: DefaultPenRadius,
		face:   text.Default(),
	}
}

// SetPenColor sets the color used by subsequent draw calls.
func (c *Canvas) SetPenColor(col color.Color) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if col == nil {
		return invalidf("SetPenColor: nil color")
	}
	c.pen.color = col
	c.pen.src = image.NewUniform(col)
	return nil
}

// SetPenColorRGB sets an opaque pen color from 8-bit components.
// Components outside 0..255 return ErrInvalidArgument.
func (c *Canvas) SetPenColorRGB(r, g, b int) error {
	col, err := RGB(r, g, b)
	if err != nil {
		return err
	}
	return c.SetPenColor(col)
}

// ResetPenColor restores DefaultPenColor.
func (c *Canvas) ResetPenColor() {
	c.pen.color = DefaultPenColor
	c.pen.src = image.NewUniform(DefaultPenColor)
}

// PenColor returns the current pen color.
func (c *Canvas) PenColor() color.Color {
	return c.pen.color
}

// SetPenRadius sets the stroke radius. The stroke width in device pixels is
// radius*512 regardless of the current scale.
func (c *Canvas) SetPenRadius(radius float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite("SetPenRadius", radius); err != nil {
		return err
	}
	if err := checkNonNegative("SetPenRadius", radius); err != nil {
		return err
	}
	c.pen.radius = radius
	return nil
}

// ResetPenRadius restores DefaultPenRadius.
func (c *Canvas) ResetPenRadius() {
	c.pen.radius = DefaultPenRadius
}

// PenRadius returns the current stroke radius.
func (c *Canvas) PenRadius() float64 {
	return c.pen.radius
}

// SetFont sets the face used by the text methods.
func (c *Canvas) SetFont(face *text.Face) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if face == nil {
		return invalidf("SetFont: nil face")
	}
	c.pen.face = face
	c.pen.rasterFace = nil
	return nil
}

// ResetFont restores the default face (Go Regular, 16 pt).
func (c *Canvas) ResetFont() {
	c.pen.face = text.Default()
	c.pen.rasterFace = nil
}

// Font returns the current face.
func (c *Canvas) Font() *text.Face {
	return c.pen.face
}

// strokeWidth returns the stroke width in raster pixels, at least one.
func (c *Canvas) strokeWidth() float64 {
	return max(c.pen.radius*referenceSize*float64(c.ratio), 1)
}

// rasterFace returns the current face at raster resolution.
func (c *Canvas) rasterFace() (*text.Face, error) {
	if c.pen.rasterFace == nil {
		f, err := c.pen.face.WithSize(c.pen.face.Size() * float64(c.ratio))
		if err != nil {
			return nil, err
		}
		c.pen.rasterFace = f
	}
	return c.pen.rasterFace, nil
}
