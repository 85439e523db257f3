package ggdraw

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/ggdraw/internal/raster"
	"github.com/gogpu/ggdraw/internal/stroke"
)

// round rounds half up, so -0.5 becomes 0 and 2.5 becomes 3.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// degenerate reports whether a shape of device size w x h collapses to a
// single pixel. Both sides must be at most one pixel.
func degenerate(w, h float64) bool {
	return w <= 1 && h <= 1
}

// devicePixel fills the device pixel nearest to (dx, dy).
func (c *Canvas) devicePixel(dx, dy float64) {
	x, y := round(dx)*c.ratio, round(dy)*c.ratio
	raster.FillRect(c.offscreen, image.Rect(x, y, x+c.ratio, y+c.ratio), c.pen.src)
}

// toRaster scales device pixel units to raster pixels.
func (c *Canvas) toRaster(v float64) float64 {
	return v * float64(c.ratio)
}

func (c *Canvas) strokePath(p *raster.Path) {
	outline := stroke.NewStrokeExpander(c.strokeWidth()).Expand(p)
	c.filler.Fill(c.offscreen, outline, c.pen.src)
}

func (c *Canvas) fillPath(p *raster.Path) {
	c.filler.Fill(c.offscreen, p, c.pen.src)
}

// Pixel draws a single device pixel at (x, y) in the pen color.
func (c *Canvas) Pixel(x, y float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite("Pixel", x, y); err != nil {
		return err
	}
	m := c.mapper()
	c.devicePixel(m.deviceX(x), m.deviceY(y))
	c.drawn()
	return nil
}

// Point draws a filled disc at (x, y) whose diameter is the pen radius
// times 512 device pixels, or a single pixel when that diameter is at most
// one pixel.
func (c *Canvas) Point(x, y float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite("Point", x, y); err != nil {
		return err
	}
	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	d := c.pen.radius * referenceSize
	if d <= 1 {
		c.devicePixel(dx, dy)
	} else {
		r := c.toRaster(d / 2)
		c.fillPath(raster.Ellipse(c.toRaster(dx), c.toRaster(dy), r, r))
	}
	c.drawn()
	return nil
}

// Line draws a segment from (x0, y0) to (x1, y1) with round caps.
func (c *Canvas) Line(x0, y0, x1, y1 float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite("Line", x0, y0, x1, y1); err != nil {
		return err
	}
	m := c.mapper()
	c.strokePath(raster.Line(
		c.toRaster(m.deviceX(x0)), c.toRaster(m.deviceY(y0)),
		c.toRaster(m.deviceX(x1)), c.toRaster(m.deviceY(y1)),
	))
	c.drawn()
	return nil
}

// ellipse draws the outline or interior of an axis-aligned ellipse with
// user-space semi-axes a and b. Each axis is scaled independently, so a
// circle under a non-uniform scale is drawn as an ellipse.
func (c *Canvas) ellipse(name string, x, y, a, b float64, filled bool) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite(name, x, y, a, b); err != nil {
		return err
	}
	if err := checkNonNegative(name, a, b); err != nil {
		return err
	}
	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	ws, hs := m.factorX(2*a), m.factorY(2*b)
	if degenerate(ws, hs) {
		c.devicePixel(dx, dy)
	} else {
		p := raster.Ellipse(c.toRaster(dx), c.toRaster(dy), c.toRaster(ws/2), c.toRaster(hs/2))
		if filled {
			c.fillPath(p)
		} else {
			c.strokePath(p)
		}
	}
	c.drawn()
	return nil
}

// Circle draws the outline of a circle of radius r centered at (x, y).
func (c *Canvas) Circle(x, y, r float64) error {
	return c.ellipse("Circle", x, y, r, r, false)
}

// FilledCircle draws a filled circle of radius r centered at (x, y).
func (c *Canvas) FilledCircle(x, y, r float64) error {
	return c.ellipse("FilledCircle", x, y, r, r, true)
}

// Ellipse draws the outline of an ellipse centered at (x, y) with
// semi-major axis a along X and semi-minor axis b along Y.
func (c *Canvas) Ellipse(x, y, a, b float64) error {
	return c.ellipse("Ellipse", x, y, a, b, false)
}

// FilledEllipse draws a filled ellipse centered at (x, y).
func (c *Canvas) FilledEllipse(x, y, a, b float64) error {
	return c.ellipse("FilledEllipse", x, y, a, b, true)
}

// normalizeArc returns the start angle and the non-negative sweep of the
// arc from a1 to a2 degrees, adding whole turns to a2 until a2 >= a1.
func normalizeArc(a1, a2 float64) (start, sweep float64) {
	if a2 < a1 {
		a2 += 360 * math.Ceil((a1-a2)/360)
	}
	return a1, a2 - a1
}

// Arc draws a circular arc of radius r centered at (x, y) from angle a1 to
// a2 in degrees. 0 points right and angles grow counter-clockwise on screen.
// If a2 < a1, whole turns are added to a2, so Arc(x, y, r, 350, 10) sweeps
// 20 degrees through 0.
func (c *Canvas) Arc(x, y, r, a1, a2 float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite("Arc", x, y, r, a1, a2); err != nil {
		return err
	}
	if err := checkNonNegative("Arc", r); err != nil {
		return err
	}
	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	ws, hs := m.factorX(2*r), m.factorY(2*r)
	if degenerate(ws, hs) {
		c.devicePixel(dx, dy)
	} else {
		start, sweep := normalizeArc(a1, a2)
		c.strokePath(raster.Arc(c.toRaster(dx), c.toRaster(dy), c.toRaster(ws/2), c.toRaster(hs/2), start, sweep))
	}
	c.drawn()
	return nil
}

// rect draws an axis-aligned rectangle with user-space half extents.
func (c *Canvas) rect(name string, x, y, halfWidth, halfHeight float64, filled bool) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := checkFinite(name, x, y, halfWidth, halfHeight); err != nil {
		return err
	}
	if err := checkNonNegative(name, halfWidth, halfHeight); err != nil {
		return err
	}
	m := c.mapper()
	dx, dy := m.deviceX(x), m.deviceY(y)
	ws, hs := m.factorX(2*halfWidth), m.factorY(2*halfHeight)
	if degenerate(ws, hs) {
		c.devicePixel(dx, dy)
	} else {
		p := raster.Rect(c.toRaster(dx-ws/2), c.toRaster(dy-hs/2), c.toRaster(ws), c.toRaster(hs))
		if filled {
			c.fillPath(p)
		} else {
			c.strokePath(p)
		}
	}
	c.drawn()
	return nil
}

// Square draws the outline of a square centered at (x, y) with the given
// half side length.
func (c *Canvas) Square(x, y, halfLength float64) error {
	return c.rect("Square", x, y, halfLength, halfLength, false)
}

// FilledSquare draws a filled square centered at (x, y).
func (c *Canvas) FilledSquare(x, y, halfLength float64) error {
	return c.rect("FilledSquare", x, y, halfLength, halfLength, true)
}

// Rectangle draws the outline of a rectangle centered at (x, y) with the
// given half width and half height.
func (c *Canvas) Rectangle(x, y, halfWidth, halfHeight float64) error {
	return c.rect("Rectangle", x, y, halfWidth, halfHeight, false)
}

// FilledRectangle draws a filled rectangle centered at (x, y).
func (c *Canvas) FilledRectangle(x, y, halfWidth, halfHeight float64) error {
	return c.rect("FilledRectangle", x, y, halfWidth, halfHeight, true)
}

// polygon draws the closed polygon through (xs[i], ys[i]).
func (c *Canvas) polygon(name string, xs, ys []float64, filled bool) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if len(xs) != len(ys) {
		return invalidf("%s: %d x coordinates but %d y coordinates", name, len(xs), len(ys))
	}
	if err := checkFinite(name, xs...); err != nil {
		return err
	}
	if err := checkFinite(name, ys...); err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}

	m := c.mapper()
	pts := make([]raster.Point, len(xs))
	for i := range xs {
		pts[i] = raster.Point{X: c.toRaster(m.deviceX(xs[i])), Y: c.toRaster(m.deviceY(ys[i]))}
	}
	p := raster.Polygon(pts)
	// Fewer than three vertices enclose no area; draw them as a stroke so
	// they stay visible.
	if filled && len(pts) >= 3 {
		c.fillPath(p)
	} else {
		c.strokePath(p)
	}
	c.drawn()
	return nil
}

// Polygon draws the outline of the closed polygon with vertices
// (xs[i], ys[i]). Slices of different lengths return ErrInvalidArgument;
// empty slices draw nothing.
func (c *Canvas) Polygon(xs, ys []float64) error {
	return c.polygon("Polygon", xs, ys, false)
}

// FilledPolygon draws the interior of the closed polygon with vertices
// (xs[i], ys[i]).
func (c *Canvas) FilledPolygon(xs, ys []float64) error {
	return c.polygon("FilledPolygon", xs, ys, true)
}

// Clear fills the whole canvas with white.
func (c *Canvas) Clear() error {
	return c.ClearColor(White)
}

// ClearColor replaces every pixel of the canvas with col. A translucent
// color leaves a translucent canvas, which PNG output preserves.
func (c *Canvas) ClearColor(col color.Color) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if col == nil {
		return invalidf("ClearColor: nil color")
	}
	draw.Draw(c.offscreen, c.offscreen.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.drawn()
	return nil
}
