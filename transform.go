package ggdraw

import "math"

// Scale is the user coordinate space: the rectangle [XMin, XMax] x
// [YMin, YMax] that is mapped onto the whole canvas. Increasing user Y moves
// up the screen. A Scale may be reversed (XMin > XMax) but never empty.
type Scale struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultScale returns the unit square.
func DefaultScale() Scale {
	return Scale{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
}

// mapper converts between user space and device pixel space.
type mapper struct {
	s             Scale
	width, height float64
}

func (m mapper) deviceX(x float64) float64 {
	return m.width * (x - m.s.XMin) / (m.s.XMax - m.s.XMin)
}

func (m mapper) deviceY(y float64) float64 {
	return m.height * (m.s.YMax - y) / (m.s.YMax - m.s.YMin)
}

func (m mapper) userX(px float64) float64 {
	return m.s.XMin + px*(m.s.XMax-m.s.XMin)/m.width
}

func (m mapper) userY(py float64) float64 {
	return m.s.YMax - py*(m.s.YMax-m.s.YMin)/m.height
}

// factorX converts a user-space width to device pixels. It never flips sign
// and never applies the origin offset.
func (m mapper) factorX(w float64) float64 {
	return w * m.width / math.Abs(m.s.XMax-m.s.XMin)
}

func (m mapper) factorY(h float64) float64 {
	return h * m.height / math.Abs(m.s.YMax-m.s.YMin)
}

func (c *Canvas) mapper() mapper {
	return mapper{s: c.scale, width: float64(c.width), height: float64(c.height)}
}

// validAxis checks one pair of scale bounds.
func validAxis(name string, lo, hi float64) error {
	if err := checkFinite(name, lo, hi); err != nil {
		return err
	}
	if lo == hi {
		return invalidf("%s: empty range [%v, %v]", name, lo, hi)
	}
	return nil
}

// SetXScale sets the user-space range mapped onto the canvas width.
// min == max, NaN or infinite bounds return ErrInvalidArgument and leave the
// scale unchanged.
func (c *Canvas) SetXScale(min, max float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := validAxis("SetXScale", min, max); err != nil {
		return err
	}
	c.pointer.mu.Lock()
	c.scale.XMin, c.scale.XMax = min, max
	c.pointer.mu.Unlock()
	return nil
}

// SetYScale sets the user-space range mapped onto the canvas height.
func (c *Canvas) SetYScale(min, max float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := validAxis("SetYScale", min, max); err != nil {
		return err
	}
	c.pointer.mu.Lock()
	c.scale.YMin, c.scale.YMax = min, max
	c.pointer.mu.Unlock()
	return nil
}

// SetScale sets both axes to the same range.
func (c *Canvas) SetScale(min, max float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := validAxis("SetScale", min, max); err != nil {
		return err
	}
	c.pointer.mu.Lock()
	c.scale = Scale{XMin: min, XMax: max, YMin: min, YMax: max}
	c.pointer.mu.Unlock()
	return nil
}

// ResetXScale restores the default X range [0, 1].
func (c *Canvas) ResetXScale() error {
	d := DefaultScale()
	return c.SetXScale(d.XMin, d.XMax)
}

// ResetYScale restores the default Y range [0, 1].
func (c *Canvas) ResetYScale() error {
	d := DefaultScale()
	return c.SetYScale(d.YMin, d.YMax)
}

// ResetScale restores the unit square.
func (c *Canvas) ResetScale() error {
	d := DefaultScale()
	return c.SetScale(d.XMin, d.XMax)
}

// Scale returns the current user coordinate space.
func (c *Canvas) Scale() Scale {
	return c.scale
}

// ToDevice maps a user-space point to device pixels.
func (c *Canvas) ToDevice(x, y float64) (px, py float64) {
	m := c.mapper()
	return m.deviceX(x), m.deviceY(y)
}

// ToUser maps a device pixel position back to user space.
func (c *Canvas) ToUser(px, py float64) (x, y float64) {
	m := c.mapper()
	return m.userX(px), m.userY(py)
}
