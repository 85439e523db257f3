package ggdraw

import (
	"image"
	"image/draw"
)

// EnableDeferredRendering stops draw calls from presenting. Call Present to
// show everything drawn since the last present as a single frame.
func (c *Canvas) EnableDeferredRendering() {
	c.deferred = true
}

// DisableDeferredRendering makes every draw call present immediately.
// Content drawn while deferred stays hidden until the next draw call or
// Present.
func (c *Canvas) DisableDeferredRendering() {
	c.deferred = false
}

// IsDeferred reports whether deferred rendering is enabled.
func (c *Canvas) IsDeferred() bool {
	return c.deferred
}

// Present copies the off-screen surface onto the on-screen surface and
// asks the display to repaint.
func (c *Canvas) Present() error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	c.present()
	return nil
}

func (c *Canvas) present() {
	c.frameMu.Lock()
	copy(c.onscreen.Pix, c.offscreen.Pix)
	c.frameMu.Unlock()
	c.display.Repaint()
}

// drawn finishes a draw call: it presents unless rendering is deferred.
func (c *Canvas) drawn() {
	if !c.deferred {
		c.present()
	}
}

// Frame calls fn with the on-screen surface while holding the frame lock.
// fn must not retain the image or call back into the canvas.
func (c *Canvas) Frame(fn func(img *image.RGBA)) {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()
	fn(c.onscreen)
}

// Snapshot returns a copy of the on-screen surface.
func (c *Canvas) Snapshot() *image.RGBA {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()
	dst := image.NewRGBA(c.onscreen.Bounds())
	draw.Draw(dst, dst.Bounds(), c.onscreen, image.Point{}, draw.Src)
	return dst
}
