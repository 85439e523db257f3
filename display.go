package ggdraw

import "sync/atomic"

// Display shows the on-screen surface of a Canvas.
//
// Repaint is called on the drawing goroutine after every present; it must
// not block. Implementations read pixels through Canvas.Frame, usually on
// their own event goroutine.
type Display interface {
	Repaint()
	Close() error
}

// Resizer is implemented by displays that follow canvas size changes.
// Resize receives the new size in device pixels.
type Resizer interface {
	Resize(width, height int)
}

// HeadlessDisplay is a Display without a window. It counts repaint
// requests, which makes it useful for tests and batch rendering.
type HeadlessDisplay struct {
	repaints atomic.Int64
	width    atomic.Int64
	height   atomic.Int64
	closed   atomic.Bool
}

// NewHeadlessDisplay creates a HeadlessDisplay.
func NewHeadlessDisplay() *HeadlessDisplay {
	return &HeadlessDisplay{}
}

// Repaint implements Display.
func (d *HeadlessDisplay) Repaint() {
	d.repaints.Add(1)
}

// Resize implements Resizer.
func (d *HeadlessDisplay) Resize(width, height int) {
	d.width.Store(int64(width))
	d.height.Store(int64(height))
}

// Close implements Display.
func (d *HeadlessDisplay) Close() error {
	d.closed.Store(true)
	return nil
}

// Repaints returns the number of repaint requests received so far.
func (d *HeadlessDisplay) Repaints() int64 {
	return d.repaints.Load()
}

// Size returns the last size passed to Resize.
func (d *HeadlessDisplay) Size() (width, height int) {
	return int(d.width.Load()), int(d.height.Load())
}

// Closed reports whether Close has been called.
func (d *HeadlessDisplay) Closed() bool {
	return d.closed.Load()
}
