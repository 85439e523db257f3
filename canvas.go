package ggdraw

import (
	"image"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/ggdraw/internal/imagecache"
	"github.com/gogpu/ggdraw/internal/raster"
)

// Canvas is a fixed-size drawing surface with a user-defined coordinate
// space.
//
// Drawing, pen, scale and persistence methods must be called from a single
// goroutine. Input event methods (PointerPressed, KeyTyped, ...) may be
// called concurrently from a display's event goroutine; input queries are
// safe to call from the drawing goroutine at any time.
type Canvas struct {
	// width and height are in device pixels; guarded by pointer.mu for
	// writes, like scale.
	width, height int
	ratio         int
	title         string
	savePath      string
	scale         Scale

	pen pen

	// offscreen receives every draw call.
	offscreen *image.RGBA
	deferred  bool

	// frameMu guards onscreen, which displays read through Frame.
	frameMu  sync.Mutex
	onscreen *image.RGBA

	filler  raster.Filler
	images  *imagecache.Cache
	display Display
	sleep   func(time.Duration)

	pointer pointerState
	keys    keyboardState

	closed bool
}

// New creates a canvas cleared to white, with the unit-square scale and the
// default pen.
//
// Example:
//
//	c, err := ggdraw.New(ggdraw.WithSize(800, 600))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.FilledCircle(0.5, 0.5, 0.25)
//	_ = c.Save("circle.png")
func New(opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, invalidf("New: size %dx%d must be positive", o.width, o.height)
	}

	c := &Canvas{
		ratio:    o.ratio,
		title:    o.title,
		savePath: o.savePath,
		display:  o.display,
		sleep:    o.sleep,
		images: imagecache.New(
			imagecache.WithResources(o.resources),
			imagecache.WithHTTPClient(o.client),
			imagecache.WithLogger(Logger),
		),
	}
	if c.display == nil {
		c.display = NewHeadlessDisplay()
	}
	c.reset(o.width, o.height)

	Logger().Debug("ggdraw: canvas created",
		slog.Int("width", o.width),
		slog.Int("height", o.height),
		slog.Int("ratio", o.ratio))
	return c, nil
}

// reset reallocates both surfaces and restores scale, pen, font and
// keyboard state to their defaults.
func (c *Canvas) reset(width, height int) {
	c.pointer.mu.Lock()
	c.width, c.height = width, height
	c.scale = DefaultScale()
	c.pointer.mu.Unlock()

	c.pen = defaultPen()
	c.keys.reset()

	r := image.Rect(0, 0, width*c.ratio, height*c.ratio)
	c.offscreen = image.NewRGBA(r)
	fillUniform(c.offscreen, White)

	c.frameMu.Lock()
	c.onscreen = image.NewRGBA(r)
	copy(c.onscreen.Pix, c.offscreen.Pix)
	c.frameMu.Unlock()
}

// Resize re-creates the canvas at a new size. It is equivalent to a fresh
// canvas: the scale, pen and font return to their defaults, both surfaces
// are cleared to white and pending keyboard input is dropped. Deferred
// rendering and the image cache are kept.
func (c *Canvas) Resize(width, height int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return invalidf("Resize: size %dx%d must be positive", width, height)
	}
	c.reset(width, height)
	if r, ok := c.display.(Resizer); ok {
		r.Resize(width, height)
	}
	c.display.Repaint()

	Logger().Debug("ggdraw: canvas resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// Close releases the display. Further drawing returns ErrClosed.
func (c *Canvas) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	Logger().Debug("ggdraw: canvas closed")
	return c.display.Close()
}

// Width returns the canvas width in device pixels.
func (c *Canvas) Width() int {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.width
}

// Height returns the canvas height in device pixels.
func (c *Canvas) Height() int {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.height
}

// PixelRatio returns the number of raster pixels per device pixel along
// each axis.
func (c *Canvas) PixelRatio() int {
	return c.ratio
}

// Title returns the title configured with WithTitle.
func (c *Canvas) Title() string {
	return c.title
}

// SavePath returns the file the save shortcut of a windowed display writes
// to: the path set with WithSavePath, or the title with a ".png" suffix.
func (c *Canvas) SavePath() string {
	switch {
	case c.savePath != "":
		return c.savePath
	case c.title != "":
		return c.title + ".png"
	}
	return DefaultTitle + ".png"
}

// Display returns the display the canvas presents to.
func (c *Canvas) Display() Display {
	return c.display
}

func (c *Canvas) checkOpen() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

func fillUniform(dst *image.RGBA, col color.Color) {
	raster.FillRect(dst, dst.Bounds(), image.NewUniform(col))
}
