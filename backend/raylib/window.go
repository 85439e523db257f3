// Package raylib shows a ggdraw canvas in a desktop window and feeds the
// window's mouse and keyboard events back into the canvas.
//
// Window systems require their event loop on the main OS thread, so Run
// must be called from main. The drawing program runs on its own goroutine.
//
//	func main() {
//	    err := raylib.Run(func(c *ggdraw.Canvas) error {
//	        return c.FilledCircle(0.5, 0.5, 0.25)
//	    }, ggdraw.WithTitle("circle"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
package raylib

import (
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/ggdraw"
)

// FPS is the rate at which the window polls input and repaints.
const FPS = 60

func init() {
	// The window and its GL context belong to the main thread.
	runtime.LockOSThread()
}

// window implements ggdraw.Display and ggdraw.Resizer. Its methods are
// called on the drawing goroutine and only set flags that the main loop
// reads.
type window struct {
	dirty   atomic.Bool
	closing atomic.Bool

	mu      sync.Mutex
	resized bool
	width   int
	height  int
}

func (w *window) Repaint() {
	w.dirty.Store(true)
}

func (w *window) Resize(width, height int) {
	w.mu.Lock()
	w.resized = true
	w.width, w.height = width, height
	w.mu.Unlock()
}

func (w *window) Close() error {
	w.closing.Store(true)
	return nil
}

// pendingResize returns the last size passed to Resize since the previous
// call, if any.
func (w *window) pendingResize() (width, height int, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.resized {
		return 0, 0, false
	}
	w.resized = false
	return w.width, w.height, true
}

// Run creates a canvas configured by opts, opens a window for it and calls
// program with the canvas on a new goroutine. It must be called from the
// main goroutine.
//
// When program returns nil the window stays open until the user closes it.
// Run returns program's error as soon as it fails, and nil when the window
// is closed by the user or by Canvas.Close.
func Run(program func(c *ggdraw.Canvas) error, opts ...ggdraw.Option) error {
	w := &window{}
	c, err := ggdraw.New(append(opts, ggdraw.WithDisplay(w))...)
	if err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(c.Width()), int32(c.Height()), c.Title())
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(FPS)
	ggdraw.Logger().Debug("raylib: window opened",
		slog.Int("width", c.Width()),
		slog.Int("height", c.Height()))

	l := &loop{canvas: c, held: make(map[ggdraw.Key]struct{})}
	defer l.unload()

	done := make(chan error, 1)
	go func() { done <- program(c) }()

	for !rl.WindowShouldClose() && !w.closing.Load() {
		select {
		case err := <-done:
			if err != nil {
				ggdraw.Logger().Warn("raylib: program failed", slog.Any("error", err))
				return err
			}
		default:
		}

		if width, height, ok := w.pendingResize(); ok {
			rl.SetWindowSize(width, height)
		}
		l.pollInput()
		if w.dirty.Swap(false) {
			l.upload()
		}
		l.draw()
	}
	ggdraw.Logger().Debug("raylib: window closed")
	return nil
}

// loop holds the main-thread state of Run.
type loop struct {
	canvas *ggdraw.Canvas

	tex    rl.Texture2D
	loaded bool
	pixels []color.RGBA

	lastX, lastY float32
	held         map[ggdraw.Key]struct{}
}

// upload copies the on-screen surface into the window texture, recreating
// the texture when the surface size has changed.
func (l *loop) upload() {
	l.canvas.Frame(func(img *image.RGBA) {
		b := img.Bounds()
		if !l.loaded || int(l.tex.Width) != b.Dx() || int(l.tex.Height) != b.Dy() {
			l.unload()
			rimg := rl.NewImageFromImage(img)
			l.tex = rl.LoadTextureFromImage(rimg)
			rl.UnloadImage(rimg)
			l.loaded = true
			return
		}
		l.pixels = rgbaPixels(img, l.pixels)
		rl.UpdateTexture(l.tex, l.pixels)
	})
}

func (l *loop) unload() {
	if l.loaded {
		rl.UnloadTexture(l.tex)
		l.loaded = false
	}
}

// draw paints the texture scaled down to the window size.
func (l *loop) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)
	if l.loaded {
		ratio := float32(l.canvas.PixelRatio())
		w, h := float32(l.tex.Width), float32(l.tex.Height)
		rl.DrawTexturePro(l.tex,
			rl.NewRectangle(0, 0, w, h),
			rl.NewRectangle(0, 0, w/ratio, h/ratio),
			rl.NewVector2(0, 0), 0, rl.White)
	}
	rl.EndDrawing()
}

// pollInput forwards this frame's mouse and keyboard events to the canvas.
func (l *loop) pollInput() {
	c := l.canvas
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)
	moved := pos.X != l.lastX || pos.Y != l.lastY
	l.lastX, l.lastY = pos.X, pos.Y

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		c.PointerPressed(x, y)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		c.PointerReleased(x, y)
	case moved && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		c.PointerDragged(x, y)
	case moved:
		c.PointerMoved(x, y)
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		c.KeyTyped(rune(ch))
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		key := ggdraw.Key(k)
		c.KeyPressed(key)
		l.held[key] = struct{}{}
		if r, ok := controlRune(key); ok {
			c.KeyTyped(r)
		}
		if saveShortcut(key, l.held) {
			// Save logs its own failures.
			_ = c.Save(c.SavePath())
		}
	}
	for key := range l.held {
		if rl.IsKeyUp(int32(key)) {
			c.KeyReleased(key)
			delete(l.held, key)
		}
	}
}

// controlRune returns the character typed by keys that raylib reports as
// key presses but not as characters.
func controlRune(k ggdraw.Key) (rune, bool) {
	switch k {
	case ggdraw.KeyEnter:
		return '\n', true
	case ggdraw.KeyTab:
		return '\t', true
	case ggdraw.KeyBackspace:
		return '\b', true
	case ggdraw.KeyEscape:
		return 0x1b, true
	case ggdraw.KeyDelete:
		return 0x7f, true
	}
	return 0, false
}

// saveShortcut reports whether pressing key while the keys in held are down
// is Ctrl+S, or Cmd+S on macOS.
func saveShortcut(key ggdraw.Key, held map[ggdraw.Key]struct{}) bool {
	if key != ggdraw.KeyS {
		return false
	}
	for _, mod := range []ggdraw.Key{
		ggdraw.KeyLeftControl, ggdraw.KeyRightControl,
		ggdraw.KeyLeftSuper, ggdraw.KeyRightSuper,
	} {
		if _, ok := held[mod]; ok {
			return true
		}
	}
	return false
}

// rgbaPixels returns the pixels of img as a row-major slice, reusing buf
// when it is large enough.
func rgbaPixels(img *image.RGBA, buf []color.RGBA) []color.RGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if cap(buf) < n {
		buf = make([]color.RGBA, n)
	}
	buf = buf[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			buf[i] = color.RGBA{R: row[4*x], G: row[4*x+1], B: row[4*x+2], A: row[4*x+3]}
			i++
		}
	}
	return buf
}
