package ggdraw

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestDegenerateShapes_SinglePixel(t *testing.T) {
	const tiny = 1e-6
	shapes := map[string]func(c *Canvas) error{
		"Circle":          func(c *Canvas) error { return c.Circle(0.5, 0.5, tiny) },
		"FilledCircle":    func(c *Canvas) error { return c.FilledCircle(0.5, 0.5, tiny) },
		"Ellipse":         func(c *Canvas) error { return c.Ellipse(0.5, 0.5, tiny, tiny/2) },
		"FilledEllipse":   func(c *Canvas) error { return c.FilledEllipse(0.5, 0.5, tiny, tiny) },
		"Square":          func(c *Canvas) error { return c.Square(0.5, 0.5, tiny) },
		"FilledSquare":    func(c *Canvas) error { return c.FilledSquare(0.5, 0.5, tiny) },
		"Rectangle":       func(c *Canvas) error { return c.Rectangle(0.5, 0.5, tiny, 2*tiny) },
		"FilledRectangle": func(c *Canvas) error { return c.FilledRectangle(0.5, 0.5, tiny, tiny) },
		"Arc":             func(c *Canvas) error { return c.Arc(0.5, 0.5, tiny, 0, 90) },
		"Pixel":           func(c *Canvas) error { return c.Pixel(0.5, 0.5) },
		"ZeroRadius":      func(c *Canvas) error { return c.Circle(0.5, 0.5, 0) },
		"BoundaryOnePx":   func(c *Canvas) error { return c.FilledSquare(0.5, 0.5, 0.5/64) },
	}

	for _, ratio := range []int{1, 2} {
		for name, draw := range shapes {
			t.Run(name, func(t *testing.T) {
				c := newTestCanvas(t, WithPixelRatio(ratio))
				if err := draw(c); err != nil {
					t.Fatalf("draw: %v", err)
				}
				n, box := inked(c)
				want := image.Rect(32*ratio, 32*ratio, 33*ratio, 33*ratio)
				if n != ratio*ratio || box != want {
					t.Errorf("ratio %d: %d pixels in %v, want one device pixel at %v", ratio, n, box, want)
				}
				if got := c.Snapshot().RGBAAt(32*ratio, 32*ratio); got != Black {
					t.Errorf("pixel color = %v, want black", got)
				}
			})
		}
	}
}

func TestDegenerate_BothSidesRequired(t *testing.T) {
	c := newTestCanvas(t)
	// Tall and thin: 0.6 px wide but 32 px high.
	if err := c.FilledRectangle(0.5, 0.5, 0.3/64, 0.25); err != nil {
		t.Fatal(err)
	}
	n, box := inked(c)
	if n <= 1 || box.Dy() < 30 {
		t.Errorf("got %d pixels in %v, want a full-height sliver", n, box)
	}
}

func TestDegenerate_RoundsHalfUp(t *testing.T) {
	c := newTestCanvas(t, WithSize(10, 10))
	// Device position (2.5, 7.5) rounds to (3, 8).
	if err := c.Pixel(0.25, 0.25); err != nil {
		t.Fatal(err)
	}
	_, box := inked(c)
	if want := image.Rect(3, 8, 4, 9); box != want {
		t.Errorf("pixel at %v, want %v", box, want)
	}
}

func TestPoint(t *testing.T) {
	c := newTestCanvas(t)
	_ = c.SetPenRadius(0.001) // 0.512 px: a single pixel
	if err := c.Point(0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if n, _ := inked(c); n != 1 {
		t.Errorf("small point drew %d pixels, want 1", n)
	}

	c2 := newTestCanvas(t)
	_ = c2.SetPenRadius(0.02) // diameter 10.24 px regardless of scale
	_ = c2.SetScale(0, 1000)
	if err := c2.Point(500, 500); err != nil {
		t.Fatal(err)
	}
	_, box := inked(c2)
	if box.Dx() < 10 || box.Dx() > 12 {
		t.Errorf("point ink box %v, want about 10 px wide", box)
	}
}

func TestFilledSquare_Coverage(t *testing.T) {
	c := newTestCanvas(t)
	_ = c.SetPenColor(Red)
	// 16x16 device pixels centered at (32, 32).
	if err := c.FilledSquare(0.5, 0.5, 0.125); err != nil {
		t.Fatal(err)
	}
	n, box := inked(c)
	if want := image.Rect(24, 24, 40, 40); box != want || n != 256 {
		t.Errorf("%d pixels in %v, want 256 in %v", n, box, want)
	}
	if got := c.Snapshot().RGBAAt(30, 30); got != Red {
		t.Errorf("interior = %v, want red", got)
	}
}

func TestSquare_Outline(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Square(0.5, 0.5, 0.25); err != nil {
		t.Fatal(err)
	}
	img := c.Snapshot()
	if img.RGBAAt(32, 32) != White {
		t.Error("outline filled the interior")
	}
	if img.RGBAAt(16, 32).A == 0 || img.RGBAAt(16, 32) == White {
		t.Error("left edge not drawn")
	}
}

func TestCircle_NonUniformScale(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.SetXScale(0, 2); err != nil {
		t.Fatal(err)
	}
	// r = 0.25 is 8 px along X and 16 px along Y.
	if err := c.FilledCircle(1, 0.5, 0.25); err != nil {
		t.Fatal(err)
	}
	_, box := inked(c)
	if math.Abs(float64(box.Dx())-16) > 1 || math.Abs(float64(box.Dy())-32) > 1 {
		t.Errorf("ink box %v, want about 16x32", box)
	}
}

func TestLine(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Line(0.25, 0.5, 0.75, 0.5); err != nil {
		t.Fatal(err)
	}
	_, box := inked(c)
	if box.Min.X > 16 || box.Max.X < 48 || box.Dy() > 3 {
		t.Errorf("line ink box %v, want a thin horizontal band from 16 to 48", box)
	}
}

func TestLine_ZeroLength(t *testing.T) {
	c := newTestCanvas(t)
	_ = c.SetPenRadius(0.01)
	if err := c.Line(0.5, 0.5, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if n, _ := inked(c); n == 0 {
		t.Error("zero-length line left no dot")
	}
}

func TestNormalizeArc(t *testing.T) {
	tests := []struct {
		a1, a2     float64
		start, end float64
	}{
		{350, 10, 350, 20},
		{0, 90, 0, 90},
		{90, 90, 90, 0},
		{10, -700, 10, 10},
		{0, -360, 0, 0},
		{45, 44, 45, 359},
	}
	for _, tt := range tests {
		start, sweep := normalizeArc(tt.a1, tt.a2)
		if start != tt.start || math.Abs(sweep-tt.end) > 1e-9 {
			t.Errorf("normalizeArc(%v, %v) = (%v, %v), want (%v, %v)", tt.a1, tt.a2, start, sweep, tt.start, tt.end)
		}
	}
}

func TestArc_SweepsThroughZero(t *testing.T) {
	c := newTestCanvas(t)
	// 350° to 10° passes through the rightmost point of the circle only.
	if err := c.Arc(0.5, 0.5, 0.25, 350, 10); err != nil {
		t.Fatal(err)
	}
	_, box := inked(c)
	if box.Min.X < 44 {
		t.Errorf("arc ink box %v reaches the left half; want only the right side", box)
	}
}

func TestPolygon(t *testing.T) {
	c := newTestCanvas(t)
	d := headless(t, c)

	if err := c.Polygon([]float64{0, 1}, []float64{0}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("mismatched lengths error = %v, want ErrInvalidArgument", err)
	}
	if err := c.FilledPolygon([]float64{0}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("mismatched lengths error = %v, want ErrInvalidArgument", err)
	}

	before := d.Repaints()
	if err := c.Polygon(nil, nil); err != nil {
		t.Errorf("empty polygon error = %v", err)
	}
	if err := c.FilledPolygon([]float64{}, []float64{}); err != nil {
		t.Errorf("empty filled polygon error = %v", err)
	}
	if n, _ := inked(c); n != 0 || d.Repaints() != before {
		t.Errorf("empty polygon drew %d pixels, %d repaints", n, d.Repaints()-before)
	}

	if err := c.FilledPolygon([]float64{0.25, 0.75, 0.5}, []float64{0.25, 0.25, 0.75}); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().RGBAAt(32, 40); got != Black {
		t.Errorf("triangle interior = %v, want black", got)
	}
}

func TestPolygon_ClosesPath(t *testing.T) {
	c := newTestCanvas(t)
	// An open path would skip the edge from (0.75, 0.25) back to (0.25, 0.25).
	if err := c.Polygon([]float64{0.25, 0.5, 0.75}, []float64{0.25, 0.75, 0.25}); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().RGBAAt(32, 48); got == White {
		t.Error("closing edge not drawn")
	}
}

func TestPolygon_SingleVertex(t *testing.T) {
	c := newTestCanvas(t)
	_ = c.SetPenRadius(0.01)
	if err := c.FilledPolygon([]float64{0.5}, []float64{0.5}); err != nil {
		t.Fatal(err)
	}
	if n, _ := inked(c); n == 0 {
		t.Error("single-vertex polygon left no mark")
	}
}

func TestInvalidArguments_NoMutation(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	calls := map[string]func(c *Canvas) error{
		"Point NaN":             func(c *Canvas) error { return c.Point(nan, 0) },
		"Line Inf":              func(c *Canvas) error { return c.Line(0, 0, inf, 1) },
		"Circle negative":       func(c *Canvas) error { return c.Circle(0.5, 0.5, -0.1) },
		"FilledCircle NaN":      func(c *Canvas) error { return c.FilledCircle(0.5, nan, 0.1) },
		"Ellipse negative":      func(c *Canvas) error { return c.Ellipse(0.5, 0.5, 0.1, -0.1) },
		"Arc NaN angle":         func(c *Canvas) error { return c.Arc(0.5, 0.5, 0.1, nan, 10) },
		"Arc negative":          func(c *Canvas) error { return c.Arc(0.5, 0.5, -1, 0, 10) },
		"Square negative":       func(c *Canvas) error { return c.Square(0.5, 0.5, -0.1) },
		"FilledRectangle Inf":   func(c *Canvas) error { return c.FilledRectangle(0.5, 0.5, inf, 0.1) },
		"Polygon NaN":           func(c *Canvas) error { return c.Polygon([]float64{0, nan}, []float64{0, 1}) },
		"ClearColor nil":        func(c *Canvas) error { return c.ClearColor(nil) },
		"SetPenColor nil":       func(c *Canvas) error { return c.SetPenColor(nil) },
		"SetPenRadius negative": func(c *Canvas) error { return c.SetPenRadius(-1) },
		"SetPenRadius NaN":      func(c *Canvas) error { return c.SetPenRadius(nan) },
		"SetPenColorRGB range":  func(c *Canvas) error { return c.SetPenColorRGB(0, 300, 0) },
		"SetFont nil":           func(c *Canvas) error { return c.SetFont(nil) },
		"Text NaN":              func(c *Canvas) error { return c.Text(nan, 0, "x") },
		"Picture NaN":           func(c *Canvas) error { return c.Picture(nan, 0, "x.png") },
		"Pause negative":        func(c *Canvas) error { return c.Pause(-1) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(t)
			d := headless(t, c)
			before := c.Snapshot()
			if err := call(c); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
			if d.Repaints() != 0 {
				t.Errorf("rejected call repainted %d times", d.Repaints())
			}
			after := c.Snapshot()
			for i := range before.Pix {
				if before.Pix[i] != after.Pix[i] {
					t.Fatal("rejected call changed the surface")
				}
			}
			if c.PenColor() != DefaultPenColor || c.PenRadius() != DefaultPenRadius {
				t.Error("rejected call changed the pen")
			}
		})
	}
}

func TestClearColor(t *testing.T) {
	c := newTestCanvas(t)
	_ = c.FilledCircle(0.5, 0.5, 0.3)
	if err := c.ClearColor(Blue); err != nil {
		t.Fatal(err)
	}
	img := c.Snapshot()
	for _, p := range []image.Point{{0, 0}, {32, 32}, {63, 63}} {
		if got := img.RGBAAt(p.X, p.Y); got != Blue {
			t.Errorf("pixel %v = %v, want blue", p, got)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if n, _ := inked(c); n != 0 {
		t.Errorf("Clear left %d non-white pixels", n)
	}

	_ = c.ClearColor(color.Transparent)
	if got := c.Snapshot().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("ClearColor(Transparent) pixel = %v, want transparent", got)
	}
}
