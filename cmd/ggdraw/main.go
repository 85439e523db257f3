// Command ggdraw draws a small demonstration scene, either into an image
// file or into a window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/backend/raylib"
)

func main() {
	var (
		width   = flag.Int("width", ggdraw.DefaultWidth, "canvas width in pixels")
		height  = flag.Int("height", ggdraw.DefaultHeight, "canvas height in pixels")
		ratio   = flag.Int("ratio", ggdraw.DefaultPixelRatio, "raster pixels per canvas pixel")
		output  = flag.String("output", "ggdraw.png", "output file (.png, .jpg or .jpeg)")
		window  = flag.Bool("window", false, "show the scene in a window instead of saving it")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		ggdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []ggdraw.Option{
		ggdraw.WithSize(*width, *height),
		ggdraw.WithPixelRatio(*ratio),
		ggdraw.WithTitle("ggdraw demo"),
	}

	if *window {
		if err := raylib.Run(drawScene, opts...); err != nil {
			log.Fatalf("ggdraw: %v", err)
		}
		return
	}

	c, err := ggdraw.New(opts...)
	if err != nil {
		log.Fatalf("ggdraw: %v", err)
	}
	defer func() { _ = c.Close() }()

	if err := drawScene(c); err != nil {
		log.Fatalf("ggdraw: draw: %v", err)
	}
	if err := c.Save(*output); err != nil {
		log.Fatalf("ggdraw: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawScene draws outlined and filled squares, a circle, a thick arc, a
// filled diamond and two labels.
func drawScene(c *ggdraw.Canvas) error {
	steps := []func() error{
		func() error { return c.Square(0.2, 0.8, 0.1) },
		func() error { return c.FilledSquare(0.8, 0.8, 0.2) },
		func() error { return c.Circle(0.8, 0.2, 0.2) },

		func() error { return c.SetPenColor(ggdraw.Green) },
		func() error { return c.SetPenRadius(0.02) },
		func() error { return c.Arc(0.8, 0.2, 0.1, 200, 45) },

		func() error { c.ResetPenRadius(); return nil },
		func() error { return c.SetPenColor(ggdraw.Blue) },
		func() error {
			return c.FilledPolygon([]float64{0.1, 0.2, 0.3, 0.2}, []float64{0.2, 0.3, 0.2, 0.1})
		},

		func() error { return c.SetPenColor(ggdraw.Black) },
		func() error { return c.Text(0.2, 0.5, "black text") },
		func() error { return c.SetPenColor(ggdraw.Gray) },
		func() error { return c.Text(0.8, 0.8, "gray text") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
