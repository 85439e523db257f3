// Package ggdraw provides a simple 2D drawing canvas for Go programs.
//
// # Overview
//
// A Canvas is a fixed-size raster surface with a user-defined coordinate
// space. Programs describe points, lines, circles, arcs, rectangles,
// polygons, pictures and text in user coordinates; the canvas maps them to
// device pixels and draws them immediately. There is no scene graph.
//
// # Quick Start
//
//	import "github.com/gogpu/ggdraw"
//
//	c, err := ggdraw.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = c.SetPenColor(ggdraw.Blue)
//	_ = c.FilledCircle(0.5, 0.5, 0.25)
//	_ = c.Save("circle.png")
//
// # Coordinate System
//
// The default scale is the unit square. User Y grows upward:
//   - (XMin, YMin) is the bottom-left corner of the canvas
//   - (XMax, YMax) is the top-right corner
//   - angles are in degrees, 0 points right and positive angles turn
//     counter-clockwise on screen
//
// Pen radii do not follow the scale. A radius r gives strokes r*512 device
// pixels wide on any canvas.
//
// Shapes whose mapped size is at most one device pixel in both directions
// are drawn as a single pixel at their center.
//
// # Surfaces
//
// Drawing goes to an off-screen surface rendered at PixelRatio times the
// device resolution (2 by default). After each draw call the off-screen
// surface is copied to the on-screen surface and the Display is asked to
// repaint. EnableDeferredRendering suspends that copy until Present, which
// lets animations show each frame at once.
//
// # Input
//
// Display backends deliver pointer and keyboard events through
// PointerPressed, KeyTyped and friends on their own goroutine. Programs
// poll the state with IsPointerPressed, PointerX, NextTypedKey and
// IsKeyHeld. Pointer and keyboard state are guarded by separate locks.
//
// A windowed display is available in backend/raylib.
package ggdraw
