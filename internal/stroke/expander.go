package stroke

import (
	"math"

	"github.com/gogpu/ggdraw/internal/raster"
)

// minDiscSegments and maxDiscSegments bound the polygon used for round caps
// and joins.
const (
	minDiscSegments = 16
	maxDiscSegments = 256
)

// epsilon is the distance below which two consecutive points are merged.
const epsilon = 1e-9

// StrokeExpander turns polylines into fillable outlines with round caps and
// round joins.
type StrokeExpander struct {
	width     float64
	tolerance float64
}

// NewStrokeExpander creates an expander for strokes of the given width.
func NewStrokeExpander(width float64) *StrokeExpander {
	return &StrokeExpander{
		width:     width,
		tolerance: raster.Tolerance,
	}
}

// SetTolerance sets the maximum deviation allowed when approximating round
// caps and joins. Non-positive values are ignored.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Width returns the stroke width.
func (e *StrokeExpander) Width() float64 {
	return e.width
}

// Expand returns the outline of the stroke of every contour in p.
func (e *StrokeExpander) Expand(p *raster.Path) *raster.Path {
	out := raster.NewPath()
	if e.width <= 0 {
		return out
	}
	for _, c := range p.Contours() {
		e.expandContour(out, c)
	}
	return out
}

func (e *StrokeExpander) expandContour(out *raster.Path, c raster.Contour) {
	pts := dedupe(c.Points)
	if c.Closed && len(pts) > 2 && near(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	r := e.width / 2

	switch len(pts) {
	case 0:
		return
	case 1:
		e.disc(out, pts[0], r)
		return
	}

	closed := c.Closed && len(pts) > 2
	n := len(pts)
	segments := n - 1
	if closed {
		segments = n
	}

	for i := 0; i < segments; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		nx, ny := -dy/l*r, dx/l*r
		emit(out, []raster.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
	}

	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			e.disc(out, pts[i], r)
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		if e.needsJoin(prev, pts[i], next, r) {
			e.disc(out, pts[i], r)
		}
	}
}

// needsJoin reports whether the gap left between two segment quads at v
// exceeds the tolerance.
func (e *StrokeExpander) needsJoin(prev, v, next raster.Point, r float64) bool {
	ax, ay := v.X-prev.X, v.Y-prev.Y
	bx, by := next.X-v.X, next.Y-v.Y
	cos := (ax*bx + ay*by) / (math.Hypot(ax, ay) * math.Hypot(bx, by))
	cos = math.Max(-1, math.Min(1, cos))
	theta := math.Acos(cos)
	return r*(1-math.Cos(theta/2)) > e.tolerance/4 || r*2*math.Sin(theta/2) > e.tolerance
}

func (e *StrokeExpander) disc(out *raster.Path, c raster.Point, r float64) {
	n := discSegments(r, e.tolerance)
	pts := make([]raster.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = raster.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	emit(out, pts)
}

// discSegments returns the number of polygon sides needed for a circle of
// radius r to stay within a quarter of tolerance of the true circle, the
// same bound needsJoin applies to joins.
func discSegments(r, tolerance float64) int {
	sagitta := tolerance / 4
	if r <= sagitta {
		return minDiscSegments
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-sagitta/r)))
	return max(minDiscSegments, min(n, maxDiscSegments))
}

// emit appends pts as a closed contour with positive signed area.
func emit(out *raster.Path, pts []raster.Point) {
	if SignedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	out.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		out.LineTo(p.X, p.Y)
	}
	out.Close()
}

// SignedArea returns the shoelace area of the closed polygon pts.
func SignedArea(pts []raster.Point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func dedupe(pts []raster.Point) []raster.Point {
	out := make([]raster.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func near(a, b raster.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}
