package text

import (
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Face is a font at a specific size.
// Face is safe for concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	metrics Metrics

	// mu guards the fields below; opentype faces cache glyph state
	// internally.
	mu   sync.Mutex
	face font.Face
	buf  sfnt.Buffer
	ras  vector.Rasterizer
}

// glyph is a shaped glyph positioned relative to the baseline origin.
type glyph struct {
	id   sfnt.GlyphIndex
	x, y fixed.Int26_6
}

func newFace(s *FontSource, size float64) (*Face, error) {
	of, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	m := of.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := math.Abs(fixedToFloat(m.Descent))
	return &Face{
		source: s,
		size:   size,
		face:   of,
		metrics: Metrics{
			Ascent:  ascent,
			Descent: descent,
			LineGap: math.Max(0, fixedToFloat(m.Height)-ascent-descent),
		},
	}, nil
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in points.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics { return f.metrics }

// WithSize returns a face of the same source at another size.
func (f *Face) WithSize(size float64) (*Face, error) {
	if size == f.size {
		return f, nil
	}
	return f.source.Face(size)
}

// Advance returns the width of s in pixels when drawn with Draw.
func (f *Face) Advance(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, adv, ok := f.layoutLocked(s); ok {
		return fixedToFloat(adv)
	}
	var total fixed.Int26_6
	for _, r := range visualRuns(s) {
		total += font.MeasureString(f.face, r.text)
	}
	return fixedToFloat(total)
}

// Draw composites s onto dst with its baseline origin at (x, y), using src
// as the fill. Right-to-left runs are drawn in visual order.
func (f *Face) Draw(dst draw.Image, s string, x, y float64, src image.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()

	origin := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}
	if glyphs, _, ok := f.layoutLocked(s); ok {
		for _, g := range glyphs {
			f.drawGlyphLocked(dst, src, g.id, origin.Add(fixed.Point26_6{X: g.x, Y: g.y}))
		}
		return
	}

	d := font.Drawer{Dst: dst, Src: src, Face: f.face, Dot: origin}
	for _, r := range visualRuns(s) {
		text := r.text
		if r.dir == DirectionRTL {
			text = reverseRunes(text)
		}
		d.DrawString(text)
	}
}

// Bounds returns the ink bounds of s drawn with its baseline origin at (0, 0).
func (f *Face) Bounds(s string) image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()

	glyphs, _, ok := f.layoutLocked(s)
	if !ok {
		b, _ := font.BoundString(f.face, s)
		return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	}
	var r image.Rectangle
	for _, g := range glyphs {
		segs, err := f.source.font.LoadGlyph(&f.buf, g.id, floatToFixed(f.size), nil)
		if err != nil || len(segs) == 0 {
			continue
		}
		r = r.Union(glyphRect(segs.Bounds(), fixed.Point26_6{X: g.x, Y: g.y}))
	}
	return r
}

// layoutLocked shapes the visual runs of s with HarfBuzz and returns the
// positioned glyphs and the total advance. ok is false when the font cannot
// be loaded for shaping.
func (f *Face) layoutLocked(s string) (glyphs []glyph, advance fixed.Int26_6, ok bool) {
	sf, err := f.source.shaping()
	if err != nil {
		return nil, 0, false
	}
	for _, r := range visualRuns(s) {
		for _, g := range shapeRun(sf, r, f.size) {
			// HarfBuzz offsets are y-up.
			glyphs = append(glyphs, glyph{
				id: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // both parsers index the same glyph table
				x:  advance + g.XOffset,
				y:  -g.YOffset,
			})
			advance += g.Advance
		}
	}
	return glyphs, advance, true
}

// drawGlyphLocked rasterizes the outline of glyph id with its origin at dot.
// Glyphs without an outline (spaces, color bitmaps) draw nothing.
func (f *Face) drawGlyphLocked(dst draw.Image, src image.Image, id sfnt.GlyphIndex, dot fixed.Point26_6) {
	segs, err := f.source.font.LoadGlyph(&f.buf, id, floatToFixed(f.size), nil)
	if err != nil || len(segs) == 0 {
		return
	}
	area := glyphRect(segs.Bounds(), dot).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	biasX := dot.X - fixed.Int26_6(area.Min.X<<6)
	biasY := dot.Y - fixed.Int26_6(area.Min.Y<<6)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+biasX) / 64, float32(p.Y+biasY) / 64
	}

	f.ras.Reset(area.Dx(), area.Dy())
	f.ras.DrawOp = draw.Over
	for _, seg := range segs {
		ax, ay := pt(seg.Args[0])
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			f.ras.MoveTo(ax, ay)
		case sfnt.SegmentOpLineTo:
			f.ras.LineTo(ax, ay)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[1])
			f.ras.QuadTo(ax, ay, bx, by)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[1])
			cx, cy := pt(seg.Args[2])
			f.ras.CubeTo(ax, ay, bx, by, cx, cy)
		}
	}
	f.ras.Draw(dst, area, src, area.Min)
}

// glyphRect returns the pixel rectangle covering glyph bounds b placed at dot.
func glyphRect(b fixed.Rectangle26_6, dot fixed.Point26_6) image.Rectangle {
	return image.Rect(
		(dot.X + b.Min.X).Floor(), (dot.Y + b.Min.Y).Floor(),
		(dot.X + b.Max.X).Ceil(), (dot.Y + b.Max.Y).Ceil(),
	)
}
