package text

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNewFontSource_Empty(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("garbage")); err == nil {
		t.Error("NewFontSource(garbage) succeeded")
	}
}

func TestFontSource_Name(t *testing.T) {
	regular, mono := Regular().Name(), Mono().Name()
	if regular == "" || regular == "Unknown Font" {
		t.Errorf("Regular().Name() = %q", regular)
	}
	if mono == regular {
		t.Errorf("Mono().Name() = %q, same as Regular", mono)
	}
}

func TestFontSource_FaceSize(t *testing.T) {
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Regular().Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFace_Metrics(t *testing.T) {
	m := Default().Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.Ascent+m.Descent > 2*DefaultSize {
		t.Errorf("ascent+descent = %v, too large for a %d pt face", m.Ascent+m.Descent, DefaultSize)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, less than ascent+descent", m.LineHeight())
	}
}

func TestFace_Advance(t *testing.T) {
	f := Default()
	if got := f.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
	one, two := f.Advance("m"), f.Advance("mm")
	if one <= 0 {
		t.Fatalf("Advance(\"m\") = %v, want > 0", one)
	}
	if math.Abs(two-2*one) > 0.5 {
		t.Errorf("Advance(\"mm\") = %v, want about %v", two, 2*one)
	}

	big := Regular().MustFace(2 * DefaultSize)
	if got, want := big.Advance("m"), 2*one; math.Abs(got-want) > 0.5 {
		t.Errorf("Advance at double size = %v, want about %v", got, want)
	}
}

func TestFace_WithSize(t *testing.T) {
	f := Default()
	same, err := f.WithSize(DefaultSize)
	if err != nil || same != f {
		t.Errorf("WithSize(same) = %p, %v, want the receiver", same, err)
	}
	g, err := f.WithSize(32)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 32 || g.Source() != f.Source() {
		t.Errorf("WithSize(32) = size %v, source %p", g.Size(), g.Source())
	}
}

func TestFace_Draw(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 30))
	f := Default()
	f.Draw(dst, "Hi", 5, 20, image.NewUniform(color.Black))

	var inked image.Rectangle
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if dst.RGBAAt(x, y).A > 0 {
				inked = inked.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if inked.Empty() {
		t.Fatal("Draw left no ink")
	}
	if inked.Min.X < 5 || inked.Max.Y > 21 {
		t.Errorf("ink bounds %v extend left of the origin or below the baseline", inked)
	}
	if float64(inked.Max.X) > 5+f.Advance("Hi")+1 {
		t.Errorf("ink bounds %v extend past the advance %v", inked, f.Advance("Hi"))
	}
}

func TestFace_DrawFollowsAdvance(t *testing.T) {
	f := Default()
	black := image.NewUniform(color.Black)

	whole := image.NewRGBA(image.Rect(0, 0, 100, 30))
	f.Draw(whole, "HH", 5, 20, black)
	split := image.NewRGBA(image.Rect(0, 0, 100, 30))
	f.Draw(split, "H", 5, 20, black)
	f.Draw(split, "H", 5+f.Advance("H"), 20, black)
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if a, b := whole.RGBAAt(x, y), split.RGBAAt(x, y); a != b {
				t.Fatalf("pixel (%d,%d): Draw(\"HH\") = %v, two Draw(\"H\") calls = %v", x, y, a, b)
			}
		}
	}

	// Kerned pairs land where Bounds and Advance place them.
	dst := image.NewRGBA(image.Rect(0, 0, 100, 30))
	f.Draw(dst, "AVAV", 5, 20, black)
	var inked image.Rectangle
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if dst.RGBAAt(x, y).A > 0 {
				inked = inked.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	want := f.Bounds("AVAV").Add(image.Pt(5, 20))
	if !inked.In(want) || inked.Max.X < want.Max.X-1 || inked.Min.X > want.Min.X+1 {
		t.Errorf("ink bounds %v, want about %v", inked, want)
	}
	if adv := f.Advance("AVAV"); float64(want.Max.X-5) > adv+2 {
		t.Errorf("ink right edge %d extends past the advance %v", want.Max.X-5, adv)
	}
}

func TestFace_Bounds(t *testing.T) {
	b := Default().Bounds("Hg")
	if b.Min.Y >= 0 || b.Max.Y <= 0 {
		t.Errorf("Bounds(\"Hg\") = %v, want ink above and below the baseline", b)
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"", DirectionLTR},
		{"hello", DirectionLTR},
		{"123 שלום", DirectionRTL},
		{"مرحبا", DirectionRTL},
		{"abc שלום", DirectionLTR},
	}
	for _, tt := range tests {
		if got := DetectDirection(tt.in); got != tt.want {
			t.Errorf("DetectDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVisualRuns(t *testing.T) {
	runs := visualRuns("abc שלום")
	if len(runs) < 2 {
		t.Fatalf("visualRuns = %+v, want LTR and RTL runs", runs)
	}
	if runs[0].dir != DirectionLTR || runs[len(runs)-1].dir != DirectionRTL {
		t.Errorf("visualRuns = %+v, want LTR first and RTL last", runs)
	}
	if visualRuns("") != nil {
		t.Error("visualRuns(\"\") != nil")
	}
}

func TestVisualRuns_NFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune.
	runs := visualRuns("e\u0301")
	if len(runs) != 1 || runs[0].text != "\u00e9" {
		t.Errorf("visualRuns = %+v, want composed é", runs)
	}
}

func TestReverseRunes(t *testing.T) {
	if got := reverseRunes("aбc"); got != "cбa" {
		t.Errorf("reverseRunes = %q, want %q", got, "cбa")
	}
}
