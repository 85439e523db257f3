package raylib

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/ggdraw"
)

func TestControlRune(t *testing.T) {
	tests := []struct {
		key  ggdraw.Key
		want rune
		ok   bool
	}{
		{ggdraw.KeyEnter, '\n', true},
		{ggdraw.KeyTab, '\t', true},
		{ggdraw.KeyBackspace, '\b', true},
		{ggdraw.KeyEscape, 0x1b, true},
		{ggdraw.KeyA, 0, false},
		{ggdraw.KeyLeftShift, 0, false},
	}
	for _, tt := range tests {
		got, ok := controlRune(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("controlRune(%d) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSaveShortcut(t *testing.T) {
	held := func(keys ...ggdraw.Key) map[ggdraw.Key]struct{} {
		m := make(map[ggdraw.Key]struct{})
		for _, k := range keys {
			m[k] = struct{}{}
		}
		return m
	}
	tests := []struct {
		name string
		key  ggdraw.Key
		held map[ggdraw.Key]struct{}
		want bool
	}{
		{"left ctrl", ggdraw.KeyS, held(ggdraw.KeyLeftControl), true},
		{"right ctrl", ggdraw.KeyS, held(ggdraw.KeyRightControl), true},
		{"cmd", ggdraw.KeyS, held(ggdraw.KeyLeftSuper), true},
		{"plain s", ggdraw.KeyS, held(), false},
		{"shift s", ggdraw.KeyS, held(ggdraw.KeyLeftShift), false},
		{"ctrl a", ggdraw.KeyA, held(ggdraw.KeyLeftControl), false},
	}
	for _, tt := range tests {
		if got := saveShortcut(tt.key, tt.held); got != tt.want {
			t.Errorf("%s: saveShortcut = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRGBAPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	buf := rgbaPixels(img, nil)
	if len(buf) != 6 {
		t.Fatalf("len = %d, want 6", len(buf))
	}
	if buf[5] != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("last pixel = %v", buf[5])
	}

	// A sub-image keeps its own rows.
	sub := img.SubImage(image.Rect(1, 1, 3, 2)).(*image.RGBA)
	got := rgbaPixels(sub, nil)
	if len(got) != 2 || got[0] != (color.RGBA{}) || got[1] != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("sub-image pixels = %v", got)
	}

	if reused := rgbaPixels(sub, buf); &reused[0] != &buf[0] {
		t.Error("buffer not reused")
	}
}

func TestWindow_PendingResize(t *testing.T) {
	w := &window{}
	if _, _, ok := w.pendingResize(); ok {
		t.Fatal("fresh window reports a resize")
	}
	w.Resize(10, 20)
	w.Resize(30, 40)
	if width, height, ok := w.pendingResize(); !ok || width != 30 || height != 40 {
		t.Errorf("pendingResize() = %d, %d, %v; want 30, 40, true", width, height, ok)
	}
	if _, _, ok := w.pendingResize(); ok {
		t.Error("resize reported twice")
	}

	w.Repaint()
	if !w.dirty.Swap(false) {
		t.Error("Repaint did not mark the window dirty")
	}
	_ = w.Close()
	if !w.closing.Load() {
		t.Error("Close did not mark the window closing")
	}
}
