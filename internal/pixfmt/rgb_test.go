// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixfmt

import (
	"image"
	"image/color"
	"testing"
)

func TestFromRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want color.RGBA
	}{
		{"opaque", color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{"transparent", color.RGBA{}, color.RGBA{A: 255}},
		{"half red", color.RGBA{R: 128, A: 128}, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, 2, 2))
			src.SetRGBA(1, 1, tt.in)
			dst := FromRGBA(src)
			if got := dst.RGBAt(1, 1); got != tt.want {
				t.Errorf("RGBAt(1, 1) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGB_Layout(t *testing.T) {
	img := NewRGB(image.Rect(1, 1, 4, 3))
	if img.Stride != 9 || len(img.Pix) != 18 {
		t.Fatalf("Stride = %d, len(Pix) = %d, want 9, 18", img.Stride, len(img.Pix))
	}
	img.Set(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	i := img.PixOffset(2, 2)
	if i != 12 {
		t.Errorf("PixOffset(2, 2) = %d, want 12", i)
	}
	if got := img.Pix[i : i+3]; got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Pix = %v, want [1 2 3]", got)
	}
	if !img.Opaque() {
		t.Error("Opaque() = false")
	}
	if got := img.At(0, 0); got != (color.RGBA{}) {
		t.Errorf("At outside bounds = %v, want zero", got)
	}
}
