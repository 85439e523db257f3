package ggdraw

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Named colors with the classic AWT values.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGray = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	Pink      = color.RGBA{R: 255, G: 175, B: 175, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// awtNames maps lower-case names to the AWT palette. They take precedence
// over CSS names, which differ for gray, green and orange.
var awtNames = map[string]color.RGBA{
	"black":     Black,
	"blue":      Blue,
	"cyan":      Cyan,
	"darkgray":  DarkGray,
	"gray":      Gray,
	"green":     Green,
	"lightgray": LightGray,
	"magenta":   Magenta,
	"orange":    Orange,
	"pink":      Pink,
	"red":       Red,
	"white":     White,
	"yellow":    Yellow,
}

// ParseColor parses "#rgb" or "#rrggbb" hex notation, an AWT color name
// ("darkGray") or a CSS color name ("cornflowerblue"). Names are
// case-insensitive; underscores and spaces are ignored.
func ParseColor(s string) (color.RGBA, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", " ", "").Replace(s))
	if c, ok := awtNames[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	if len(key) == 4 && key[0] == '#' {
		key = string([]byte{'#', key[1], key[1], key[2], key[2], key[3], key[3]})
	}
	if len(key) == 7 && key[0] == '#' {
		c, err := colorful.Hex(key)
		if err == nil {
			r, g, b := c.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.RGBA{}, invalidf("ParseColor: unknown color %q", s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSL returns the opaque color with hue h in degrees and saturation s and
// lightness l in [0, 1]. Out-of-gamut results are clamped.
func HSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RGB returns the opaque color with 8-bit components. Components outside
// 0..255 return ErrInvalidArgument.
func RGB(r, g, b int) (color.RGBA, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: color component %d outside 0..255", ErrInvalidArgument, v)
		}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}
