// Package text provides fonts and faces for drawing strings onto raster
// images.
//
// The package separates two concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//
// Glyph outlines are rasterized with golang.org/x/image/font/opentype.
// Advance widths come from HarfBuzz shaping (github.com/go-text/typesetting),
// so kerning and ligatures are accounted for when strings are aligned.
// Strings are NFC-normalized and split into bidi runs before drawing, so
// right-to-left runs are laid out in visual order.
//
// # Example usage
//
//	face := text.Regular().MustFace(24)
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 50))
//	face.Draw(dst, "Hello", 10, 30, image.Black)
//
// The Go font family is embedded and available through Regular, Bold,
// Italic and Mono.
package text
