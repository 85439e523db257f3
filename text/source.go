package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string

	// shaping font, parsed on first use
	shapeOnce sync.Once
	shapeFont *gotext.Font
	shapeErr  error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates a Face at the specified size in points (one point is one
// pixel at 72 DPI).
func (s *FontSource) Face(size float64) (*Face, error) {
	s.copyCheck()
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return newFace(s, size)
}

// MustFace is like Face but panics on an invalid size.
func (s *FontSource) MustFace(size float64) *Face {
	f, err := s.Face(size)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// shaping returns the go-text font used for HarfBuzz shaping.
// gotext.Font is read-only and safe for concurrent use; faces built from it
// are not.
func (s *FontSource) shaping() (*gotext.Font, error) {
	s.shapeOnce.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapeErr = err
			return
		}
		s.shapeFont = face.Font
	})
	return s.shapeFont, s.shapeErr
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
