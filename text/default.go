package text

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the size of the face returned by Default.
const DefaultSize = 16

func embedded(data []byte) func() *FontSource {
	return sync.OnceValue(func() *FontSource {
		s, err := NewFontSource(data)
		if err != nil {
			panic("text: embedded font: " + err.Error())
		}
		return s
	})
}

var (
	regular = embedded(goregular.TTF)
	bold    = embedded(gobold.TTF)
	italic  = embedded(goitalic.TTF)
	mono    = embedded(gomono.TTF)
)

// Regular returns the embedded Go Regular font.
func Regular() *FontSource { return regular() }

// Bold returns the embedded Go Bold font.
func Bold() *FontSource { return bold() }

// Italic returns the embedded Go Italic font.
func Italic() *FontSource { return italic() }

// Mono returns the embedded Go Mono font.
func Mono() *FontSource { return mono() }

var defaultFace = sync.OnceValue(func() *Face {
	return Regular().MustFace(DefaultSize)
})

// Default returns the shared Go Regular face at DefaultSize.
func Default() *Face { return defaultFace() }
