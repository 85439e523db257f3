package ggdraw

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/gogpu/ggdraw/internal/pixfmt"
)

// Format is an output image encoding.
type Format int

const (
	// PNG keeps the alpha channel.
	PNG Format = iota
	// JPEG drops the alpha channel; pixels are written as 3-channel RGB.
	JPEG
)

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 95

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath selects the format from the file suffix, case-insensitively:
// ".png" selects PNG, ".jpg" and ".jpeg" select JPEG. Any other suffix
// returns ErrUnsupportedFormat.
func FormatFromPath(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err == nil {
		switch f {
		case imaging.PNG:
			return PNG, nil
		case imaging.JPEG:
			return JPEG, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes the on-screen surface to w in the given format.
func (c *Canvas) Encode(w io.Writer, format Format) error {
	img := c.Snapshot()
	switch format {
	case PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case JPEG:
		return imaging.Encode(w, pixfmt.FromRGBA(img), imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

// Save writes the on-screen surface to path, choosing the format from the
// suffix (see FormatFromPath).
//
// A failed save is not fatal to the canvas: the failure is logged as a
// warning and returned, and drawing can continue.
func (c *Canvas) Save(path string) (err error) {
	defer func() {
		if err != nil {
			Logger().Warn("ggdraw: save failed", slog.String("path", path), slog.Any("error", err))
		}
	}()

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := writeEncoded(path, func(w io.Writer) error { return c.Encode(w, format) }); err != nil {
		return fmt.Errorf("ggdraw: save %v: %w", format, err)
	}
	Logger().Debug("ggdraw: saved", slog.String("path", path), slog.String("format", format.String()))
	return nil
}

// writeEncoded runs encode into memory and writes the result to path only if
// encoding succeeded, so a failed save never leaves a partial file.
func writeEncoded(path string, encode func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644)
}
