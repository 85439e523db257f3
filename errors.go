package ggdraw

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Canvas operations. Use errors.Is to test for
// them; returned errors wrap one of these with call-specific detail.
var (
	// ErrInvalidArgument is returned for NaN or infinite numbers, negative
	// magnitudes, nil colors or faces, mismatched coordinate slices,
	// unresolvable image sources and non-positive canvas sizes.
	ErrInvalidArgument = errors.New("ggdraw: invalid argument")

	// ErrEmptyInput is returned by NextTypedKey when no keystroke is queued.
	// It means "try again later", not a programming error.
	ErrEmptyInput = errors.New("ggdraw: no typed key available")

	// ErrUnsupportedFormat is returned by Save and Encode for file formats
	// other than PNG and JPEG.
	ErrUnsupportedFormat = errors.New("ggdraw: unsupported image format")

	// ErrClosed is returned by operations on a closed canvas.
	ErrClosed = errors.New("ggdraw: canvas closed")
)

// invalidf wraps ErrInvalidArgument with a formatted message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// checkFinite returns ErrInvalidArgument if any value is NaN or infinite.
// name identifies the operation in the error message.
func checkFinite(name string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("%s: argument %d is %v", name, i, v)
		}
	}
	return nil
}

// checkNonNegative returns ErrInvalidArgument if any value is negative.
// Values must already be known to be finite.
func checkNonNegative(name string, values ...float64) error {
	for i, v := range values {
		if v < 0 {
			return invalidf("%s: argument %d must not be negative, got %v", name, i, v)
		}
	}
	return nil
}
