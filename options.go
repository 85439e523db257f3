package ggdraw

import (
	"io/fs"
	"net/http"
	"time"
)

// Default canvas configuration.
const (
	DefaultWidth      = 512
	DefaultHeight     = 512
	DefaultPixelRatio = 2
	DefaultTitle      = "ggdraw"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default 512x512 headless canvas
//	c, err := ggdraw.New()
//
//	// 800x600, rendered at 1x, with embedded images
//	c, err := ggdraw.New(ggdraw.WithSize(800, 600), ggdraw.WithPixelRatio(1),
//	    ggdraw.WithResources(assets))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	width, height int
	ratio         int
	title         string
	savePath      string
	display       Display
	resources     fs.FS
	client        *http.Client
	sleep         func(time.Duration)
}

func defaultOptions() options {
	return options{
		width:  DefaultWidth,
		height: DefaultHeight,
		ratio:  DefaultPixelRatio,
		title:  DefaultTitle,
		client: http.DefaultClient,
		sleep:  time.Sleep,
	}
}

// WithSize sets the canvas size in device pixels. Non-positive values make
// New fail with ErrInvalidArgument.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithPixelRatio sets how many raster pixels make up one device pixel along
// each axis. Values below 1 are treated as 1.
func WithPixelRatio(ratio int) Option {
	return func(o *options) {
		o.ratio = max(ratio, 1)
	}
}

// WithTitle sets the title a windowed display shows.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSavePath sets the file a windowed display's save shortcut writes to.
// The default is the title with a ".png" suffix.
func WithSavePath(path string) Option {
	return func(o *options) {
		o.savePath = path
	}
}

// WithDisplay sets the display notified after each present.
// The default is a HeadlessDisplay.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithResources sets the filesystem used as the last fallback when
// resolving picture sources, typically an embed.FS bundled with the program.
func WithResources(fsys fs.FS) Option {
	return func(o *options) {
		o.resources = fsys
	}
}

// WithHTTPClient sets the client used to fetch http(s) picture sources.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

// WithSleeper replaces the function Pause uses to block.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}
