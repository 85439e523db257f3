// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imagecache resolves image sources and keeps decoded images for the
// lifetime of the process.
//
// A source string is tried, in order, as a file path, as an http(s) URL and
// as a name inside an embedded resource filesystem. The first candidate that
// decodes wins. Decoded images are cached by the source string and never
// evicted or revalidated: if the file changes on disk while the program runs,
// later draws keep showing the first version.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrNotFound is returned when no candidate location yields a decodable
// image.
var ErrNotFound = errors.New("imagecache: image not found")

// Cache maps source strings to decoded images.
//
// Cache is safe for concurrent use, although drawing normally happens on a
// single goroutine.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image

	resources fs.FS
	client    *http.Client
	logger    func() *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithResources sets the filesystem searched after the file system and the
// network.
func WithResources(fsys fs.FS) Option {
	return func(c *Cache) {
		c.resources = fsys
	}
}

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the logger accessor. The function is called on every log
// call so that a logger installed later is picked up.
func WithLogger(logger func() *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &Cache{
		images: make(map[string]image.Image),
		client: http.DefaultClient,
		logger: func() *slog.Logger { return discard },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Load returns the image for src, resolving and decoding it on first use.
// The result is normalized to *image.NRGBA.
func (c *Cache) Load(ctx context.Context, src string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.images[src]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := c.resolve(ctx, src)
	if err != nil {
		return nil, err
	}
	img = imaging.Clone(img)

	c.mu.Lock()
	c.images[src] = img
	c.mu.Unlock()

	c.logger().Debug("imagecache: loaded",
		slog.String("src", src),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	return img, nil
}

func (c *Cache) resolve(ctx context.Context, src string) (image.Image, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty source", ErrNotFound)
	}

	if img, err := c.loadFile(src); err == nil {
		return img, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		c.logger().Warn("imagecache: file candidate failed", slog.String("src", src), slog.Any("error", err))
	}

	if isURL(src) {
		img, err := c.loadURL(ctx, src)
		if err == nil {
			return img, nil
		}
		c.logger().Warn("imagecache: url candidate failed", slog.String("src", src), slog.Any("error", err))
	}

	if c.resources != nil {
		for _, name := range resourceNames(src) {
			img, err := c.loadResource(name)
			if err == nil {
				return img, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				c.logger().Warn("imagecache: resource candidate failed", slog.String("name", name), slog.Any("error", err))
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, src)
}

func (c *Cache) loadFile(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decode(f)
}

func (c *Cache) loadURL(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("imagecache: build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagecache: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagecache: fetch: status %s", resp.Status)
	}
	return decode(resp.Body)
}

func (c *Cache) loadResource(name string) (image.Image, error) {
	f, err := c.resources.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decode(f)
}

func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagecache: decode: %w", err)
	}
	return img, nil
}

func isURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// resourceNames returns the fs.FS names to try for src: the name as given,
// then without leading slashes. Names that fs.ValidPath rejects are skipped.
func resourceNames(src string) []string {
	var names []string
	for _, n := range []string{src, strings.TrimLeft(src, "/")} {
		if !fs.ValidPath(n) {
			continue
		}
		if len(names) > 0 && names[len(names)-1] == n {
			continue
		}
		names = append(names, n)
	}
	return names
}
