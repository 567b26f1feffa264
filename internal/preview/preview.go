// Package preview renders small PNG thumbnails of uploaded images.
package preview

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// DefaultMaxSide bounds the longer edge of a thumbnail.
const DefaultMaxSide = 480

// MaxPixels caps the decoded size of a source image. The upload limit bounds
// compressed bytes only.
const MaxPixels = 40_000_000

// ErrUnsupported is returned for bytes that do not decode as an image.
var ErrUnsupported = errors.New("preview not available")

// Image is an encoded PNG thumbnail.
type Image struct {
	PNG    []byte
	Width  int
	Height int
	Format string // source format reported by image.Decode
}

// DataURI inlines the thumbnail for <img src>.
func (i Image) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

// Thumbnail decodes data and scales it so the longer side is at most maxSide.
// Images already within bounds are re-encoded at their original size.
func Thumbnail(data []byte, maxSide int) (Image, error) {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return Image{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupported, cfg.Width, cfg.Height, MaxPixels)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	b := src.Bounds()
	dst := src
	if b.Dx() > maxSide || b.Dy() > maxSide {
		// resize keeps the aspect ratio when one dimension is zero.
		if b.Dx() >= b.Dy() {
			dst = resize.Resize(uint(maxSide), 0, src, resize.Lanczos3)
		} else {
			dst = resize.Resize(0, uint(maxSide), src, resize.Lanczos3)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Image{}, fmt.Errorf("encode thumbnail: %w", err)
	}
	db := dst.Bounds()
	return Image{PNG: buf.Bytes(), Width: db.Dx(), Height: db.Dy(), Format: format}, nil
}
