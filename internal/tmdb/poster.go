package tmdb

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // TMDB posters are JPEG
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Fixed poster display size
const (
	PosterWidth  = 150
	PosterHeight = 220
)

// decodePoster decodes image bytes and scales them to the display size
func decodePoster(r io.Reader) (image.Image, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxPosterBytes))
	if err != nil {
		return nil, fmt.Errorf("poster decode: %w", err)
	}
	return ResizePoster(src)
}

// ResizePoster scales src to exactly PosterWidth x PosterHeight.
// The aspect ratio is not preserved.
func ResizePoster(src image.Image) (image.Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("poster has invalid dimensions")
	}

	dst := image.NewRGBA(image.Rect(0, 0, PosterWidth, PosterHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
