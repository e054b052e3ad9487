// Package asset decodes the bitmaps used by sprites. Sprites come either as
// an image plus a black and white mask or as a single colour-keyed image,
// and both end up as an NRGBA image with a real alpha channel.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
)

var (
	ErrFrameBounds = errors.New("frame outside image")
	ErrMaskSize    = errors.New("mask size does not match image")
)

// ColorKey is the colour treated as transparent in keyed images.
var ColorKey = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Decode reads and decodes a BMP or PNG image from fsys.
func Decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

// Load returns the sprite image at name. An empty mask means the image is
// keyed on ColorKey.
func Load(fsys fs.FS, name, mask string) (*image.NRGBA, error) {
	if mask == "" {
		return Keyed(fsys, name, ColorKey)
	}
	return Masked(fsys, name, mask)
}

// Masked combines an image with its mask. White mask pixels are transparent,
// black ones are opaque.
func Masked(fsys fs.FS, name, mask string) (*image.NRGBA, error) {
	src, err := Decode(fsys, name)
	if err != nil {
		return nil, err
	}
	m, err := Decode(fsys, mask)
	if err != nil {
		return nil, err
	}
	if src.Bounds().Size() != m.Bounds().Size() {
		return nil, fmt.Errorf("%s and %s: %w", name, mask, ErrMaskSize)
	}

	out := toNRGBA(src)
	b := out.Bounds()
	mb := m.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(m.At(mb.Min.X+x, mb.Min.Y+y)).(color.Gray)
			if g.Y >= 0x80 {
				out.SetNRGBA(b.Min.X+x, b.Min.Y+y, color.NRGBA{})
			}
		}
	}
	return out, nil
}

// Keyed makes every pixel of key transparent.
func Keyed(fsys fs.FS, name string, key color.Color) (*image.NRGBA, error) {
	src, err := Decode(fsys, name)
	if err != nil {
		return nil, err
	}

	kr, kg, kb, _ := key.RGBA()
	out := toNRGBA(src)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := out.At(x, y).RGBA()
			if r == kr && g == kg && bl == kb {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out, nil
}

// Frames cuts n frames of w×h out of bounds, left to right and then top to
// bottom.
func Frames(bounds image.Rectangle, w, h, n int) ([]image.Rectangle, error) {
	if w <= 0 || h <= 0 || n <= 0 {
		return nil, fmt.Errorf("%d frames of %dx%d: %w", n, w, h, ErrFrameBounds)
	}
	cols := bounds.Dx() / w
	if cols == 0 {
		return nil, fmt.Errorf("frame width %d wider than %d: %w", w, bounds.Dx(), ErrFrameBounds)
	}

	frames := make([]image.Rectangle, n)
	for i := range frames {
		x := bounds.Min.X + (i%cols)*w
		y := bounds.Min.Y + (i/cols)*h
		r := image.Rect(x, y, x+w, y+h)
		if !r.In(bounds) {
			return nil, fmt.Errorf("frame %d %v: %w", i, r, ErrFrameBounds)
		}
		frames[i] = r
	}
	return frames, nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}
