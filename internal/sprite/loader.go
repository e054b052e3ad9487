package sprite

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"code.rocketnine.space/tslocum/skyraid/internal/asset"
)

const defaultPlaceholderSize = 48

// Loader builds sprites from the bitmaps in FS.
type Loader struct {
	FS     fs.FS
	Target *BackBuffer

	// Placeholders substitutes generated art for missing files instead of
	// failing.
	Placeholders bool

	// PlaceholderSize returns the size of the generated art for name. When
	// nil every placeholder is 48×48.
	PlaceholderSize func(name string) image.Point
}

func (l *Loader) load(name, mask string) (*image.NRGBA, error) {
	img, err := asset.Load(l.FS, name, mask)
	if err == nil || !l.Placeholders || !errors.Is(err, fs.ErrNotExist) {
		return img, err
	}

	size := image.Pt(defaultPlaceholderSize, defaultPlaceholderSize)
	if l.PlaceholderSize != nil {
		size = l.PlaceholderSize(name)
	}
	return asset.Placeholder(size.X, size.Y, asset.PlaceholderColor(name)), nil
}

// Sprite loads a still sprite.
func (l *Loader) Sprite(name, mask string) (*Sprite, error) {
	img, err := l.load(name, mask)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite: %w", err)
	}
	return New(l.Target, ebiten.NewImageFromImage(img)), nil
}

// Animation loads a sheet of n frames of w×h.
func (l *Loader) Animation(name, mask string, w, h, n int) (*Animated, error) {
	img, err := asset.Load(l.FS, name, mask)
	if err != nil && l.Placeholders && errors.Is(err, fs.ErrNotExist) {
		img, err = asset.PlaceholderStrip(w, h, n, asset.PlaceholderColor(name)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load animation: %w", err)
	}

	rects, err := asset.Frames(img.Bounds(), w, h, n)
	if err != nil {
		return nil, fmt.Errorf("failed to slice %s: %w", name, err)
	}

	sheet := ebiten.NewImageFromImage(img)
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return NewAnimated(l.Target, sheet, frames), nil
}
