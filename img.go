package main

import (
	"image"
	"strings"

	"code.rocketnine.space/tslocum/skyraid/internal/entity"
	"code.rocketnine.space/tslocum/skyraid/internal/sprite"
)

// spriteAssets builds entity visuals with a sprite loader.
type spriteAssets struct {
	loader *sprite.Loader
}

func (a spriteAssets) Sprite(pair entity.AssetPair) (entity.Visual, error) {
	s, err := a.loader.Sprite(pair.Image, pair.Mask)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a spriteAssets) Animation(anim entity.AnimationAssets) (entity.AnimatedVisual, error) {
	s, err := a.loader.Animation(anim.Image, anim.Mask, anim.FrameWidth, anim.FrameHeight, anim.Frames)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func placeholderSize(name string) image.Point {
	switch {
	case strings.Contains(name, "bullet"):
		return image.Pt(6, 18)
	case strings.Contains(name, "crate"):
		return image.Pt(56, 56)
	default:
		return image.Pt(64, 64)
	}
}
