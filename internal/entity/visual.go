// Package entity implements the player aircraft and crate game objects: their
// motion, boundary clamping, sprite-swap rotation, bullets, explosion
// sequencing and engine sound cues.
//
// Entities never touch a graphics or audio device directly. Everything they
// draw is a Visual built by an Assets factory and every sound is a cue handed
// to a CuePlayer, so the host decides what backs them.
package entity

import "code.rocketnine.space/tslocum/skyraid/internal/geom"

// Visual is a drawable sprite with its own position and velocity.
type Visual interface {
	Update(dt float64)
	Draw()
	Position() *geom.Vec2
	Velocity() *geom.Vec2
	Width() int
	Release()
}

// AnimatedVisual is a Visual made of a fixed number of frames.
type AnimatedVisual interface {
	Visual
	SetFrame(i int)
	FrameCount() int
}

// Assets builds visuals for an entity. Implementations bind every visual to
// the render target they were created with.
type Assets interface {
	Sprite(pair AssetPair) (Visual, error)
	Animation(a AnimationAssets) (AnimatedVisual, error)
}

// CuePlayer plays a sound cue identified by its asset path. Play must not
// block and reports nothing back.
type CuePlayer interface {
	Play(cue string)
}

// AssetPair names the image of a sprite and its transparency mask. An empty
// Mask means the image is colour keyed.
type AssetPair struct {
	Image string `toml:"image"`
	Mask  string `toml:"mask"`
}

// AnimationAssets describes a sprite sheet cut into equally sized frames.
type AnimationAssets struct {
	Image       string `toml:"image"`
	Mask        string `toml:"mask"`
	FrameWidth  int    `toml:"frame_width"`
	FrameHeight int    `toml:"frame_height"`
	Frames      int    `toml:"frames"`
}

type silent struct{}

func (silent) Play(string) {}
