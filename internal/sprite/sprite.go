// Package sprite draws entity visuals with ebiten. Every sprite renders into
// the BackBuffer it was created for; the host copies that buffer to the
// screen once per frame.
package sprite

import (
	"github.com/hajimehoshi/ebiten/v2"

	"code.rocketnine.space/tslocum/skyraid/internal/geom"
)

// BackBuffer is the off-screen render target shared by all sprites.
type BackBuffer struct {
	img *ebiten.Image
	op  *ebiten.DrawImageOptions
}

// NewBackBuffer returns a w×h render target.
func NewBackBuffer(w, h int) *BackBuffer {
	return &BackBuffer{
		img: ebiten.NewImage(w, h),
		op:  &ebiten.DrawImageOptions{},
	}
}

// Image returns the buffer contents.
func (b *BackBuffer) Image() *ebiten.Image {
	return b.img
}

// Clear erases the buffer.
func (b *BackBuffer) Clear() {
	b.img.Clear()
}

// Size returns the buffer dimensions.
func (b *BackBuffer) Size() (int, int) {
	return b.img.Size()
}

func (b *BackBuffer) blit(img *ebiten.Image, x, y float64) {
	b.op.GeoM.Reset()
	b.op.GeoM.Translate(x, y)
	b.img.DrawImage(img, b.op)
}

// Sprite is an image moving with a constant velocity. Its position is the
// centre of the image.
type Sprite struct {
	target *BackBuffer
	img    *ebiten.Image

	pos, vel geom.Vec2
}

// New returns a sprite at the origin drawing img into target.
func New(target *BackBuffer, img *ebiten.Image) *Sprite {
	return &Sprite{target: target, img: img}
}

// Update moves the sprite by dt seconds of its velocity.
func (s *Sprite) Update(dt float64) {
	s.pos = s.pos.Add(s.vel.Scale(dt))
}

// Draw renders the sprite centred on its position.
func (s *Sprite) Draw() {
	w, h := s.img.Size()
	s.target.blit(s.img, s.pos.X-float64(w)/2, s.pos.Y-float64(h)/2)
}

func (s *Sprite) Position() *geom.Vec2 { return &s.pos }
func (s *Sprite) Velocity() *geom.Vec2 { return &s.vel }

// Width returns the image width in pixels.
func (s *Sprite) Width() int {
	w, _ := s.img.Size()
	return w
}

// Height returns the image height in pixels.
func (s *Sprite) Height() int {
	_, h := s.img.Size()
	return h
}

// Release frees the image. The sprite must not be drawn afterwards.
func (s *Sprite) Release() {
	s.img.Dispose()
}

// Animated is a sprite showing one frame of a sheet at a time.
type Animated struct {
	Sprite

	sheet  *ebiten.Image
	frames []*ebiten.Image
	frame  int
}

// NewAnimated returns an animated sprite showing frames[0].
func NewAnimated(target *BackBuffer, sheet *ebiten.Image, frames []*ebiten.Image) *Animated {
	return &Animated{
		Sprite: Sprite{target: target, img: frames[0]},
		sheet:  sheet,
		frames: frames,
	}
}

// SetFrame shows frame i, clamped to the available frames.
func (a *Animated) SetFrame(i int) {
	if i < 0 {
		i = 0
	} else if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	a.frame = i
	a.img = a.frames[i]
}

// Frame returns the frame shown.
func (a *Animated) Frame() int {
	return a.frame
}

// FrameCount returns the number of frames in the sheet.
func (a *Animated) FrameCount() int {
	return len(a.frames)
}

// Release frees the sheet and every frame cut from it.
func (a *Animated) Release() {
	a.sheet.Dispose()
}
