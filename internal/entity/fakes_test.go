package entity

import (
	"errors"
	"testing"

	"code.rocketnine.space/tslocum/skyraid/internal/geom"
)

type fakeVisual struct {
	pair     AssetPair
	pos, vel geom.Vec2
	width    int

	updates  int
	draws    int
	released bool

	frames int
	shown  []int
}

func (v *fakeVisual) Update(dt float64)    { v.pos = v.pos.Add(v.vel.Scale(dt)); v.updates++ }
func (v *fakeVisual) Draw()                { v.draws++ }
func (v *fakeVisual) Position() *geom.Vec2 { return &v.pos }
func (v *fakeVisual) Velocity() *geom.Vec2 { return &v.vel }
func (v *fakeVisual) Width() int           { return v.width }
func (v *fakeVisual) Release()             { v.released = true }
func (v *fakeVisual) SetFrame(i int)       { v.shown = append(v.shown, i) }
func (v *fakeVisual) FrameCount() int      { return v.frames }
func (v *fakeVisual) lastFrame() (int, bool) {
	if len(v.shown) == 0 {
		return 0, false
	}
	return v.shown[len(v.shown)-1], true
}

var errMissing = errors.New("missing asset")

type fakeAssets struct {
	sprites    []*fakeVisual
	animations []*fakeVisual
	fail       map[string]bool
}

func (a *fakeAssets) Sprite(pair AssetPair) (Visual, error) {
	if a.fail[pair.Image] {
		return nil, errMissing
	}
	v := &fakeVisual{pair: pair, width: 64}
	a.sprites = append(a.sprites, v)
	return v, nil
}

func (a *fakeAssets) Animation(anim AnimationAssets) (AnimatedVisual, error) {
	if a.fail[anim.Image] {
		return nil, errMissing
	}
	v := &fakeVisual{pair: AssetPair{Image: anim.Image, Mask: anim.Mask}, width: anim.FrameWidth, frames: anim.Frames}
	a.animations = append(a.animations, v)
	return v, nil
}

type cueRecorder struct {
	played []string
}

func (r *cueRecorder) Play(cue string) { r.played = append(r.played, cue) }

func (r *cueRecorder) count(cue string) int {
	n := 0
	for _, p := range r.played {
		if p == cue {
			n++
		}
	}
	return n
}

func newTestPlayer(t testing.TB) (*Player, *fakeAssets, *cueRecorder) {
	t.Helper()
	assets := &fakeAssets{}
	cues := &cueRecorder{}
	p, err := NewPlayer(assets, cues, DefaultPlayerTuning())
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	return p, assets, cues
}

func newTestCrate(t testing.TB) (*Crate, *fakeAssets, *cueRecorder) {
	t.Helper()
	assets := &fakeAssets{}
	cues := &cueRecorder{}
	c, err := NewCrate(assets, cues, DefaultCrateTuning())
	if err != nil {
		t.Fatalf("NewCrate() error = %v", err)
	}
	return c, assets, cues
}
