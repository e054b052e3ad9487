package entity

import (
	"fmt"

	"code.rocketnine.space/tslocum/skyraid/internal/geom"
)

// body is the state shared by every entity type: the current sprite slot,
// the engine sound machine and the explosion sequencer.
type body struct {
	tuning Tuning
	assets Assets
	cues   CuePlayer

	visual Visual
	boom   *explosion

	sound SoundState
	timer float64
}

func newBody(assets Assets, cues CuePlayer, t Tuning, pair AssetPair) (*body, error) {
	if cues == nil {
		cues = silent{}
	}

	visual, err := assets.Sprite(pair)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", pair.Image, err)
	}

	anim, err := assets.Animation(t.Explosion)
	if err != nil {
		visual.Release()
		return nil, fmt.Errorf("failed to load explosion %s: %w", t.Explosion.Image, err)
	}

	return &body{
		tuning: t,
		assets: assets,
		cues:   cues,
		visual: visual,
		boom:   newExplosion(anim, t.ExplosionFrameDelay),
	}, nil
}

func (b *body) step(dt float64) {
	b.visual.Update(dt)

	var cue Cue
	b.sound, b.timer, cue = StepSound(b.sound, b.visual.Velocity().Magnitude(), b.timer, dt, b.tuning.Sound)
	b.play(cue)

	for n := b.boom.due(dt); n > 0; n-- {
		if !b.AdvanceExplosion() {
			break
		}
	}
}

func (b *body) play(cue Cue) {
	if p := b.tuning.Cues.Path(cue); p != "" {
		b.cues.Play(p)
	}
}

func (b *body) draw() {
	if b.boom.active {
		b.boom.visual.Draw()
		return
	}
	b.visual.Draw()
}

func (b *body) release() {
	b.visual.Release()
	b.boom.visual.Release()
}

// Position returns the entity position. Writes move the entity.
func (b *body) Position() *geom.Vec2 {
	return b.visual.Position()
}

// Velocity returns the entity velocity. Writes change its motion.
func (b *body) Velocity() *geom.Vec2 {
	return b.visual.Velocity()
}

// SetPosition moves the entity to x, y.
func (b *body) SetPosition(x, y float64) {
	pos := b.visual.Position()
	pos.X, pos.Y = x, y
}

// Width returns the width of the current sprite.
func (b *body) Width() int {
	return b.visual.Width()
}

// SoundState returns the engine sound state.
func (b *body) SoundState() SoundState {
	return b.sound
}

// Move applies a direction bitmask to the velocity and pulls the entity back
// inside its bounds. Commands are ignored while exploding.
func (b *body) Move(mask Direction) {
	if b.boom.active {
		return
	}
	steer(b.visual.Position(), b.visual.Velocity(), mask, b.tuning.Nudge, b.tuning.Bounds)
}

func (b *body) MoveLeft()  { b.Move(Left) }
func (b *body) MoveRight() { b.Move(Right) }
func (b *body) MoveUp()    { b.Move(Forward) }
func (b *body) MoveDown()  { b.Move(Backward) }

// Stop zeroes the velocity unless the entity is exploding.
func (b *body) Stop() {
	if b.boom.active {
		return
	}
	*b.visual.Velocity() = geom.Vec2{}
}

// Explode starts the explosion animation at the current position.
func (b *body) Explode() {
	pos := b.visual.Position()
	b.boom.start(pos.X, pos.Y)
	b.play(CueExplosion)
}

// AdvanceExplosion shows the next explosion frame. It returns true while the
// explosion is still running and false once it has finished, at which point
// the entity is at rest with its engine sound stopped. Calling it while idle
// returns false and changes nothing.
func (b *body) AdvanceExplosion() bool {
	if !b.boom.active {
		return false
	}
	if b.boom.advance() {
		return true
	}
	*b.visual.Velocity() = geom.Vec2{}
	b.sound = Stopped
	b.timer = 0
	return false
}

// Exploded reports whether the explosion animation is running.
func (b *body) Exploded() bool {
	return b.boom.active
}

// ExplosionFrame returns the index of the next explosion frame.
func (b *body) ExplosionFrame() int {
	return b.boom.frame
}
