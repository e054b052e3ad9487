package entity

import (
	"testing"

	"code.rocketnine.space/tslocum/skyraid/internal/geom"
)

func TestAdvanceExplosion(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		build  func(t *testing.T) (*body, *fakeAssets, *cueRecorder)
	}{
		{name: "player", frames: PlayerExplosionFrames, build: func(t *testing.T) (*body, *fakeAssets, *cueRecorder) {
			p, a, c := newTestPlayer(t)
			return p.body, a, c
		}},
		{name: "crate", frames: CrateExplosionFrames, build: func(t *testing.T) (*body, *fakeAssets, *cueRecorder) {
			cr, a, c := newTestCrate(t)
			return cr.body, a, c
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, assets, cues := tc.build(t)
			anim := assets.animations[0]

			b.SetPosition(300, 200)
			*b.Velocity() = geom.Vec2{X: 12, Y: -40}
			b.sound = Moving
			b.timer = 0.7

			b.Explode()
			if !b.Exploded() {
				t.Fatal("Exploded() = false after Explode()")
			}
			if anim.pos != (geom.Vec2{X: 300, Y: 200}) {
				t.Fatalf("explosion at %v, want (300,200)", anim.pos)
			}
			if got := cues.count(jetCues.Explosion); got != 1 {
				t.Fatalf("explosion cues = %d, want 1", got)
			}

			for i := 0; i < tc.frames-1; i++ {
				if !b.AdvanceExplosion() {
					t.Fatalf("AdvanceExplosion() #%d = false, want true", i+1)
				}
				if b.ExplosionFrame() < 0 || b.ExplosionFrame() >= tc.frames {
					t.Fatalf("frame %d outside [0,%d)", b.ExplosionFrame(), tc.frames)
				}
				if *b.Velocity() != (geom.Vec2{X: 12, Y: -40}) {
					t.Fatalf("velocity changed during explosion: %v", *b.Velocity())
				}
			}
			if b.AdvanceExplosion() {
				t.Fatalf("AdvanceExplosion() #%d = true, want false", tc.frames)
			}

			if b.Exploded() {
				t.Fatal("Exploded() = true after last frame")
			}
			if *b.Velocity() != (geom.Vec2{}) {
				t.Fatalf("velocity = %v, want zero", *b.Velocity())
			}
			if b.SoundState() != Stopped {
				t.Fatalf("sound state = %s, want stopped", b.SoundState())
			}
			if b.timer != 0 {
				t.Fatalf("timer = %v, want 0 after the forced stop", b.timer)
			}
			if b.ExplosionFrame() != 0 {
				t.Fatalf("frame = %d, want 0", b.ExplosionFrame())
			}
			if last, _ := anim.lastFrame(); last != tc.frames-1 {
				t.Fatalf("last frame shown = %d, want %d", last, tc.frames-1)
			}
		})
	}
}

func TestAdvanceExplosionIdle(t *testing.T) {
	p, assets, cues := newTestPlayer(t)
	anim := assets.animations[0]

	*p.Velocity() = geom.Vec2{X: 5}
	for i := 0; i < 3; i++ {
		if p.AdvanceExplosion() {
			t.Fatal("AdvanceExplosion() = true while idle")
		}
	}
	if *p.Velocity() != (geom.Vec2{X: 5}) {
		t.Fatalf("velocity = %v, want untouched", *p.Velocity())
	}
	if len(anim.shown) != 0 || len(cues.played) != 0 {
		t.Fatalf("idle advance touched frames %v or cues %v", anim.shown, cues.played)
	}

	p.Explode()
	for p.AdvanceExplosion() {
	}
	shown := len(anim.shown)
	if p.AdvanceExplosion() {
		t.Fatal("AdvanceExplosion() = true after completion")
	}
	if len(anim.shown) != shown {
		t.Fatal("AdvanceExplosion() changed the frame after completion")
	}
}

func TestExplosionPacedByUpdate(t *testing.T) {
	c, assets, _ := newTestCrate(t)
	anim := assets.animations[0]

	c.Explode()

	// Half a frame delay does not advance.
	c.Update(ExplosionFrameDelay / 2)
	if len(anim.shown) != 1 {
		t.Fatalf("frames shown = %v, want only the reset", anim.shown)
	}

	for i := 0; i < 100 && c.Exploded(); i++ {
		c.Update(ExplosionFrameDelay)
	}
	if c.Exploded() {
		t.Fatal("explosion still running after 100 frame delays")
	}
	// Reset frame plus one SetFrame per advance.
	if got := len(anim.shown); got != 1+CrateExplosionFrames {
		t.Fatalf("frames shown = %d, want %d", got, 1+CrateExplosionFrames)
	}
}

func TestExplodeRestarts(t *testing.T) {
	p, _, _ := newTestPlayer(t)

	p.Explode()
	p.AdvanceExplosion()
	p.AdvanceExplosion()
	p.Explode()
	if p.ExplosionFrame() != 0 {
		t.Fatalf("frame after restart = %d, want 0", p.ExplosionFrame())
	}
	n := 0
	for p.AdvanceExplosion() {
		n++
	}
	if n != PlayerExplosionFrames-1 {
		t.Fatalf("advances after restart = %d, want %d", n, PlayerExplosionFrames-1)
	}
}

func TestExplosionWithoutFrames(t *testing.T) {
	anim := &fakeVisual{}
	e := newExplosion(anim, 0)

	e.start(10, 20)
	if e.advance() {
		t.Fatal("advance() = true with no frames")
	}
	if e.active || e.frame != 0 {
		t.Fatalf("active = %t, frame = %d, want idle at 0", e.active, e.frame)
	}
}
