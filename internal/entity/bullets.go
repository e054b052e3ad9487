package entity

import (
	"fmt"

	"code.rocketnine.space/tslocum/skyraid/internal/geom"
)

// bullets is the pair of shots fired from either side of the nose.
type bullets struct {
	left, right Visual
	armed       bool
}

func newBullets(assets Assets, pair AssetPair) (*bullets, error) {
	left, err := assets.Sprite(pair)
	if err != nil {
		return nil, fmt.Errorf("failed to load bullet %s: %w", pair.Image, err)
	}
	right, err := assets.Sprite(pair)
	if err != nil {
		left.Release()
		return nil, fmt.Errorf("failed to load bullet %s: %w", pair.Image, err)
	}

	// Parked above the screen so the first shot starts from the nose.
	left.Position().Y = PlayfieldTop - 1
	right.Position().Y = PlayfieldTop - 1

	return &bullets{left: left, right: right}, nil
}

// fire relaunches the pair. The pair only jumps back to the nose once the
// previous shot has left the screen.
func (b *bullets) fire(nose geom.Vec2, speed float64) {
	if b.left.Position().Y < PlayfieldTop {
		*b.left.Position() = geom.Vec2{X: nose.X - BulletOffsetX, Y: nose.Y - BulletOffsetY}
		*b.right.Position() = geom.Vec2{X: nose.X + BulletOffsetX, Y: nose.Y - BulletOffsetY}
	}
	b.left.Velocity().Y = -speed
	b.right.Velocity().Y = -speed
	b.armed = true
}

func (b *bullets) update(dt float64) {
	b.left.Update(dt)
	b.right.Update(dt)
}

func (b *bullets) draw() {
	b.left.Draw()
	b.right.Draw()
}

func (b *bullets) release() {
	b.left.Release()
	b.right.Release()
}
