package entity

import "fmt"

// Player is the aircraft steered by the user.
type Player struct {
	*body

	facing Direction
	shots  *bullets
}

// NewPlayer builds a player facing forward. Every sprite it owns comes from
// assets and every sound goes through cues, which may be nil.
func NewPlayer(assets Assets, cues CuePlayer, t Tuning) (*Player, error) {
	b, err := newBody(assets, cues, t, t.Facing.Pair(Forward))
	if err != nil {
		return nil, err
	}

	shots, err := newBullets(assets, t.Bullet)
	if err != nil {
		b.release()
		return nil, err
	}

	return &Player{
		body:   b,
		facing: Forward,
		shots:  shots,
	}, nil
}

// Update advances the bullets, the aircraft, its engine sound and any
// running explosion by dt seconds.
func (p *Player) Update(dt float64) {
	p.shots.update(dt)
	p.step(dt)
}

// Draw renders the bullets while they are live, then the aircraft or its
// explosion.
func (p *Player) Draw() {
	if p.shots.armed && !p.boom.active {
		p.shots.draw()
	}
	p.draw()
}

// Shoot fires both bullets upwards.
func (p *Player) Shoot() {
	p.shots.fire(*p.visual.Position(), p.tuning.BulletSpeed)
}

// BulletPosition returns the position of the left bullet.
func (p *Player) BulletPosition() (x, y float64) {
	pos := p.shots.left.Position()
	return pos.X, pos.Y
}

// BulletWidth returns the width used for bullet hit tests.
func (p *Player) BulletWidth() int {
	return BulletWidth
}

// Facing returns the direction the aircraft points to.
func (p *Player) Facing() Direction {
	return p.facing
}

// Appearance returns the assets of the sprite currently shown.
func (p *Player) Appearance() AssetPair {
	return p.tuning.Facing.Pair(p.facing)
}

// RotateLeft turns the aircraft a quarter turn counter clockwise.
func (p *Player) RotateLeft() error {
	return p.face(p.facing.CounterClockwise())
}

// RotateRight turns the aircraft a quarter turn clockwise.
func (p *Player) RotateRight() error {
	return p.face(p.facing.Clockwise())
}

// face swaps the sprite for the one of d. The old sprite is kept when the new
// one cannot be loaded.
func (p *Player) face(d Direction) error {
	pair := p.tuning.Facing.Pair(d)
	next, err := p.assets.Sprite(pair)
	if err != nil {
		return fmt.Errorf("failed to rotate %s: %w", d, err)
	}

	*next.Position() = *p.visual.Position()
	*next.Velocity() = *p.visual.Velocity()

	prev := p.visual
	p.visual = next
	prev.Release()

	p.facing = d
	return nil
}

// Close releases every sprite owned by the player.
func (p *Player) Close() {
	p.shots.release()
	p.release()
}
