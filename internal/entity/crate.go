package entity

// Crate is an enemy object drifting across the playfield.
type Crate struct {
	*body
}

// NewCrate builds a crate at the origin.
func NewCrate(assets Assets, cues CuePlayer, t Tuning) (*Crate, error) {
	b, err := newBody(assets, cues, t, t.Body)
	if err != nil {
		return nil, err
	}
	return &Crate{body: b}, nil
}

// Update advances the crate, its engine sound and any running explosion.
func (c *Crate) Update(dt float64) {
	c.step(dt)
}

// Draw renders the crate or its explosion.
func (c *Crate) Draw() {
	c.draw()
}

// Drift keeps the crate flying left. Once it has left the screen it is put
// back WrapDistance units to the right.
func (c *Crate) Drift() {
	if c.boom.active {
		return
	}
	pos := c.visual.Position()
	if pos.X > 0 {
		c.visual.Velocity().X = -c.tuning.DriftSpeed
		return
	}
	pos.X += c.tuning.WrapDistance
}

// Close releases every sprite owned by the crate.
func (c *Crate) Close() {
	c.release()
}
