package entity

// explosion sequences the one-shot explosion animation of an entity.
type explosion struct {
	visual AnimatedVisual
	frames int
	delay  float64

	active bool
	frame  int
	clock  float64
}

func newExplosion(visual AnimatedVisual, delay float64) *explosion {
	return &explosion{
		visual: visual,
		frames: visual.FrameCount(),
		delay:  delay,
	}
}

func (e *explosion) start(x, y float64) {
	pos := e.visual.Position()
	pos.X, pos.Y = x, y
	e.visual.SetFrame(0)
	e.frame = 0
	e.clock = 0
	e.active = true
}

// advance shows the current frame and moves to the next one. It reports
// whether frames remain; false also means the sequence just finished.
func (e *explosion) advance() bool {
	if !e.active {
		return false
	}
	e.visual.SetFrame(e.frame)
	e.frame++
	if e.frame >= e.frames {
		e.active = false
		e.frame = 0
		e.clock = 0
		return false
	}
	return true
}

// due accumulates dt and reports how many frames should be advanced.
func (e *explosion) due(dt float64) int {
	if !e.active {
		return 0
	}
	if e.delay <= 0 {
		return 1
	}
	e.clock += dt
	n := 0
	for e.clock >= e.delay {
		e.clock -= e.delay
		n++
	}
	return n
}
