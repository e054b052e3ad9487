package entity

// SoundState is the engine sound state of an entity.
type SoundState int

const (
	Stopped SoundState = iota
	Moving
)

func (s SoundState) String() string {
	if s == Moving {
		return "moving"
	}
	return "stopped"
}

// Cue is a sound event emitted by an entity.
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueStop
	CueLoop
	CueExplosion
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueStop:
		return "stop"
	case CueLoop:
		return "loop"
	case CueExplosion:
		return "explosion"
	default:
		return "none"
	}
}

// Path returns the asset path bound to c, or "" when c is CueNone or unbound.
func (c Cues) Path(cue Cue) string {
	switch cue {
	case CueStart:
		return c.Start
	case CueStop:
		return c.Stop
	case CueLoop:
		return c.Loop
	case CueExplosion:
		return c.Explosion
	default:
		return ""
	}
}

// StepSound advances the engine sound state by one tick of length dt at speed
// v. It returns the next state, the next timer value and the cue to play.
//
// The loop cue repeats every th.LoopInterval seconds while moving because the
// audio backend cannot loop or stop a cue once it started.
func StepSound(state SoundState, v, timer, dt float64, th SoundThresholds) (SoundState, float64, Cue) {
	timer += dt

	switch state {
	case Stopped:
		if v > th.Start {
			return Moving, 0, CueStart
		}
	case Moving:
		if v < th.Stop {
			return Stopped, 0, CueStop
		}
		if timer > th.LoopInterval {
			return Moving, 0, CueLoop
		}
	}
	return state, timer, CueNone
}
