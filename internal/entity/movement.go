package entity

import "code.rocketnine.space/tslocum/skyraid/internal/geom"

// Direction is a movement bitmask. A single bit also names a facing.
type Direction uint

const (
	Forward  Direction = 1
	Backward Direction = 2
	Left     Direction = 4
	Right    Direction = 8
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "mixed"
}

// Clockwise returns the facing after a quarter turn right.
func (d Direction) Clockwise() Direction {
	switch d {
	case Forward:
		return Right
	case Right:
		return Backward
	case Backward:
		return Left
	default:
		return Forward
	}
}

// CounterClockwise returns the facing after a quarter turn left.
func (d Direction) CounterClockwise() Direction {
	switch d {
	case Forward:
		return Left
	case Left:
		return Backward
	case Backward:
		return Right
	default:
		return Forward
	}
}

// steer nudges vel along every axis set in mask, then pushes pos back towards
// b on each axis it has crossed. The correction happens after the fact so an
// entity may spend one frame outside b.
func steer(pos, vel *geom.Vec2, mask Direction, nudge float64, b Bounds) {
	if mask&Left != 0 {
		vel.X -= nudge
	}
	if pos.X < b.MinX {
		vel.X = 0
		pos.X++
	}

	if mask&Right != 0 {
		vel.X += nudge
	}
	if pos.X > b.MaxX {
		vel.X = 0
		pos.X--
	}

	if mask&Forward != 0 {
		vel.Y -= nudge
	}
	if pos.Y < b.MinY {
		vel.Y = 0
		pos.Y++
	}

	if mask&Backward != 0 {
		vel.Y += nudge
	}
	if pos.Y > b.MaxY {
		vel.Y = 0
		pos.Y--
	}
}
