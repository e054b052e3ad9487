// Package geom provides the 2D vector type shared by entities and sprites.
package geom

import "math"

// Vec2 is a position or velocity in playfield units.
type Vec2 struct {
	X, Y float64
}

// Magnitude returns the length of the vector.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
