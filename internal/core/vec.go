package core

import "math"

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// WithLength rescales v to the given magnitude while keeping its direction.
// A zero-length vector cannot be rescaled: it is returned unchanged with ok=false.
func (v Vec2) WithLength(length float64) (out Vec2, ok bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v, false
	}
	return v.Scale(length / l), true
}

// Unit returns the direction of v, or the zero vector if v has no length.
func (v Vec2) Unit() Vec2 {
	u, ok := v.WithLength(1)
	if !ok {
		return Vec2{}
	}
	return u
}

// FromAngle builds a vector of the given length pointing at angle radians
// (0 = +X, positive angles rotate toward +Y).
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}
