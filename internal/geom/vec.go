// Package geom provides 2D vector, polygon, and bounding-box math for the
// collision engine. It contains no external dependencies to keep the
// geometric kernel pure and testable.
package geom

import "math"

// Vec is a 2D vector (or point) in world space.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (z-component) of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns the counter-clockwise perpendicular of v.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// RotateAround rotates v around center c by angle radians.
func (v Vec) RotateAround(c Vec, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	dx := v.X - c.X
	dy := v.Y - c.Y
	return Vec{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
