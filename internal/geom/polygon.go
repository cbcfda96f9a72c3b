package geom

import "math"

// Polygon is a convex polygon given as an ordered ring of world-space
// vertices. The ring is open: the first vertex is not repeated at the end.
type Polygon []Vec

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec
}

// Overlaps returns true if the two boxes overlap.
// Boundaries are inclusive: boxes that merely touch still overlap.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Contains returns true if the point p is inside the box (inclusive).
func (b AABB) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the center point of the box.
func (b AABB) Center() Vec {
	return Vec{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
	}
}

// Bounds computes the axis-aligned bounding box of the polygon.
// An empty polygon yields a degenerate box at the origin.
func (p Polygon) Bounds() AABB {
	if len(p) == 0 {
		return AABB{}
	}
	min := p[0]
	max := p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return AABB{Min: min, Max: max}
}

// Centroid returns the vertex average of the polygon.
func (p Polygon) Centroid() Vec {
	if len(p) == 0 {
		return Vec{}
	}
	var c Vec
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(p)))
}

// Transform places a local-space polygon into the world: each vertex is
// rotated by angle radians around the local origin and translated by pos.
func (p Polygon) Transform(pos Vec, angle float64) Polygon {
	sin, cos := math.Sincos(angle)
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Vec{
			X: pos.X + v.X*cos - v.Y*sin,
			Y: pos.Y + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// Box returns a square polygon of the given side length centered on the
// local origin, wound counter-clockwise.
func Box(side float64) Polygon {
	h := side * 0.5
	return Polygon{
		{-h, -h},
		{h, -h},
		{h, h},
		{-h, h},
	}
}

// RectPoly returns an axis-aligned rectangle polygon with the given corner
// and dimensions, wound counter-clockwise.
func RectPoly(x, y, w, h float64) Polygon {
	return Polygon{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
}
