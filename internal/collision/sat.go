package collision

import (
	"math"

	"github.com/vkurilin/cannonade/internal/geom"
)

// DefaultEpsilon is the minimum overlap depth treated as a real collision.
// Overlaps at or below it are reported as separated, so exactly touching
// shapes do not jitter in and out of contact.
const DefaultEpsilon = 1e-9

// Overlap reports whether two convex polygons intersect, using the
// separating axis theorem: they are disjoint iff some edge normal of either
// polygon separates their projections.
//
// On intersection it returns the minimum-translation vector: a unit normal
// oriented from a toward b, and the overlap depth along it. Overlaps of eps
// or less count as separated. Zero-length edges contribute no axis; a
// polygon with fewer than 3 vertices never overlaps anything (callers are
// expected to filter such shapes out beforehand).
func Overlap(a, b geom.Polygon, eps float64) (geom.Vec, float64, bool) {
	if len(a) < 3 || len(b) < 3 {
		return geom.Vec{}, 0, false
	}

	minDepth := math.MaxFloat64
	var minAxis geom.Vec
	axes := 0

	for _, poly := range []geom.Polygon{a, b} {
		for i := range poly {
			edge := poly[(i+1)%len(poly)].Sub(poly[i])
			if edge.LenSq() == 0 {
				continue
			}
			axis := edge.Perp().Normalize()
			axes++

			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)

			// Separating axis found: no collision
			if minA > maxB || minB > maxA {
				return geom.Vec{}, 0, false
			}

			depth := math.Min(maxA, maxB) - math.Max(minA, minB)
			if depth < minDepth {
				minDepth = depth
				minAxis = axis
			}
		}
	}

	// All edges degenerate: no axis to test, treat as non-colliding
	if axes == 0 {
		return geom.Vec{}, 0, false
	}

	if minDepth <= eps {
		return geom.Vec{}, 0, false
	}

	// Orient the normal from a toward b
	if b.Centroid().Sub(a.Centroid()).Dot(minAxis) < 0 {
		minAxis = minAxis.Neg()
	}
	return minAxis, minDepth, true
}

// project returns the min/max scalar range of the polygon's vertices
// projected onto the axis.
func project(p geom.Polygon, axis geom.Vec) (min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	for _, v := range p {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// Valid reports whether a polygon is usable by the narrow phase: at least
// 3 vertices and at least one non-zero edge.
func Valid(p geom.Polygon) bool {
	if len(p) < 3 {
		return false
	}
	for i := range p {
		if p[(i+1)%len(p)].Sub(p[i]).LenSq() > 0 {
			return true
		}
	}
	return false
}
