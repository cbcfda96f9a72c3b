// Package collision implements the frame collision pipeline: a spatial-hash
// broad phase over entity bounding boxes, a separating-axis narrow phase over
// convex polygons, and parallel per-pair orchestration with a merge barrier.
package collision

import "github.com/vkurilin/cannonade/internal/geom"

// EntityID identifies an entity within a frame snapshot.
type EntityID uint32

// Category tags an entity with its gameplay role. The engine reports it
// alongside results so resolution can dispatch without a world lookup.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryProjectile
	CategoryObstacle
	CategoryEnemy
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryProjectile:
		return "projectile"
	case CategoryObstacle:
		return "obstacle"
	case CategoryEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Shape is one entity's entry in a frame snapshot: its identity, category,
// and convex hull in world space. The engine only reads shapes; the caller
// retains ownership.
type Shape struct {
	ID       EntityID
	Category Category
	Hull     geom.Polygon
}

// Snapshot is the immutable per-frame input to the engine: all active
// entities' shapes for the current tick.
type Snapshot []Shape

// Pair is an unordered pair of entity IDs, normalized so that A < B.
type Pair struct {
	A, B EntityID
}

// MakePair returns the normalized pair for two IDs.
func MakePair(a, b EntityID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Contact is a confirmed collision between two entities. Normal is the unit
// minimum-translation axis oriented from A toward B; Depth is the overlap
// along it. Moving B by Normal*Depth separates the shapes.
type Contact struct {
	A, B       EntityID
	CatA, CatB Category
	Normal     geom.Vec
	Depth      float64
}

// Pair returns the normalized pair for the contact.
func (c Contact) Pair() Pair {
	return MakePair(c.A, c.B)
}
