package world

import (
	"github.com/vkurilin/cannonade/internal/collision"
	"github.com/vkurilin/cannonade/internal/geom"
)

// Kind identifies an entity's gameplay role.
type Kind uint8

const (
	KindCannon Kind = iota
	KindBullet
	KindWall
	KindBaddie
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCannon:
		return "cannon"
	case KindBullet:
		return "bullet"
	case KindWall:
		return "wall"
	case KindBaddie:
		return "baddie"
	default:
		return "unknown"
	}
}

// Category maps a kind onto the collision engine's category tags.
func (k Kind) Category() collision.Category {
	switch k {
	case KindCannon:
		return collision.CategoryPlayer
	case KindBullet:
		return collision.CategoryProjectile
	case KindWall:
		return collision.CategoryObstacle
	default:
		return collision.CategoryEnemy
	}
}

// Entity is a live game object: a square of side Size centered on Pos,
// rotated by Rotation radians, moving at Vel units per second and spinning
// at AngularVel radians per second. IDs are allocated by the owning World.
type Entity struct {
	ID         collision.EntityID
	Kind       Kind
	Pos        geom.Vec
	Vel        geom.Vec
	Rotation   float64
	AngularVel float64
	Size       float64
}

// Hull returns the entity's world-space convex hull for the current tick.
func (e *Entity) Hull() geom.Polygon {
	return geom.Box(e.Size).Transform(e.Pos, e.Rotation)
}
