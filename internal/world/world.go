// Package world owns the simulation state: entity lifetimes, movement
// integration, snapshot production for the collision engine, and resolution
// of the contacts the engine reports.
package world

import (
	"math"

	"github.com/vkurilin/cannonade/internal/collision"
	"github.com/vkurilin/cannonade/internal/geom"
)

// Default world extent in world units.
const (
	DefaultWidth  = 10000.0
	DefaultHeight = 10000.0
)

// BulletSpeed is the muzzle speed of fired bullets, units per second.
const BulletSpeed = 2000.0

// BulletSize is the side length of a bullet's square hull.
const BulletSize = 100.0

// World holds all live entities and advances them tick by tick. It is the
// sole owner of entity state: the collision engine only ever sees per-frame
// read-only snapshots.
type World struct {
	width  float64
	height float64

	entities  []Entity
	nextID    collision.EntityID
	cannonID  collision.EntityID
	hasCannon bool
	gameOver  bool
}

// New creates an empty world with the given extent.
// Non-positive dimensions fall back to the defaults.
func New(width, height float64) *World {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &World{
		width:  width,
		height: height,
		nextID: 1,
	}
}

// Width returns the world width.
func (w *World) Width() float64 { return w.width }

// Height returns the world height.
func (w *World) Height() float64 { return w.height }

// Center returns the world center point.
func (w *World) Center() geom.Vec {
	return geom.V(w.width/2, w.height/2)
}

// GameOver reports whether a baddie has reached the cannon.
func (w *World) GameOver() bool { return w.gameOver }

// Spawn adds an entity and returns its ID.
// The first cannon spawned becomes the player entity.
func (w *World) Spawn(e Entity) collision.EntityID {
	e.ID = w.nextID
	w.nextID++
	if e.Kind == KindCannon && !w.hasCannon {
		w.cannonID = e.ID
		w.hasCannon = true
	}
	w.entities = append(w.entities, e)
	return e.ID
}

// Fire spawns a bullet at the cannon's position heading along angle radians.
// It is a no-op when the world has no cannon or the game is over.
func (w *World) Fire(angle float64) (collision.EntityID, bool) {
	if !w.hasCannon || w.gameOver {
		return 0, false
	}
	cannon, ok := w.byID(w.cannonID)
	if !ok {
		return 0, false
	}
	sin, cos := math.Sincos(angle)
	id := w.Spawn(Entity{
		Kind:     KindBullet,
		Pos:      cannon.Pos,
		Vel:      geom.V(cos*BulletSpeed, sin*BulletSpeed),
		Rotation: angle,
		Size:     BulletSize,
	})
	return id, true
}

// Step advances every entity by dt seconds: positions and rotations are
// integrated, moving entities wrap at the world edges, and bullets leaving
// the world despawn instead of wrapping.
func (w *World) Step(dt float64) {
	live := w.entities[:0]
	for _, e := range w.entities {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		e.Rotation += e.AngularVel * dt

		if e.Kind == KindBullet {
			if e.Pos.X < 0 || e.Pos.X > w.width || e.Pos.Y < 0 || e.Pos.Y > w.height {
				continue
			}
		} else {
			e.Pos.X = wrap(e.Pos.X, w.width)
			e.Pos.Y = wrap(e.Pos.Y, w.height)
		}
		live = append(live, e)
	}
	w.entities = live
}

// Snapshot produces the read-only per-frame input for the collision engine.
// The snapshot is freshly built each call; mutating the world afterwards
// does not affect it.
func (w *World) Snapshot() collision.Snapshot {
	snap := make(collision.Snapshot, 0, len(w.entities))
	for i := range w.entities {
		e := &w.entities[i]
		snap = append(snap, collision.Shape{
			ID:       e.ID,
			Category: e.Kind.Category(),
			Hull:     e.Hull(),
		})
	}
	return snap
}

// Resolve applies gameplay rules to the engine's confirmed contacts:
//
//   - baddie/wall: the baddie's velocity reverses
//   - bullet/wall: the bullet despawns
//   - bullet/baddie: both despawn
//   - baddie/cannon: the game is over
//
// Other combinations are ignored. Resolution runs synchronously after the
// collision pass and before the next Step.
func (w *World) Resolve(contacts []collision.Contact) {
	dead := make(map[collision.EntityID]struct{})

	for _, c := range contacts {
		a, okA := w.byID(c.A)
		b, okB := w.byID(c.B)
		if !okA || !okB {
			continue
		}
		// Normalize so rules read kind-first
		if rank(a.Kind) > rank(b.Kind) {
			a, b = b, a
		}

		switch {
		case a.Kind == KindBaddie && b.Kind == KindWall:
			a.Vel = a.Vel.Neg()
		case a.Kind == KindBullet && b.Kind == KindWall:
			dead[a.ID] = struct{}{}
		case a.Kind == KindBullet && b.Kind == KindBaddie:
			dead[a.ID] = struct{}{}
			dead[b.ID] = struct{}{}
		case a.Kind == KindCannon && b.Kind == KindBaddie:
			w.gameOver = true
		}
	}

	if len(dead) == 0 {
		return
	}
	live := w.entities[:0]
	for _, e := range w.entities {
		if _, gone := dead[e.ID]; gone {
			continue
		}
		live = append(live, e)
	}
	w.entities = live
}

// Entities returns the live entities. The slice is owned by the world and
// valid until the next Step, Spawn, or Resolve.
func (w *World) Entities() []Entity {
	return w.entities
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for i := range w.entities {
		if w.entities[i].Kind == k {
			n++
		}
	}
	return n
}

// byID returns a pointer into the live entity slice, or false if the ID is
// not live.
func (w *World) byID(id collision.EntityID) (*Entity, bool) {
	for i := range w.entities {
		if w.entities[i].ID == id {
			return &w.entities[i], true
		}
	}
	return nil, false
}

// rank orders kinds for resolution rule matching: cannon < bullet < baddie
// < wall, matching the switch cases in Resolve.
func rank(k Kind) int {
	switch k {
	case KindCannon:
		return 0
	case KindBullet:
		return 1
	case KindBaddie:
		return 2
	default:
		return 3
	}
}

// wrap folds v into [0, max), treating the world as a torus.
func wrap(v, max float64) float64 {
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
