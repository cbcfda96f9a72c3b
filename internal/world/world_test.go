package world

import (
	"math"
	"testing"

	"github.com/vkurilin/cannonade/internal/collision"
	"github.com/vkurilin/cannonade/internal/geom"
)

func TestSpawnAssignsUniqueIDs(t *testing.T) {
	w := New(0, 0)

	seen := make(map[collision.EntityID]bool)
	for i := 0; i < 10; i++ {
		id := w.Spawn(Entity{Kind: KindBaddie, Pos: geom.V(100, 100), Size: 50})
		if seen[id] {
			t.Fatalf("duplicate entity ID %d", id)
		}
		seen[id] = true
	}
}

func TestStepIntegratesMovement(t *testing.T) {
	w := New(1000, 1000)
	id := w.Spawn(Entity{
		Kind:       KindBaddie,
		Pos:        geom.V(100, 100),
		Vel:        geom.V(50, -20),
		AngularVel: 0.5,
		Size:       10,
	})

	w.Step(1.0)

	e := findEntity(t, w, id)
	if e.Pos != geom.V(150, 80) {
		t.Errorf("Pos = %v, expected (150, 80)", e.Pos)
	}
	if e.Rotation != 0.5 {
		t.Errorf("Rotation = %v, expected 0.5", e.Rotation)
	}
}

func TestStepWrapsAtEdges(t *testing.T) {
	w := New(1000, 1000)
	id := w.Spawn(Entity{Kind: KindBaddie, Pos: geom.V(990, 10), Vel: geom.V(50, -50), Size: 10})

	w.Step(1.0)

	e := findEntity(t, w, id)
	if e.Pos.X != 40 || e.Pos.Y != 960 {
		t.Errorf("Pos = %v, expected wrapped (40, 960)", e.Pos)
	}
}

func TestStepDespawnsBulletsAtEdges(t *testing.T) {
	w := New(1000, 1000)
	w.Spawn(Entity{Kind: KindBullet, Pos: geom.V(990, 500), Vel: geom.V(100, 0), Size: 10})

	w.Step(1.0)

	if n := w.Count(KindBullet); n != 0 {
		t.Errorf("Count(bullet) = %d after leaving the world, expected 0", n)
	}
}

func TestFire(t *testing.T) {
	w := New(1000, 1000)

	// No cannon yet: firing is a no-op
	if _, ok := w.Fire(0); ok {
		t.Error("Fire() succeeded without a cannon")
	}

	w.Spawn(Entity{Kind: KindCannon, Pos: w.Center(), Size: 100})
	id, ok := w.Fire(math.Pi / 2)
	if !ok {
		t.Fatal("Fire() failed with a live cannon")
	}

	b := findEntity(t, w, id)
	if b.Kind != KindBullet {
		t.Errorf("fired entity kind = %v, expected bullet", b.Kind)
	}
	if b.Pos != w.Center() {
		t.Errorf("bullet spawned at %v, expected cannon position %v", b.Pos, w.Center())
	}
	if math.Abs(b.Vel.Y-BulletSpeed) > 1e-9 || math.Abs(b.Vel.X) > 1e-9 {
		t.Errorf("bullet velocity = %v, expected (0, %v)", b.Vel, BulletSpeed)
	}
}

func TestResolveBaddieWallBounce(t *testing.T) {
	w := New(1000, 1000)
	wall := w.Spawn(Entity{Kind: KindWall, Pos: geom.V(500, 500), Size: 100})
	baddie := w.Spawn(Entity{Kind: KindBaddie, Pos: geom.V(540, 500), Vel: geom.V(80, 10), Size: 100})

	w.Resolve([]collision.Contact{{
		A: wall, B: baddie,
		CatA: collision.CategoryObstacle, CatB: collision.CategoryEnemy,
		Normal: geom.V(1, 0), Depth: 60,
	}})

	e := findEntity(t, w, baddie)
	if e.Vel != geom.V(-80, -10) {
		t.Errorf("baddie velocity = %v, expected reversed (-80, -10)", e.Vel)
	}
}

func TestResolveBulletImpacts(t *testing.T) {
	w := New(1000, 1000)
	wall := w.Spawn(Entity{Kind: KindWall, Pos: geom.V(500, 500), Size: 100})
	baddie := w.Spawn(Entity{Kind: KindBaddie, Pos: geom.V(200, 200), Size: 100})
	b1 := w.Spawn(Entity{Kind: KindBullet, Pos: geom.V(510, 500), Size: 10})
	b2 := w.Spawn(Entity{Kind: KindBullet, Pos: geom.V(210, 200), Size: 10})

	w.Resolve([]collision.Contact{
		{A: wall, B: b1, Normal: geom.V(1, 0), Depth: 5},
		{A: baddie, B: b2, Normal: geom.V(1, 0), Depth: 5},
	})

	if n := w.Count(KindBullet); n != 0 {
		t.Errorf("Count(bullet) = %d after impacts, expected 0", n)
	}
	if n := w.Count(KindBaddie); n != 0 {
		t.Errorf("Count(baddie) = %d after bullet hit, expected 0", n)
	}
	if n := w.Count(KindWall); n != 1 {
		t.Errorf("Count(wall) = %d, expected walls to survive", n)
	}
}

func TestResolveBaddieReachesCannon(t *testing.T) {
	w := New(1000, 1000)
	cannon := w.Spawn(Entity{Kind: KindCannon, Pos: w.Center(), Size: 100})
	baddie := w.Spawn(Entity{Kind: KindBaddie, Pos: w.Center(), Size: 100})

	if w.GameOver() {
		t.Fatal("GameOver() = true before any contact")
	}
	w.Resolve([]collision.Contact{{A: cannon, B: baddie, Normal: geom.V(1, 0), Depth: 50}})
	if !w.GameOver() {
		t.Error("GameOver() = false after baddie reached the cannon")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w := New(1000, 1000)
	w.Spawn(Entity{Kind: KindBaddie, Pos: geom.V(100, 100), Vel: geom.V(500, 0), Size: 50})

	snap := w.Snapshot()
	before := snap[0].Hull.Bounds()

	w.Step(1.0)

	after := snap[0].Hull.Bounds()
	if before != after {
		t.Error("snapshot hull changed after world step; snapshots must be immutable")
	}
}

func TestSnapshotCategories(t *testing.T) {
	w := New(1000, 1000)
	w.Spawn(Entity{Kind: KindCannon, Pos: geom.V(100, 100), Size: 50})
	w.Spawn(Entity{Kind: KindWall, Pos: geom.V(300, 300), Size: 50})

	snap := w.Snapshot()
	if snap[0].Category != collision.CategoryPlayer {
		t.Errorf("cannon category = %v, expected player", snap[0].Category)
	}
	if snap[1].Category != collision.CategoryObstacle {
		t.Errorf("wall category = %v, expected obstacle", snap[1].Category)
	}
}

func findEntity(t *testing.T, w *World, id collision.EntityID) *Entity {
	t.Helper()
	for i := range w.Entities() {
		if w.Entities()[i].ID == id {
			return &w.Entities()[i]
		}
	}
	t.Fatalf("entity %d not found", id)
	return nil
}
