// Package levelgen procedurally generates level layouts from an explicit
// seed. Generation uses fixed-width integer arithmetic only, so a given
// (level, seed) pair produces the identical world on every platform.
package levelgen

import (
	"github.com/vkurilin/cannonade/internal/geom"
	"github.com/vkurilin/cannonade/internal/world"
)

// Populate fills the world with the given level's layout. The cannon is
// always placed at the world center first. For procedural levels the seed
// drives every random choice; fixed levels ignore it.
func Populate(w *world.World, lv Level, seed uint64) {
	if lv.Fixed {
		populateIntro(w)
		return
	}
	populateProcedural(w, lv.Params, seed)
}

// CannonSize is the side length of the player cannon's square hull.
const CannonSize = 500.0

func populateProcedural(w *world.World, p Params, seed uint64) {
	rng := NewRNG(seed)
	base := int64(p.BaseSize)

	w.Spawn(world.Entity{
		Kind: world.KindCannon,
		Pos:  w.Center(),
		Size: CannonSize,
	})

	// Walk the world row by row, advancing x by a random step so object
	// density follows Sparsity. Positions stay integral until spawn.
	height := int64(w.Height())
	width := int64(w.Width())
	for y := base; y < height; y += base {
		x := int64(0)
		for {
			x += rng.IntRange(base/2, base*p.Sparsity)
			if x >= width {
				break
			}
			pos := geom.V(float64(x), float64(y))
			if rng.Percent() < p.WallPercent {
				w.Spawn(world.Entity{
					Kind: world.KindWall,
					Pos:  pos,
					Size: p.BaseSize,
				})
			} else {
				w.Spawn(world.Entity{
					Kind: world.KindBaddie,
					Pos:  pos,
					Vel: geom.V(
						float64(rng.IntRange(-p.BaddieSpeed, p.BaddieSpeed)),
						float64(rng.IntRange(-p.BaddieSpeed, p.BaddieSpeed)),
					),
					AngularVel: float64(rng.IntRange(-p.MaxSpin, p.MaxSpin)) / 100.0,
					Size:       p.BaseSize,
				})
			}
		}
	}
}

// populateIntro builds the hand-authored first level: a cannon in the
// middle, four walls around it, and six slow baddies.
func populateIntro(w *world.World) {
	w.Spawn(world.Entity{Kind: world.KindCannon, Pos: w.Center(), Size: CannonSize})

	const wallSize = 1000.0
	for _, pos := range []geom.Vec{
		geom.V(2500, 2500),
		geom.V(7500, 2500),
		geom.V(7500, 7500),
		geom.V(2500, 7500),
	} {
		w.Spawn(world.Entity{Kind: world.KindWall, Pos: pos, Size: wallSize})
	}

	baddies := []struct {
		pos  geom.Vec
		vel  geom.Vec
		spin float64
	}{
		{geom.V(1000, 1000), geom.V(100, 200), 0.5},
		{geom.V(4000, 2000), geom.V(-200, 100), 0.5},
		{geom.V(6000, 500), geom.V(200, 75), 0.5},
		{geom.V(2000, 6000), geom.V(100, -200), 0.5},
		{geom.V(1500, 9000), geom.V(200, 0), 0.5},
		{geom.V(6500, 7500), geom.V(50, -200), 0.5},
	}
	for _, b := range baddies {
		w.Spawn(world.Entity{
			Kind:       world.KindBaddie,
			Pos:        b.pos,
			Vel:        b.vel,
			AngularVel: b.spin,
			Size:       wallSize,
		})
	}
}
