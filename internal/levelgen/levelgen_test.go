package levelgen

import (
	"testing"

	"github.com/vkurilin/cannonade/internal/world"
)

func buildWorld(t *testing.T, name string, seed uint64) *world.World {
	t.Helper()
	lv, err := Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	w := world.New(0, 0)
	Populate(w, lv, seed)
	return w
}

func TestPopulateDeterministic(t *testing.T) {
	a := buildWorld(t, "classic", 1234)
	b := buildWorld(t, "classic", 1234)

	ea, eb := a.Entities(), b.Entities()
	if len(ea) != len(eb) {
		t.Fatalf("entity counts differ for same seed: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Fatalf("entity %d differs for same seed: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestPopulateSeedVariation(t *testing.T) {
	a := buildWorld(t, "classic", 1)
	b := buildWorld(t, "classic", 2)

	ea, eb := a.Entities(), b.Entities()
	if len(ea) == len(eb) {
		same := true
		for i := range ea {
			if ea[i] != eb[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("different seeds produced identical layouts")
		}
	}
}

func TestPopulatePlacesCannonAtCenter(t *testing.T) {
	for _, name := range []string{"intro", "classic", "stress"} {
		t.Run(name, func(t *testing.T) {
			w := buildWorld(t, name, 7)
			if n := w.Count(world.KindCannon); n != 1 {
				t.Fatalf("Count(cannon) = %d, expected 1", n)
			}
			cannon := w.Entities()[0]
			if cannon.Kind != world.KindCannon {
				t.Error("cannon is not the first spawned entity")
			}
			if cannon.Pos != w.Center() {
				t.Errorf("cannon at %v, expected world center %v", cannon.Pos, w.Center())
			}
		})
	}
}

func TestPopulateMixesWallsAndBaddies(t *testing.T) {
	w := buildWorld(t, "classic", 99)

	if n := w.Count(world.KindWall); n == 0 {
		t.Error("procedural level generated no walls")
	}
	if n := w.Count(world.KindBaddie); n == 0 {
		t.Error("procedural level generated no baddies")
	}
}

func TestStressLevelsAreDenser(t *testing.T) {
	classic := len(buildWorld(t, "classic", 5).Entities())
	stress := len(buildWorld(t, "stress", 5).Entities())

	if stress <= classic {
		t.Errorf("stress level has %d entities, classic has %d; expected stress to be denser",
			stress, classic)
	}
}

func TestIntroLayoutIgnoresSeed(t *testing.T) {
	a := buildWorld(t, "intro", 1)
	b := buildWorld(t, "intro", 999)

	ea, eb := a.Entities(), b.Entities()
	if len(ea) != len(eb) {
		t.Fatalf("fixed layout varies with seed: %d vs %d entities", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Fatalf("fixed layout entity %d varies with seed", i)
		}
	}
	if n := a.Count(world.KindWall); n != 4 {
		t.Errorf("intro Count(wall) = %d, expected 4", n)
	}
	if n := a.Count(world.KindBaddie); n != 6 {
		t.Errorf("intro Count(baddie) = %d, expected 6", n)
	}
}

func TestRegistry(t *testing.T) {
	if !Exists("classic") {
		t.Error("Exists(classic) = false")
	}
	if Exists("no-such-level") {
		t.Error("Exists(no-such-level) = true")
	}
	if _, err := Get("no-such-level"); err == nil {
		t.Error("Get(no-such-level) did not return an error")
	}

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1].Name >= names[i].Name {
			t.Errorf("List() not sorted: %q before %q", names[i-1].Name, names[i].Name)
		}
	}
}
