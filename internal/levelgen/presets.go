package levelgen

import (
	"fmt"
	"sort"
	"sync"
)

// Params are the procedural generation tunables for a level.
type Params struct {
	// BaseSize is the side length of generated walls and baddies, in
	// world units.
	BaseSize float64

	// Sparsity controls horizontal spacing between generated objects.
	// Valid range 1 (most dense) to 10 (least dense).
	Sparsity int64

	// WallPercent is the percentage of generated objects that are walls;
	// the rest are baddies.
	WallPercent int64

	// BaddieSpeed is the maximum baddie speed, units per second.
	BaddieSpeed int64

	// MaxSpin is the maximum baddie angular speed in centiradians per
	// second (divided by 100 when applied).
	MaxSpin int64
}

// Level is a named level definition: either procedural parameters or a
// hand-authored fixed layout. Stress layouts are ordinary named levels;
// there are no sentinel level indices.
type Level struct {
	Name        string
	Description string
	Params      Params
	Fixed       bool // hand-authored layout; Params and seed are ignored
}

var (
	mu     sync.RWMutex
	levels = make(map[string]Level)
)

// Register adds a level definition to the registry.
// Panics if the name is already taken.
func Register(lv Level) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := levels[lv.Name]; exists {
		panic(fmt.Sprintf("levelgen: level %q already registered", lv.Name))
	}
	levels[lv.Name] = lv
}

// List returns all registered levels, sorted by name.
func List() []Level {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Level, 0, len(levels))
	for _, lv := range levels {
		result = append(result, lv)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Get returns the level registered under the given name.
func Get(name string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	lv, ok := levels[name]
	if !ok {
		return Level{}, fmt.Errorf("levelgen: unknown level %q", name)
	}
	return lv, nil
}

// Exists checks if a level with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[name]
	return ok
}

func init() {
	Register(Level{
		Name:        "intro",
		Description: "Hand-authored first level: four walls, six baddies",
		Fixed:       true,
	})
	Register(Level{
		Name:        "classic",
		Description: "Standard procedural layout",
		Params:      Params{BaseSize: 1000, Sparsity: 10, WallPercent: 25, BaddieSpeed: 600, MaxSpin: 120},
	})
	Register(Level{
		Name:        "dense",
		Description: "Tighter spacing, smaller objects",
		Params:      Params{BaseSize: 800, Sparsity: 8, WallPercent: 25, BaddieSpeed: 600, MaxSpin: 120},
	})
	Register(Level{
		Name:        "stress",
		Description: "Small, densely packed objects for load testing",
		Params:      Params{BaseSize: 100, Sparsity: 5, WallPercent: 20, BaddieSpeed: 600, MaxSpin: 120},
	})
	Register(Level{
		Name:        "stress-extreme",
		Description: "Tiny objects, maximum entity count",
		Params:      Params{BaseSize: 20, Sparsity: 5, WallPercent: 20, BaddieSpeed: 600, MaxSpin: 120},
	})
}
