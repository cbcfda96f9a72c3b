package collision

import (
	"testing"

	"github.com/vkurilin/cannonade/internal/geom"
)

func boxAt(x, y, w, h float64) geom.AABB {
	return geom.AABB{Min: geom.V(x, y), Max: geom.V(x + w, y + h)}
}

func hasPair(pairs map[[2]int32]struct{}, a, b int32) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := pairs[[2]int32{a, b}]
	return ok
}

func TestGridCompleteness(t *testing.T) {
	// Every pair of overlapping boxes must be a candidate, regardless of
	// where the boxes fall relative to cell boundaries.
	boxes := []geom.AABB{
		boxAt(0, 0, 10, 10),     // 0: overlaps 1
		boxAt(5, 5, 10, 10),     // 1: overlaps 0, 2
		boxAt(14, 14, 4, 4),     // 2: overlaps 1
		boxAt(500, 500, 10, 10), // 3: far away, no overlaps
		boxAt(60, 60, 10, 10),   // 4: spans the 64-unit cell boundary, alone
	}

	g := NewGrid(64)
	for i, b := range boxes {
		g.Insert(int32(i), b)
	}
	pairs := g.CandidatePairs()

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) && !hasPair(pairs, int32(i), int32(j)) {
				t.Errorf("missing candidate pair (%d, %d) with overlapping boxes", i, j)
			}
		}
	}

	// The isolated box must not pair with anything
	for i := range boxes {
		if i != 3 && hasPair(pairs, int32(i), 3) {
			t.Errorf("unexpected candidate pair (%d, 3): boxes share no cell", i)
		}
	}
}

func TestGridDeduplication(t *testing.T) {
	// Two large boxes spanning many shared cells yield exactly one pair
	g := NewGrid(10)
	g.Insert(0, boxAt(0, 0, 50, 50))
	g.Insert(1, boxAt(5, 5, 50, 50))

	pairs := g.CandidatePairs()
	if len(pairs) != 1 {
		t.Errorf("len(pairs) = %d, expected 1 (deduplicated)", len(pairs))
	}
	if !hasPair(pairs, 0, 1) {
		t.Error("expected candidate pair (0, 1)")
	}
}

func TestGridBoundaryInclusive(t *testing.T) {
	// Boxes meeting exactly on a cell boundary must share a cell
	g := NewGrid(64)
	g.Insert(0, boxAt(0, 0, 64, 64))  // right edge exactly at x=64
	g.Insert(1, boxAt(64, 0, 64, 64)) // left edge exactly at x=64

	if !hasPair(g.CandidatePairs(), 0, 1) {
		t.Error("boxes touching on a cell boundary must be candidates")
	}
}

func TestGridDegenerateBox(t *testing.T) {
	// A zero-area box still occupies its containing cell
	g := NewGrid(64)
	g.Insert(0, boxAt(32, 32, 0, 0))
	g.Insert(1, boxAt(0, 0, 60, 60))

	if !hasPair(g.CandidatePairs(), 0, 1) {
		t.Error("zero-area box must occupy its containing cell")
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	// Cells are map-keyed: the world has no fixed extent and negative
	// space behaves like positive space
	g := NewGrid(64)
	g.Insert(0, boxAt(-100, -100, 20, 20))
	g.Insert(1, boxAt(-90, -90, 20, 20))
	g.Insert(2, boxAt(100, 100, 20, 20))

	pairs := g.CandidatePairs()
	if !hasPair(pairs, 0, 1) {
		t.Error("expected candidate pair in negative space")
	}
	if hasPair(pairs, 0, 2) || hasPair(pairs, 1, 2) {
		t.Error("unexpected candidate pair across the world")
	}
}

func TestGridClearKeepsNothing(t *testing.T) {
	g := NewGrid(64)
	g.Insert(0, boxAt(0, 0, 10, 10))
	g.Insert(1, boxAt(5, 5, 10, 10))
	g.Clear()

	if pairs := g.CandidatePairs(); len(pairs) != 0 {
		t.Errorf("len(pairs) after Clear() = %d, expected 0", len(pairs))
	}

	// Grid remains usable after clearing
	g.Insert(2, boxAt(0, 0, 10, 10))
	g.Insert(3, boxAt(5, 5, 10, 10))
	if !hasPair(g.CandidatePairs(), 2, 3) {
		t.Error("expected candidate pair after reuse")
	}
}

func TestGridInsertionOrderIndependence(t *testing.T) {
	boxes := []geom.AABB{
		boxAt(0, 0, 30, 30),
		boxAt(20, 20, 30, 30),
		boxAt(40, 40, 30, 30),
		boxAt(200, 0, 30, 30),
	}

	forward := NewGrid(64)
	for i, b := range boxes {
		forward.Insert(int32(i), b)
	}

	backward := NewGrid(64)
	for i := len(boxes) - 1; i >= 0; i-- {
		backward.Insert(int32(i), boxes[i])
	}

	fp := forward.CandidatePairs()
	bp := backward.CandidatePairs()
	if len(fp) != len(bp) {
		t.Fatalf("pair count differs by insertion order: %d vs %d", len(fp), len(bp))
	}
	for p := range fp {
		if _, ok := bp[p]; !ok {
			t.Errorf("pair %v missing from reversed insertion", p)
		}
	}
}
