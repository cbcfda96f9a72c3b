package collision

import (
	"math"

	"github.com/vkurilin/cannonade/internal/geom"
)

// DefaultCellSize is the broad-phase grid cell size in world units, roughly
// twice the largest default entity half-extent.
const DefaultCellSize = 1000.0

// cellKey identifies a grid cell by its integer coordinates. Cells are keyed
// in a map so the world needs no fixed extent.
type cellKey struct {
	X, Y int32
}

// Grid is a spatial hash used as the broad phase. Entities are inserted by
// bounding box into every cell the box touches; candidate pairs are all
// unordered pairs sharing at least one cell, deduplicated.
//
// A Grid is rebuilt from scratch each frame and is not safe for concurrent
// mutation; the engine builds it once per frame before workers start.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cells       map[cellKey][]int32
}

// NewGrid creates a spatial hash with the given cell size.
// Sizes <= 0 fall back to DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[cellKey][]int32),
	}
}

// Clear removes all entries, keeping allocated cell capacity for reuse.
func (g *Grid) Clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
}

// cellRange returns the inclusive cell coordinate span covered by the box.
// A degenerate (zero-area) box still covers its containing cell. A box edge
// sitting exactly on a cell boundary floors into the higher cell, so shapes
// touching a boundary land in both bordering cells via their min/max span.
func (g *Grid) cellRange(b geom.AABB) (minX, minY, maxX, maxY int32) {
	minX = int32(math.Floor(b.Min.X * g.invCellSize))
	minY = int32(math.Floor(b.Min.Y * g.invCellSize))
	maxX = int32(math.Floor(b.Max.X * g.invCellSize))
	maxY = int32(math.Floor(b.Max.Y * g.invCellSize))
	return minX, minY, maxX, maxY
}

// Insert records that the entity at the given snapshot index covers the box.
func (g *Grid) Insert(index int32, b geom.AABB) {
	minX, minY, maxX, maxY := g.cellRange(b)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			k := cellKey{X: cx, Y: cy}
			g.cells[k] = append(g.cells[k], index)
		}
	}
}

// CandidatePairs returns every unordered index pair sharing at least one
// cell, deduplicated across cells. The result is a set: its contents do not
// depend on insertion order.
func (g *Grid) CandidatePairs() map[[2]int32]struct{} {
	pairs := make(map[[2]int32]struct{})
	for _, bucket := range g.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if a > b {
					a, b = b, a
				}
				pairs[[2]int32{a, b}] = struct{}{}
			}
		}
	}
	return pairs
}
