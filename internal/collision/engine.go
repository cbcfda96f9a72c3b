package collision

import (
	"io"
	"runtime"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vkurilin/cannonade/internal/geom"
)

// Config holds the engine tunables. Zero CellSize and Workers select
// defaults; see Epsilon for its zero semantics.
type Config struct {
	// CellSize is the broad-phase grid cell size in world units.
	CellSize float64

	// Epsilon is the minimum overlap depth reported as a collision.
	// Zero is honored as exact-zero tolerance; negative values select
	// DefaultEpsilon.
	Epsilon float64

	// Workers is the number of narrow-phase goroutines per frame.
	// 0 means runtime.NumCPU().
	Workers int
}

// Engine runs the per-frame collision pass. It holds only tunables, a
// reusable grid, and a logger; all entity state arrives through the frame
// snapshot and is treated as read-only for the duration of Detect.
type Engine struct {
	cfg    Config
	grid   *Grid
	logger *log.Logger

	// overlap is the narrow-phase test, replaceable in tests
	overlap func(a, b geom.Polygon, eps float64) (geom.Vec, float64, bool)
}

// NewEngine creates an engine with the given tunables.
// A nil logger discards warnings.
func NewEngine(cfg Config, logger *log.Logger) *Engine {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}
	if cfg.Epsilon < 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:     cfg,
		grid:    NewGrid(cfg.CellSize),
		logger:  logger,
		overlap: Overlap,
	}
}

// Workers returns the effective worker count.
func (e *Engine) Workers() int {
	return e.cfg.Workers
}

// Detect runs one frame's collision pass over the snapshot and returns the
// confirmed contacts, sorted by (A, B) id for stable output. The returned
// set is identical for any worker count and any scheduling order.
//
// Degenerate shapes (fewer than 3 vertices, all edges zero-length) are
// excluded with a warning; they never collide and never fail the frame.
func (e *Engine) Detect(snap Snapshot) []Contact {
	// Validate and compute bounding boxes up front. Indices into snap are
	// used throughout so workers share only immutable data.
	valid := make([]int32, 0, len(snap))
	bounds := make([]geom.AABB, len(snap))
	for i := range snap {
		if !Valid(snap[i].Hull) {
			e.logger.Warn("excluding degenerate shape",
				"entity", snap[i].ID,
				"category", snap[i].Category.String(),
				"vertices", len(snap[i].Hull))
			continue
		}
		bounds[i] = snap[i].Hull.Bounds()
		valid = append(valid, int32(i))
	}

	// Broad phase: bucket by bounding box, emit deduplicated candidates.
	e.grid.Clear()
	for _, i := range valid {
		e.grid.Insert(i, bounds[i])
	}
	pairSet := e.grid.CandidatePairs()
	if len(pairSet) == 0 {
		return nil
	}

	// A pre-filter on box overlap keeps the narrow phase off pairs that
	// merely share a cell.
	pairs := make([][2]int32, 0, len(pairSet))
	for p := range pairSet {
		if bounds[p[0]].Overlaps(bounds[p[1]]) {
			pairs = append(pairs, p)
		}
	}
	// Batch contents must not depend on map iteration order: results are a
	// set either way, but sorted input keeps batches reproducible.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	contacts := e.narrowPhase(snap, pairs)

	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].A != contacts[j].A {
			return contacts[i].A < contacts[j].A
		}
		return contacts[i].B < contacts[j].B
	})
	return contacts
}

// narrowPhase tests candidate pairs across the worker pool and merges the
// per-worker results at the join barrier.
func (e *Engine) narrowPhase(snap Snapshot, pairs [][2]int32) []Contact {
	workers := e.cfg.Workers
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers <= 1 {
		return e.testBatch(snap, pairs)
	}

	// The results slice is fully sized before any worker starts, so its
	// header is never written while goroutines index into it.
	batchSize := (len(pairs) + workers - 1) / workers
	numBatches := (len(pairs) + batchSize - 1) / batchSize
	results := make([][]Contact, numBatches)
	var wg sync.WaitGroup

	for slot := 0; slot < numBatches; slot++ {
		start := slot * batchSize
		end := start + batchSize
		if end > len(pairs) {
			end = len(pairs)
		}
		batch := pairs[start:end]

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[slot] = e.testBatch(snap, batch)
		}()
	}
	wg.Wait()

	var merged []Contact
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// testBatch runs the narrow phase over one batch of candidate pairs. Each
// pair is isolated: a panic while testing one pair drops that pair with a
// warning and leaves the rest of the batch intact.
func (e *Engine) testBatch(snap Snapshot, batch [][2]int32) []Contact {
	out := make([]Contact, 0, len(batch))
	for _, p := range batch {
		if c, ok := e.testPair(snap, p[0], p[1]); ok {
			out = append(out, c)
		}
	}
	return out
}

// testPair tests a single candidate pair, converting a panic into a dropped
// pair so one malformed shape cannot abort the frame.
func (e *Engine) testPair(snap Snapshot, i, j int32) (c Contact, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("dropping pair after narrow-phase fault",
				"a", snap[i].ID, "b", snap[j].ID, "panic", r)
			ok = false
		}
	}()

	a, b := &snap[i], &snap[j]
	normal, depth, hit := e.overlap(a.Hull, b.Hull, e.cfg.Epsilon)
	if !hit {
		return Contact{}, false
	}

	// Contacts are reported with the normalized (A < B) orientation so the
	// result set is identical regardless of candidate order.
	if a.ID > b.ID {
		a, b = b, a
		normal = normal.Neg()
	}
	return Contact{
		A:      a.ID,
		B:      b.ID,
		CatA:   a.Category,
		CatB:   b.Category,
		Normal: normal,
		Depth:  depth,
	}, true
}
