package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkurilin/cannonade/internal/collision"
	"github.com/vkurilin/cannonade/internal/config"
	"github.com/vkurilin/cannonade/internal/storage"
)

var (
	flagBenchTicks int
	flagNoSave     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [preset]",
	Short: "Benchmark the engine across worker counts",
	Long: `Run the same simulation at doubling worker counts (1, 2, 4, ...) up to
the number of CPUs, measure the wall time of each run, and record the
results in the benchmark database.

Examples:
  cannonade bench
  cannonade bench stress-extreme --ticks 200
  cannonade bench stress --no-save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 100, "Ticks per benchmark run")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
}

func runBench(cmd *cobra.Command, args []string) {
	logger := newLogger("cannonade-bench")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	cfg.Level.Preset = "stress"
	if len(args) > 0 {
		cfg.Level.Preset = args[0]
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open benchmark database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}

	fmt.Printf("Benchmark - %s (seed %d, %d ticks per run)\n", cfg.Level.Preset, cfg.Level.Seed, flagBenchTicks)
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-10s  %s\n", "Workers", "Entities", "Contacts", "Duration")
	fmt.Printf("  %-8s  %-10s  %-10s  %s\n", "-------", "--------", "--------", "--------")

	var best *storage.BenchRun
	for workers := 1; workers <= runtime.NumCPU(); workers *= 2 {
		run, err := benchOnce(cfg, workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("  %-8d  %-10d  %-10d  %dms\n",
			run.Workers, run.Entities, run.Contacts, run.DurationMS)

		if store != nil {
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save benchmark run", "error", err)
			}
		}
		if best == nil || run.DurationMS < best.DurationMS {
			r := run
			best = &r
		}
	}

	fmt.Println()
	if best != nil {
		fmt.Printf("Best: %dms with %d workers\n", best.DurationMS, best.Workers)
	}
}

// benchOnce runs one timed simulation with a fixed worker count. Each run
// rebuilds the world from the same seed so the workloads are identical.
func benchOnce(cfg config.Config, workers int) (storage.BenchRun, error) {
	w, lv, err := buildWorld(cfg)
	if err != nil {
		return storage.BenchRun{}, err
	}

	eng := collision.NewEngine(collision.Config{
		CellSize: cfg.Grid.CellSize,
		Epsilon:  cfg.Narrow.Epsilon,
		Workers:  workers,
	}, nil)

	const dt = 1.0 / 60.0
	entities := len(w.Entities())
	var contacts int64

	start := time.Now()
	for tick := 0; tick < flagBenchTicks; tick++ {
		cs := eng.Detect(w.Snapshot())
		contacts += int64(len(cs))
		w.Resolve(cs)
		w.Step(dt)
	}
	elapsed := time.Since(start)

	return storage.BenchRun{
		Preset:     lv.Name,
		Seed:       cfg.Level.Seed,
		Entities:   entities,
		Workers:    workers,
		Ticks:      flagBenchTicks,
		Contacts:   contacts,
		DurationMS: elapsed.Milliseconds(),
	}, nil
}
