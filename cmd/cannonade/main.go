// cannonade is a headless collision-detection engine for a 2D arcade
// shooter: convex hulls on a spatial hash, tested pair-by-pair with the
// separating axis theorem across a pool of workers.
//
// Usage:
//
//	cannonade run [preset]       - Run a headless simulation
//	cannonade bench [preset]     - Benchmark the engine across worker counts
//	cannonade levels             - List available level presets
//	cannonade results [preset]   - Show stored benchmark results
//
// Global flags:
//
//	--config <path>  - Explicit config file (default: search standard paths)
//	--seed <value>   - Level generation seed (0 = use config)
//	--workers <n>    - Narrow-phase workers (0 = use config)
//	--db <path>      - Benchmark database path (default: ~/.cannonade/bench.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vkurilin/cannonade/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    uint64
	flagWorkers int
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannonade",
	Short: "Cannonade - headless arcade collision engine",
	Long: `Cannonade simulates a 2D arcade shooter world and detects collisions
between its entities each tick: a spatial-hash broad phase feeds candidate
pairs to a parallel separating-axis narrow phase.

Available commands:
  run      - Run a headless simulation for a number of ticks
  bench    - Benchmark the engine across worker counts
  levels   - Show all registered level presets
  results  - View stored benchmark results

Examples:
  cannonade run classic
  cannonade run stress --seed 42 --ticks 1000
  cannonade bench stress-extreme
  cannonade levels
  cannonade results stress`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: search standard paths)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Level generation seed (0 = use config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Narrow-phase worker count (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cannonade/bench.db", "Path to benchmark database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resultsCmd)
}

// newLogger builds the standard CLI logger.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// loadConfig loads the engine config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Level.Seed = flagSeed
	}
	if flagWorkers != 0 {
		cfg.Workers = flagWorkers
	}
	return cfg, nil
}
