package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkurilin/cannonade/internal/collision"
	"github.com/vkurilin/cannonade/internal/config"
	"github.com/vkurilin/cannonade/internal/levelgen"
	"github.com/vkurilin/cannonade/internal/world"
)

var (
	flagTicks    int
	flagAutofire bool
)

var runCmd = &cobra.Command{
	Use:   "run [preset]",
	Short: "Run a headless simulation",
	Long: `Run the simulation for a fixed number of ticks and report collision
statistics. The preset argument overrides the configured level preset.

Examples:
  cannonade run
  cannonade run stress --ticks 1000
  cannonade run classic --seed 7 --workers 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of simulation ticks")
	runCmd.Flags().BoolVar(&flagAutofire, "autofire", false, "Fire a bullet from the cannon every half second")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := newLogger("cannonade")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if len(args) > 0 {
		cfg.Level.Preset = args[0]
	}

	w, lv, err := buildWorld(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cannonade levels' to see available presets.")
		os.Exit(1)
	}

	eng := collision.NewEngine(collision.Config{
		CellSize: cfg.Grid.CellSize,
		Epsilon:  cfg.Narrow.Epsilon,
		Workers:  cfg.Workers,
	}, logger)

	logger.Info("simulation starting",
		"preset", lv.Name,
		"seed", cfg.Level.Seed,
		"entities", len(w.Entities()),
		"workers", eng.Workers(),
		"ticks", flagTicks,
	)

	const dt = 1.0 / 60.0
	var (
		totalContacts int64
		fireAngle     float64
		ticksRun      int
	)
	start := time.Now()

	for tick := 0; tick < flagTicks; tick++ {
		ticksRun = tick + 1

		if flagAutofire && tick%30 == 0 {
			w.Fire(fireAngle)
			fireAngle = math.Mod(fireAngle+0.35, 2*math.Pi)
		}

		contacts := eng.Detect(w.Snapshot())
		totalContacts += int64(len(contacts))
		w.Resolve(contacts)

		if w.GameOver() {
			logger.Info("cannon destroyed", "tick", tick)
			break
		}
		w.Step(dt)
	}

	elapsed := time.Since(start)
	logger.Info("simulation finished",
		"ticks", ticksRun,
		"entities", len(w.Entities()),
		"baddies", w.Count(world.KindBaddie),
		"contacts", totalContacts,
		"elapsed", elapsed.Round(time.Millisecond),
		"game_over", w.GameOver(),
	)
}

// buildWorld creates a world populated from the configured level preset.
func buildWorld(cfg config.Config) (*world.World, levelgen.Level, error) {
	lv, err := levelgen.Get(cfg.Level.Preset)
	if err != nil {
		return nil, levelgen.Level{}, err
	}
	w := world.New(cfg.World.Width, cfg.World.Height)
	levelgen.Populate(w, lv, cfg.Level.Seed)
	return w, lv, nil
}
