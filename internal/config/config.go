// Package config provides YAML-based configuration for the collision engine
// and simulation tunables.
package config

import "fmt"

// Config contains all engine and simulation tunables.
type Config struct {
	Grid    GridConfig   `yaml:"grid"`
	Narrow  NarrowConfig `yaml:"narrow"`
	Workers int          `yaml:"workers"` // 0 = number of CPUs
	World   WorldConfig  `yaml:"world"`
	Level   LevelConfig  `yaml:"level"`
}

// GridConfig defines broad-phase parameters.
type GridConfig struct {
	// CellSize is the spatial-hash cell size in world units. Should be
	// roughly twice the largest entity half-extent.
	CellSize float64 `yaml:"cell_size"`
}

// NarrowConfig defines narrow-phase parameters.
type NarrowConfig struct {
	// Epsilon is the minimum overlap depth reported as a collision;
	// smaller overlaps are treated as separation to avoid jitter.
	Epsilon float64 `yaml:"epsilon"`
}

// WorldConfig defines the simulation world extent.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LevelConfig selects the level layout and its generation seed.
type LevelConfig struct {
	Preset string `yaml:"preset"`
	Seed   uint64 `yaml:"seed"`
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid.cell_size must be positive, got %v", c.Grid.CellSize)
	}
	if c.Narrow.Epsilon < 0 {
		return fmt.Errorf("config: narrow.epsilon must not be negative, got %v", c.Narrow.Epsilon)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %vx%v",
			c.World.Width, c.World.Height)
	}
	if c.Level.Preset == "" {
		return fmt.Errorf("config: level.preset must not be empty")
	}
	return nil
}
