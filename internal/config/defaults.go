package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			CellSize: 1000,
		},
		Narrow: NarrowConfig{
			Epsilon: 1e-9,
		},
		Workers: 0,
		World: WorldConfig{
			Width:  10000,
			Height: 10000,
		},
		Level: LevelConfig{
			Preset: "classic",
			Seed:   1,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
