// Package config loads the engine's tunable parameters from a TOML
// file, falling back to the spec's built-in defaults for anything the
// file omits or when no file is given at all.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/akalverboer/mad100go/internal/engine"
)

// Strategy names the search strategy the CLI drives by default.
type Strategy string

const (
	MTDBi           Strategy = "mtdbi"
	ForcedVariation Strategy = "forced"
	AlphaBeta       Strategy = "alphabeta"
)

// Config holds every value a user might want to override without
// recompiling the engine.
type Config struct {
	MaxNodes         int      `toml:"max_nodes"`
	TableSize        int      `toml:"table_size"`
	AspirationWindow int      `toml:"aspiration_window"`
	DefaultStrategy  Strategy `toml:"default_strategy"`
	BookPath         string   `toml:"book_path"`
}

// Default returns the spec's built-in tunables.
func Default() Config {
	return Config{
		MaxNodes:         engine.DefaultMaxNodes,
		TableSize:        engine.DefaultTableSize,
		AspirationWindow: engine.DefaultAspirationWindow,
		DefaultStrategy:  MTDBi,
		BookPath:         "",
	}
}

// Load reads path as TOML into a Config seeded with Default, so a
// partial file only overrides the fields it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
