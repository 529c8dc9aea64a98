// Package config loads game settings from defaults, an optional TOML file, and command-line flags
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// ErrUnknownKey is returned when a config file names a key the game does not read
var ErrUnknownKey = errors.New("unknown config key")

// Settings is the [settings] table
type Settings struct {
	OverallDelay int `toml:"overall_delay"`
	AlienDivisor int `toml:"alien_divisor"`
	ShotDivisor  int `toml:"shot_divisor"`
	BombDivisor  int `toml:"bomb_divisor"`
	BombChance   int `toml:"bomb_chance"`
}

// Fleet is the [fleet] table
type Fleet struct {
	Count        int `toml:"count"`
	Rows         int `toml:"rows"`
	BombCapacity int `toml:"bomb_capacity"`
}

// Config is the full startup configuration
type Config struct {
	// Seed for the behavior RNG; 0 seeds from the clock
	Seed     uint64   `toml:"seed"`
	Settings Settings `toml:"settings"`
	Fleet    Fleet    `toml:"fleet"`
}

// Default returns the compiled-in configuration
func Default() Config {
	s := engine.DefaultSettings()
	f := engine.DefaultFleetLayout()
	return Config{
		Settings: Settings{
			OverallDelay: s.OverallDelay,
			AlienDivisor: s.AlienDivisor,
			ShotDivisor:  s.ShotDivisor,
			BombDivisor:  s.BombDivisor,
			BombChance:   s.BombChance,
		},
		Fleet: Fleet{
			Count:        f.Count,
			Rows:         f.Rows,
			BombCapacity: constants.DefaultBombCapacity,
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// EngineSettings converts the [settings] table
func (c Config) EngineSettings() engine.Settings {
	return engine.Settings{
		OverallDelay: c.Settings.OverallDelay,
		AlienDivisor: c.Settings.AlienDivisor,
		ShotDivisor:  c.Settings.ShotDivisor,
		BombDivisor:  c.Settings.BombDivisor,
		BombChance:   c.Settings.BombChance,
	}
}

// Layout converts the fleet shape
func (c Config) Layout() engine.FleetLayout {
	return engine.FleetLayout{Count: c.Fleet.Count, Rows: c.Fleet.Rows}
}

// Validate applies the same range rules as the in-game menu
func (c Config) Validate() error {
	if err := c.EngineSettings().Validate(); err != nil {
		return err
	}
	if err := c.Layout().Validate(); err != nil {
		return err
	}
	if c.Fleet.BombCapacity < 1 || c.Fleet.BombCapacity > constants.MaxBombCapacity {
		return fmt.Errorf("%w: bomb_capacity must be in 1..%d, got %d",
			engine.ErrInvalidSetting, constants.MaxBombCapacity, c.Fleet.BombCapacity)
	}
	return nil
}

// WorldConfig builds the engine configuration for a board
func (c Config) WorldConfig(board engine.Board) engine.WorldConfig {
	return engine.WorldConfig{
		Board:        board,
		Settings:     c.EngineSettings(),
		Fleet:        c.Layout(),
		BombCapacity: c.Fleet.BombCapacity,
	}
}

// SeedAt returns the configured seed, or one derived from now when unset
func (c Config) SeedAt(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
