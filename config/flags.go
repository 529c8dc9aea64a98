package config

import "flag"

// Flags holds command-line overrides registered on a flag set
type Flags struct {
	fs     *flag.FlagSet
	values Config
}

// BindFlags registers one flag per config key on fs.
// Flag defaults mirror the compiled defaults; only flags given explicitly override a loaded file.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, values: Default()}
	v := &f.values

	fs.Uint64Var(&v.Seed, "seed", v.Seed, "Behavior RNG seed (0 = time based)")
	fs.IntVar(&v.Settings.OverallDelay, "overall-delay", v.Settings.OverallDelay, "Sleep per tick in microseconds")
	fs.IntVar(&v.Settings.AlienDivisor, "alien-divisor", v.Settings.AlienDivisor, "Aliens move every N ticks")
	fs.IntVar(&v.Settings.ShotDivisor, "shot-divisor", v.Settings.ShotDivisor, "Shots move every N ticks")
	fs.IntVar(&v.Settings.BombDivisor, "bomb-divisor", v.Settings.BombDivisor, "Bombs move every N ticks")
	fs.IntVar(&v.Settings.BombChance, "bomb-chance", v.Settings.BombChance, "Percent chance of a bomb drop")
	fs.IntVar(&v.Fleet.Count, "aliens", v.Fleet.Count, "Number of aliens")
	fs.IntVar(&v.Fleet.Rows, "alien-rows", v.Fleet.Rows, "Rows the fleet is laid out in")
	fs.IntVar(&v.Fleet.BombCapacity, "bomb-capacity", v.Fleet.BombCapacity, "Maximum bombs in flight")

	return f
}

// Apply copies every explicitly set flag onto cfg and revalidates it
func (f *Flags) Apply(cfg *Config) error {
	v := &f.values
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = v.Seed
		case "overall-delay":
			cfg.Settings.OverallDelay = v.Settings.OverallDelay
		case "alien-divisor":
			cfg.Settings.AlienDivisor = v.Settings.AlienDivisor
		case "shot-divisor":
			cfg.Settings.ShotDivisor = v.Settings.ShotDivisor
		case "bomb-divisor":
			cfg.Settings.BombDivisor = v.Settings.BombDivisor
		case "bomb-chance":
			cfg.Settings.BombChance = v.Settings.BombChance
		case "aliens":
			cfg.Fleet.Count = v.Fleet.Count
		case "alien-rows":
			cfg.Fleet.Rows = v.Fleet.Rows
		case "bomb-capacity":
			cfg.Fleet.BombCapacity = v.Fleet.BombCapacity
		}
	})
	return cfg.Validate()
}

// Resolve loads path and applies the flag overrides on top
func (f *Flags) Resolve(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := f.Apply(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
