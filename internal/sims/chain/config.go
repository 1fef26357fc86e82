package chain

import "strconv"

// Config controls board construction for the chain reaction sim.
type Config struct {
	// Size is the reference board side; the board holds (Size-1)² cells.
	Size int
	Seed int64

	AtomChance  float64
	SeedStrikes int

	// AtomsOnly restricts TriggerAt to cells that currently hold an atom.
	AtomsOnly bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:        180,
		Seed:        42,
		AtomChance:  0.1,
		SeedStrikes: 1,
		AtomsOnly:   true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["atom_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AtomChance = parsed
		}
	}
	if v, ok := cfg["seed_strikes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedStrikes = parsed
		}
	}
	if v, ok := cfg["atoms_only"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AtomsOnly = parsed
		}
	}
	return c
}
