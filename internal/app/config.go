package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the driver parameters shared by the GUI and terminal
// front ends. Precedence is flags, then environment, then .env, then defaults.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Size        int
	AtomChance  float64
	SeedStrikes int

	HUDWidth int
	Mute     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "chain",
		Scale:       4,
		TPS:         20,
		Seed:        42,
		Size:        180,
		AtomChance:  0.1,
		SeedStrikes: 1,
		HUDWidth:    220,
	}
}

// LoadEnv applies CHAIN_* variables. Values already in the process
// environment win over those read from files; a missing file is not an error.
// With no files given ".env" is tried.
func (c *Config) LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	dotenv := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := dotenv[k]; !ok {
				dotenv[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	var errs []error
	if v, ok := lookup("CHAIN_SIM"); ok && v != "" {
		c.Sim = v
	}
	errs = append(errs,
		envInt(lookup, "CHAIN_SCALE", &c.Scale),
		envInt(lookup, "CHAIN_TPS", &c.TPS),
		envInt(lookup, "CHAIN_SIZE", &c.Size),
		envInt(lookup, "CHAIN_SEED_STRIKES", &c.SeedStrikes),
		envInt(lookup, "CHAIN_HUD_WIDTH", &c.HUDWidth),
	)
	if v, ok := lookup("CHAIN_SEED"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHAIN_SEED: %w", err))
		} else {
			c.Seed = parsed
		}
	}
	if v, ok := lookup("CHAIN_ATOM_CHANCE"); ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHAIN_ATOM_CHANCE: %w", err))
		} else {
			c.AtomChance = parsed
		}
	}
	if v, ok := lookup("CHAIN_MUTE"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHAIN_MUTE: %w", err))
		} else {
			c.Mute = parsed
		}
	}
	return errors.Join(errs...)
}

func envInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = parsed
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "board side; the board holds (size-1)^2 cells")
	fs.Float64Var(&c.AtomChance, "atom-chance", c.AtomChance, "probability that a cell starts as an atom")
	fs.IntVar(&c.SeedStrikes, "seed-strikes", c.SeedStrikes, "random cells triggered on reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable Geiger clicks")
}

// SimOptions renders the sim-specific values in FromMap form.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":         strconv.Itoa(c.Size),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"atom_chance":  strconv.FormatFloat(c.AtomChance, 'f', -1, 64),
		"seed_strikes": strconv.Itoa(c.SeedStrikes),
	}
}

// Interval is the tick period implied by TPS.
func (c *Config) Interval() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 20
	}
	return time.Second / time.Duration(c.TPS)
}
