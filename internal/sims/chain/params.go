package chain

import (
	"strconv"

	"chain-ca/internal/core"
)

// Parameters reports configuration alongside live population and cascade
// counters.
func (r *Reactor) Parameters() core.ParameterSnapshot {
	census := r.Census()
	stats := r.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Size", r.cfg.Size),
				int64Param("seed", "Seed", r.seed),
				floatParam("atom_chance", "Atom chance", r.cfg.AtomChance),
				intParam("seed_strikes", "Seed strikes", r.cfg.SeedStrikes),
			},
			Summary: "Applied on reset",
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("atoms", "Atoms", census.Atoms),
				intParam("neutrons", "Neutrons", census.Neutrons),
				intParam("empty", "Empty", census.Empty),
			},
		},
		{
			Name: "Cascade",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", stats.Ticks),
				intParam("reactions", "Reactions", stats.Reactions),
				intParam("emissions", "Emissions", stats.Emissions),
				intParam("lost", "Lost off edge", stats.Lost+stats.Escaped),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (r *Reactor) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "atom_chance", Label: "Atom chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "seed_strikes", Label: "Seed strikes", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float parameter; it takes effect on the next Reset.
func (r *Reactor) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "atom_chance":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		r.cfg.AtomChance = value
		return true
	}
	return false
}

// SetIntParameter updates an int parameter; it takes effect on the next Reset.
func (r *Reactor) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed_strikes":
		if value < 0 {
			value = 0
		}
		r.cfg.SeedStrikes = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
