package chain

import "sync"

// Sample is the board population after one tick.
type Sample struct {
	Tick      int
	Atoms     int
	Neutrons  int
	Reactions int
}

// CascadeResult captures telemetry from a deterministic run.
type CascadeResult struct {
	Config Config
	// InitialAtoms counts atoms on the freshly built board, before the seed
	// strikes fire.
	InitialAtoms int
	// Consumed counts atoms that reacted during the run.
	Consumed int
	// PeakNeutrons tracks the maximum number of neutrons present after any tick.
	PeakNeutrons int
	PeakTick     int
	// LastActiveTick is the last tick that ended with neutrons on the board.
	LastActiveTick int
	// TicksSimulated stops short of the requested count once the board
	// runs out of neutrons, since nothing but a trigger can restart it.
	TicksSimulated int
	Stats          Stats
	Trace          []Sample
}

// BurnFraction reports the share of initial atoms that reacted.
func (r CascadeResult) BurnFraction() float64 {
	if r.InitialAtoms == 0 {
		return 0
	}
	return float64(r.Consumed) / float64(r.InitialAtoms)
}

// RunCascade builds a board from cfg, fires its seed strikes and advances it
// for up to ticks steps. The trace is recorded when trace is true.
func RunCascade(cfg Config, ticks int, trace bool) CascadeResult {
	seedless := cfg
	seedless.SeedStrikes = 0
	r := NewReactor(seedless)
	res := CascadeResult{Config: cfg, InitialAtoms: r.Census().Atoms}
	if n := r.grid.Len(); n > 0 {
		for i := 0; i < cfg.SeedStrikes; i++ {
			r.grid.Trigger(CellID(r.rng.IntN(n)))
		}
	}

	census := r.Census()
	if trace {
		res.Trace = append(res.Trace, Sample{Atoms: census.Atoms, Neutrons: census.Neutrons})
	}
	for tick := 1; tick <= ticks && census.Neutrons > 0; tick++ {
		r.grid.Step()
		census = r.Census()
		res.TicksSimulated = tick
		if census.Neutrons > res.PeakNeutrons {
			res.PeakNeutrons = census.Neutrons
			res.PeakTick = tick
		}
		if census.Neutrons > 0 {
			res.LastActiveTick = tick
		}
		if trace {
			res.Trace = append(res.Trace, Sample{
				Tick:      tick,
				Atoms:     census.Atoms,
				Neutrons:  census.Neutrons,
				Reactions: r.grid.Stats().Reactions,
			})
		}
	}
	res.Stats = r.grid.Stats()
	res.Consumed = res.Stats.Reactions
	return res
}

// Sweep runs every configuration on up to workers goroutines. Each run owns
// its board; results are returned in input order.
func Sweep(cfgs []Config, ticks, workers int, trace bool) []CascadeResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]CascadeResult, len(cfgs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for idx, cfg := range cfgs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c Config) {
			defer wg.Done()
			results[i] = RunCascade(c, ticks, trace)
			<-sem
		}(idx, cfg)
	}
	wg.Wait()
	return results
}
