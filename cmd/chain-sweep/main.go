package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"chain-ca/internal/record"
	"chain-ca/internal/sims/chain"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func main() {
	size := flag.Int("size", 120, "board side; the board holds (size-1)^2 cells")
	seeds := flag.Int("seeds", 8, "seeds per density")
	baseSeed := flag.Int64("seed", 1, "first seed")
	densities := flag.String("densities", "0.05,0.1,0.2,0.3,0.4,0.5", "comma-separated atom chances")
	strikes := flag.Int("strikes", 1, "seed strikes per run")
	ticks := flag.Int("ticks", 2000, "maximum ticks per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "", "directory for plots and video (empty disables artifacts)")
	video := flag.Bool("video", false, "record the best run as MJPEG AVI (requires -out)")
	videoScale := flag.Int("video-scale", 3, "pixels per cell in the recording")
	flag.Parse()

	chances, err := parseChances(*densities)
	if err != nil {
		log.Fatalf("densities: %v", err)
	}

	base := chain.DefaultConfig()
	base.Size = *size
	base.SeedStrikes = *strikes
	var cfgs []chain.Config
	for _, p := range chances {
		for i := 0; i < *seeds; i++ {
			cfg := base
			cfg.AtomChance = p
			cfg.Seed = *baseSeed + int64(i)
			cfgs = append(cfgs, cfg)
		}
	}

	fmt.Printf("Sweeping %d runs (%d densities x %d seeds, %d workers, %d ticks)\n",
		len(cfgs), len(chances), *seeds, *workers, *ticks)

	start := time.Now()
	results := chain.Sweep(cfgs, *ticks, *workers, *out != "")
	elapsed := time.Since(start)

	fmt.Printf("\nBy density (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, p := range chances {
		var burn, life float64
		var n int
		for _, res := range results {
			if res.Config.AtomChance != p {
				continue
			}
			burn += res.BurnFraction()
			life += float64(res.LastActiveTick)
			n++
		}
		fmt.Printf("  p=%.3f  burned=%5.1f%%  lifetime=%7.1f ticks\n", p, 100*burn/float64(n), life/float64(n))
	}

	ranked := append([]chain.CascadeResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].BurnFraction() > ranked[j].BurnFraction() })
	fmt.Printf("\nTop 5 runs:\n")
	for i := 0; i < len(ranked) && i < 5; i++ {
		res := ranked[i]
		fmt.Printf("%2d) p=%.3f seed=%d burned=%d/%d peak=%d@%d last=%d lost=%d\n",
			i+1, res.Config.AtomChance, res.Config.Seed, res.Consumed, res.InitialAtoms,
			res.PeakNeutrons, res.PeakTick, res.LastActiveTick, res.Stats.Lost+res.Stats.Escaped)
	}

	if *out == "" {
		return
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("output dir: %v", err)
	}
	runID := uuid.New().String()

	neutrons, atoms := traces(results, chances)
	if err := writePlot(filepath.Join(*out, runID+"-neutrons.png"), "Neutrons on board", "neutrons", neutrons); err != nil {
		log.Printf("neutron plot: %v", err)
	}
	if err := writePlot(filepath.Join(*out, runID+"-atoms.png"), "Atoms remaining", "atoms", atoms); err != nil {
		log.Printf("atom plot: %v", err)
	}

	if *video && len(ranked) > 0 {
		path := filepath.Join(*out, runID+"-best.avi")
		frames, err := recordRun(path, ranked[0].Config, *ticks, *videoScale)
		if err != nil {
			log.Fatalf("video: %v", err)
		}
		fmt.Printf("\nRecorded %d frames to %s\n", frames, path)
	}
	fmt.Printf("\nArtifacts written to %s (run %s)\n", *out, runID)
}

func parseChances(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%v outside [0,1]", p)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities in %q", s)
	}
	return out, nil
}

var lineColors = []drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	{R: 0x94, G: 0x67, B: 0xbd, A: 255},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 255},
}

// traces picks the first run of each density and turns its samples into
// neutron and atom series.
func traces(results []chain.CascadeResult, chances []float64) (neutrons, atoms []record.Series) {
	for i, p := range chances {
		for _, res := range results {
			if res.Config.AtomChance != p || len(res.Trace) < 2 {
				continue
			}
			x := make([]float64, len(res.Trace))
			n := make([]int, len(res.Trace))
			a := make([]int, len(res.Trace))
			for j, s := range res.Trace {
				x[j] = float64(s.Tick)
				n[j] = s.Neutrons
				a[j] = s.Atoms
			}
			name := fmt.Sprintf("p=%.2f seed=%d", p, res.Config.Seed)
			col := lineColors[i%len(lineColors)]
			neutrons = append(neutrons, record.Series{Name: name, Color: col, X: x, Y: record.Ints(n)})
			atoms = append(atoms, record.Series{Name: name, Color: col, X: x, Y: record.Ints(a)})
			break
		}
	}
	return neutrons, atoms
}

func writePlot(path, title, ylabel string, series []record.Series) error {
	if len(series) == 0 {
		return record.ErrTooFewPoints
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	plot := record.Plot{Title: title, XLabel: "tick", YLabel: ylabel, Width: 1024, Height: 480, Series: series}
	if err := plot.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// recordRun replays cfg and writes one frame per tick until the cascade
// dies out or ticks is reached.
func recordRun(path string, cfg chain.Config, ticks, scale int) (int, error) {
	r := chain.NewReactor(cfg)
	size := r.Size()
	v, err := record.NewVideo(path, size.W, size.H, scale, 20, r.Palette())
	if err != nil {
		return 0, err
	}
	if err := v.AddFrame(r.Cells()); err != nil {
		v.Close()
		return 0, err
	}
	for tick := 0; tick < ticks && r.Census().Neutrons > 0; tick++ {
		r.Step()
		if err := v.AddFrame(r.Cells()); err != nil {
			v.Close()
			return v.Frames(), err
		}
	}
	return v.Frames(), v.Close()
}
