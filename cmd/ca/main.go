//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"chain-ca/internal/app"
	"chain-ca/internal/audio"
	"chain-ca/internal/core"
	_ "chain-ca/internal/sims/chain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	if !cfg.Mute {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Cleanup()
			game.Session().OnReactions = player.Click
		}
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(app.Title(sim))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
