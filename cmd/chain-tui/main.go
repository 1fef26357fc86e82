package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"chain-ca/internal/app"
	"chain-ca/internal/audio"
	"chain-ca/internal/core"
	"chain-ca/internal/render"
	"chain-ca/internal/sims/chain"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 64
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
	session := app.NewSession(sim, cfg.Seed)

	var player *audio.Player
	if !cfg.Mute {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			player = nil
		} else {
			defer player.Cleanup()
			session.OnReactions = player.Click
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var palette []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	painter := render.NewTerminalPainter(palette)
	painter.OffsetY = 1

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	clock := core.NewFixedInterval(cfg.Interval())
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, session, painter, player, screen) {
				return
			}
		case <-frame.C:
			session.Advance(clock.ShouldStep())
			draw(screen, session, painter, player)
		}
	}
}

// handleEvent applies one input event. It returns false when the driver
// should exit.
func handleEvent(ev tcell.Event, s *app.Session, painter *render.TerminalPainter, player *audio.Player, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			s.Resume()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.TogglePause()
			case 'n':
				s.StepOnce()
			case 'r':
				s.Reset(s.Seed())
			case 's':
				s.Reseed()
			case 'm':
				if player != nil {
					player.SetMuted(!player.Muted())
				}
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		size := s.Sim().Size()
		mx, my := ev.Position()
		if x, y, ok := painter.CellAt(mx, my, size.W, size.H); ok {
			// Clicks on cells without an atom are ignored.
			_ = s.Trigger(x, y)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

func draw(screen tcell.Screen, s *app.Session, painter *render.TerminalPainter, player *audio.Player) {
	sim := s.Sim()
	size := sim.Size()
	screen.Clear()
	painter.Draw(screen, sim.Cells(), size.W, size.H)

	status := statusLine(s, player)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	for i, r := range status {
		screen.SetContent(i, 0, r, nil, style)
	}
	screen.Show()
}

func statusLine(s *app.Session, player *audio.Player) string {
	line := fmt.Sprintf(" seed %d", s.Seed())
	if r, ok := s.Sim().(*chain.Reactor); ok {
		c := r.Census()
		st := r.Stats()
		line += fmt.Sprintf("  tick %d  atoms %d  neutrons %d  reactions %d", st.Ticks, c.Atoms, c.Neutrons, st.Reactions)
	}
	if s.Paused() {
		line += "  [paused]"
	}
	if player != nil && player.Muted() {
		line += "  [muted]"
	}
	return line + "  | space pause  n step  r reset  s reseed  m mute  q quit "
}
