package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/internal/demo"
	"github.com/plus3/hecs/scene"
)

// drawCounter is a renderer that only counts models.
type drawCounter struct {
	frame int
	draws int
}

func (c *drawCounter) Begin(scene.Frame) { c.draws = 0 }

func (c *drawCounter) DrawModel(scene.DrawCall) { c.draws++ }

func (c *drawCounter) End() { c.frame++ }

func main() {
	rings := flag.Int("rings", 3, "Rings of cubes in the demo scene.")
	cubes := flag.Int("cubes", 4, "Cubes per ring.")
	lights := flag.Int("lights", 2, "Point lights in the demo scene.")
	tick := flag.Duration("tick", 50*time.Millisecond, "Simulation step interval.")
	flag.Parse()

	world := ecs.NewWorld("root")
	opts := demo.DefaultOptions()
	opts.Rings, opts.Cubes, opts.Lights = *rings, *cubes, *lights
	s, _ := demo.Build(world, opts)

	counter := &drawCounter{}
	engine := scene.NewEngine(s, counter)
	engine.Register(&demo.SpinSystem{})

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	run(screen, engine, counter, *tick)
}

func run(screen tcell.Screen, engine *scene.Engine, counter *drawCounter, tick time.Duration) {
	view := newTreeView(engine.Scene().World())
	paused := false

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	header := func() string {
		state := "running"
		if paused {
			state = "paused"
		}
		return fmt.Sprintf("frame %d  models %d  lights %d  [%s]",
			counter.frame, counter.draws, len(engine.Scene().Lights()), state)
	}

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
					paused = !paused
				} else if !view.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
			view.draw(screen, header())

		case <-ticker.C:
			if !paused {
				engine.Step(tick.Seconds())
			}
			view.draw(screen, header())
		}
	}
}

// pollEvents forwards screen events until done is closed or the screen is
// finalized.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}
