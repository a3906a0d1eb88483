package scene

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/hecs/ecs"
)

// Engine drives a scene with an ecs.Scheduler. Every frame runs three systems
// in order: queued events are dispatched to the event handlers, OnUpdate is
// propagated from the root, and the scene is drawn. Further systems added
// with Register run after drawing.
type Engine struct {
	scene     *Scene
	scheduler *ecs.Scheduler

	initOnce sync.Once

	mu     sync.Mutex
	events []Event
}

// NewEngine wires the frame loop for a scene and a renderer.
func NewEngine(s *Scene, r Renderer) *Engine {
	e := &Engine{
		scene:     s,
		scheduler: ecs.NewScheduler(s.World()),
	}
	e.scheduler.Register(&eventSystem{engine: e})
	e.scheduler.Register(&updateSystem{})
	e.scheduler.Register(&drawSystem{scene: s, renderer: r})
	return e
}

// Init propagates OnInit from the root. Only the first call has an effect;
// Step and Run call it implicitly.
func (e *Engine) Init() {
	e.initOnce.Do(func() {
		e.scene.Root().OnInit()
	})
}

// Push queues an event for the next frame. It is safe to call from any
// goroutine.
func (e *Engine) Push(ev Event) {
	e.mu.Lock()
	e.events = append(e.events, ev)
	e.mu.Unlock()
}

func (e *Engine) drain() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	events := e.events
	e.events = nil
	return events
}

// Register adds a system that runs after drawing.
func (e *Engine) Register(system ecs.System) {
	e.scheduler.Register(system)
}

// Step runs a single frame.
func (e *Engine) Step(dt float64) {
	e.Init()
	e.scheduler.Once(dt)
}

// Run steps at the given interval until the context is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	e.Init()
	e.scheduler.Run(ctx, interval)
}

func (e *Engine) Scene() *Scene { return e.scene }

func (e *Engine) Scheduler() *ecs.Scheduler { return e.scheduler }

func (e *Engine) Stats() *ecs.SchedulerStats {
	return e.scheduler.GetStats()
}

type eventSystem struct {
	engine *Engine
}

func (s *eventSystem) Execute(frame *ecs.UpdateFrame) {
	root := frame.World.Root()
	for _, ev := range s.engine.drain() {
		HandleEvents(root, ev)
	}
}

type updateSystem struct{}

func (s *updateSystem) Execute(frame *ecs.UpdateFrame) {
	frame.World.Root().OnUpdate()
}

type drawSystem struct {
	scene    *Scene
	renderer Renderer
}

func (s *drawSystem) Execute(frame *ecs.UpdateFrame) {
	s.scene.Draw(s.renderer)
}
