// Package scene provides the concrete components of a 3D scene graph built on
// package ecs, together with the frame loop that drives them: event dispatch,
// per-frame update propagation and drawing through a Renderer.
package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// Scene binds a world to the active camera and the background colour.
type Scene struct {
	world *ecs.World

	mu         sync.RWMutex
	camera     *Camera
	background mgl32.Vec4
}

// New creates a scene. The camera may be nil, in which case nothing is drawn
// until one is set.
func New(world *ecs.World, camera *Camera, background mgl32.Vec4) *Scene {
	return &Scene{
		world:      world,
		camera:     camera,
		background: background,
	}
}

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Root() *ecs.Entity { return s.world.Root() }

func (s *Scene) Camera() *Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera
}

func (s *Scene) SetCamera(c *Camera) {
	s.mu.Lock()
	s.camera = c
	s.mu.Unlock()
}

func (s *Scene) Background() mgl32.Vec4 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

func (s *Scene) SetBackground(bg mgl32.Vec4) {
	s.mu.Lock()
	s.background = bg
	s.mu.Unlock()
}

// Lights collects every light in the scene.
func (s *Scene) Lights() []*Light {
	return Lights(s.Root())
}

// CameraView snapshots the active camera. It reports false without one.
func (s *Scene) CameraView() (View, bool) {
	c := s.Camera()
	if c == nil {
		return View{}, false
	}
	return c.View(), true
}

// Draw runs one full draw pass: Begin with the background, every model, End.
func (s *Scene) Draw(r Renderer) {
	r.Begin(Frame{Background: s.Background()})
	DrawEntities(s.Root(), s.Camera(), s.Lights(), r)
	r.End()
}
