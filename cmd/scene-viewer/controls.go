package main

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/render"
	"github.com/plus3/hecs/scene"
)

const (
	moveSpeed = 8   // units per second
	turnSpeed = 1.2 // radians per second
)

var moveKeys = map[ebiten.Key]mgl32.Vec3{
	ebiten.KeyW:         {0, 0, -1},
	ebiten.KeyS:         {0, 0, 1},
	ebiten.KeyA:         {-1, 0, 0},
	ebiten.KeyD:         {1, 0, 0},
	ebiten.KeySpace:     {0, 1, 0},
	ebiten.KeyShiftLeft: {0, -1, 0},
}

var turnKeys = map[ebiten.Key]mgl32.Vec3{
	ebiten.KeyArrowLeft:  {0, 1, 0},
	ebiten.KeyArrowRight: {0, -1, 0},
	ebiten.KeyArrowUp:    {1, 0, 0},
	ebiten.KeyArrowDown:  {-1, 0, 0},
}

// rigController is both the event handler attached to the camera rig and
// the system that moves it. Held keys are tracked from key events and
// applied once per frame.
type rigController struct {
	rig    *ecs.Entity
	camera *scene.Camera

	mu   sync.Mutex
	held map[ebiten.Key]bool
	zoom float32
}

func newRigController(rig *ecs.Entity, camera *scene.Camera) *rigController {
	return &rigController{rig: rig, camera: camera, held: map[ebiten.Key]bool{}}
}

func (c *rigController) Handle(ev scene.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case render.KeyEvent:
		c.held[ev.Key] = ev.Pressed
	case render.WheelEvent:
		c.zoom += float32(ev.DY)
	}
}

func (c *rigController) Execute(frame *ecs.UpdateFrame) {
	c.mu.Lock()
	var move, turn mgl32.Vec3
	for k, down := range c.held {
		if !down {
			continue
		}
		move = move.Add(moveKeys[k])
		turn = turn.Add(turnKeys[k])
	}
	zoom := c.zoom
	c.zoom = 0
	c.mu.Unlock()

	dt := float32(frame.DeltaTime)
	if t, ok := ecs.GetFirst[*ecs.Transform](c.rig, ecs.KindTransform); ok && (move.Len() > 0 || turn.Len() > 0) {
		t.Update(func(d *ecs.TransformData) {
			yaw := mgl32.Rotate3DY(d.Rotation.Y())
			d.Position = d.Position.Add(yaw.Mul3x1(move).Mul(moveSpeed * dt))
			d.Rotation = d.Rotation.Add(turn.Mul(turnSpeed * dt))
		})
	}
	if zoom != 0 {
		c.camera.SetFov(mgl32.Clamp(c.camera.Fov()-zoom*2, 20, 100))
	}
}
