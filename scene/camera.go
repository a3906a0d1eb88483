package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// Camera is a perspective camera placed by its owning entity's transform.
// A camera that is not attached anywhere sits at the origin looking down -Z.
type Camera struct {
	ecs.Base

	mu   sync.RWMutex
	fov  float32
	near float32
	far  float32
}

// NewCamera creates a camera with a vertical field of view in degrees and
// clip planes.
func NewCamera(id string, fov, near, far float32) *Camera {
	c := &Camera{fov: fov, near: near, far: far}
	c.Init(id, ecs.KindCamera)
	return c
}

func (c *Camera) Fov() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fov
}

func (c *Camera) SetFov(fov float32) {
	c.mu.Lock()
	c.fov = fov
	c.mu.Unlock()
}

// Clip returns the near and far plane distances.
func (c *Camera) Clip() (near, far float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.near, c.far
}

func (c *Camera) SetClip(near, far float32) {
	c.mu.Lock()
	c.near, c.far = near, far
	c.mu.Unlock()
}

// View snapshots the camera parameters and its resolved transform.
func (c *Camera) View() View {
	c.mu.RLock()
	v := View{Fov: c.fov, Near: c.near, Far: c.far}
	c.mu.RUnlock()

	v.Transform = ownerTransform(c)
	return v
}

// Projection is shorthand for c.View().Projection(aspect).
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return c.View().Projection(aspect)
}

// View is a per-frame snapshot of a camera.
type View struct {
	Transform ecs.TransformData
	Fov       float32
	Near      float32
	Far       float32
}

// Projection returns the perspective matrix for the given width/height ratio.
func (v View) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(v.Fov), aspect, v.Near, v.Far)
}

// Matrix returns the world-to-camera matrix. The camera looks down its local
// -Z axis with +Y up, rotated by the transform's Euler angles.
func (v View) Matrix() mgl32.Mat4 {
	r := v.Transform.Rotation
	rot := mgl32.HomogRotate3DX(r.X()).
		Mul4(mgl32.HomogRotate3DY(r.Y())).
		Mul4(mgl32.HomogRotate3DZ(r.Z()))

	eye := v.Transform.Position
	forward := rot.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	up := rot.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	return mgl32.LookAtV(eye, eye.Add(forward), up)
}
