package ecs

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformData is a local or resolved position/rotation/scale triple.
// Rotation holds Euler angles in radians.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Add sums two transforms component-wise.
func (d TransformData) Add(o TransformData) TransformData {
	return TransformData{
		Position: d.Position.Add(o.Position),
		Rotation: d.Rotation.Add(o.Rotation),
		Scale:    d.Scale.Add(o.Scale),
	}
}

// Matrix composes translation, X/Y/Z rotation and scale into a model matrix.
func (d TransformData) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(d.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(d.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(d.Rotation.Z())).
		Mul4(mgl32.Scale3D(d.Scale.X(), d.Scale.Y(), d.Scale.Z()))
}

// Transform is the component holding an entity's local TransformData.
type Transform struct {
	Base

	mu   sync.RWMutex
	data TransformData
}

// NewTransform creates a detached transform component.
func NewTransform(id string, position, rotation, scale mgl32.Vec3) *Transform {
	t := &Transform{
		data: TransformData{
			Position: position,
			Rotation: rotation,
			Scale:    scale,
		},
	}
	t.Init(id, KindTransform)
	return t
}

// NewUnitTransform creates a transform with scale (1, 1, 1).
func NewUnitTransform(id string, position, rotation mgl32.Vec3) *Transform {
	return NewTransform(id, position, rotation, mgl32.Vec3{1, 1, 1})
}

// Data returns a copy of the local values.
func (t *Transform) Data() TransformData {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data
}

func (t *Transform) SetData(d TransformData) {
	t.mu.Lock()
	t.data = d
	t.mu.Unlock()
}

// Update mutates the local values in place under the write lock.
func (t *Transform) Update(fn func(d *TransformData)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.data)
}

func (t *Transform) SetPosition(p mgl32.Vec3) {
	t.Update(func(d *TransformData) { d.Position = p })
}

// Translate adds delta to the local position.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Update(func(d *TransformData) { d.Position = d.Position.Add(delta) })
}

// Resolve is shorthand for Resolve(t).
func (t *Transform) Resolve() TransformData {
	return Resolve(t)
}

// Resolve accumulates t's local values with the transform of every ancestor
// entity, walking up the ownership chain. Values are summed, not composed as
// matrices. The walk stops at the first ancestor without a Transform.
func Resolve(t *Transform) TransformData {
	var acc TransformData
	cur := t
	for depth := 0; ; depth++ {
		if depth > MaxDepth {
			panic(&DepthError{ID: cur.ID(), Depth: MaxDepth})
		}
		acc = acc.Add(cur.Data())

		owner := cur.Owner()
		if owner == nil {
			break
		}
		parent := owner.Owner()
		if parent == nil {
			break
		}
		next, ok := GetFirst[*Transform](parent, KindTransform)
		if !ok {
			break
		}
		cur = next
	}
	return acc
}
