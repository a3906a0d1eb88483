package demo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// KindSpin is the first host kind.
const KindSpin = ecs.KindUser

// Spin rotates its owner's transform at a constant rate.
type Spin struct {
	ecs.Base
	// Rate in radians per second around each axis.
	Rate mgl32.Vec3
}

func NewSpin(id string, rate mgl32.Vec3) *Spin {
	s := &Spin{Rate: rate}
	s.Init(id, KindSpin)
	return s
}

// Step advances the owner's rotation by Rate*dt. Detached spins, and spins
// whose owner has no transform, do nothing.
func (s *Spin) Step(dt float64) {
	owner := s.Owner()
	if owner == nil {
		return
	}
	t, ok := ecs.GetFirst[*ecs.Transform](owner, ecs.KindTransform)
	if !ok {
		return
	}
	delta := s.Rate.Mul(float32(dt))
	t.Update(func(d *ecs.TransformData) {
		d.Rotation = d.Rotation.Add(delta)
	})
}

// SpinSystem steps every Spin in the world each frame.
type SpinSystem struct {
	Spins ecs.Query[*Spin] `ecs:"user"`
}

func (s *SpinSystem) Execute(frame *ecs.UpdateFrame) {
	for spin := range s.Spins.Iter() {
		spin.Step(frame.DeltaTime)
	}
}
