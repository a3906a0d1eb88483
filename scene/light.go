package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// LightData describes a light source. Cutoff and OuterCutoff are cosines of
// the spot cone angles; a light with Cutoff zero is a point light.
type LightData struct {
	Color       mgl32.Vec3
	Intensity   float32
	Cutoff      float32
	OuterCutoff float32
	Attenuation float32
	Directional bool
}

// Light is a light source positioned by its owning entity's transform.
type Light struct {
	ecs.Base

	mu   sync.RWMutex
	data LightData
}

func NewLight(id string, data LightData) *Light {
	l := &Light{data: data}
	l.Init(id, ecs.KindLight)
	return l
}

// PointLight is shorthand for a white-or-coloured omnidirectional light.
func PointLight(id string, color mgl32.Vec3, intensity, attenuation float32) *Light {
	return NewLight(id, LightData{
		Color:       color,
		Intensity:   intensity,
		Attenuation: attenuation,
	})
}

func (l *Light) Data() LightData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data
}

func (l *Light) SetData(d LightData) {
	l.mu.Lock()
	l.data = d
	l.mu.Unlock()
}

// SetIntensity changes only the intensity.
func (l *Light) SetIntensity(intensity float32) {
	l.mu.Lock()
	l.data.Intensity = intensity
	l.mu.Unlock()
}

// LightView is a per-frame snapshot of a light and its resolved placement.
type LightView struct {
	ID        string
	Data      LightData
	Transform ecs.TransformData
}

// View snapshots the light for rendering.
func (l *Light) View() LightView {
	return LightView{
		ID:        l.ID(),
		Data:      l.Data(),
		Transform: ownerTransform(l),
	}
}

// ownerTransform resolves the first Transform of c's owning entity, or the
// zero TransformData when there is none.
func ownerTransform(c ecs.Component) ecs.TransformData {
	owner := c.Owner()
	if owner == nil {
		return ecs.TransformData{}
	}
	t, ok := ecs.GetFirst[*ecs.Transform](owner, ecs.KindTransform)
	if !ok {
		return ecs.TransformData{}
	}
	return t.Resolve()
}
