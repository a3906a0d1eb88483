package scene

import "github.com/plus3/hecs/ecs"

// Lights collects every light under root in depth-first pre-order. It imposes
// no cap on the number of lights.
func Lights(root *ecs.Entity) []*Light {
	return ecs.Collect[*Light](root, ecs.KindLight)
}

// HandleEvents passes ev to every event handler under root.
func HandleEvents(root *ecs.Entity, ev Event) {
	ecs.Visit(root, ecs.KindEventHandler, func(h *EventHandler) {
		h.Handle(ev)
	})
}

// DrawEntities issues one DrawModel call per model under root. The camera and
// the lights are resolved once up front. Nothing is drawn without a camera.
func DrawEntities(root *ecs.Entity, camera *Camera, lights []*Light, r Renderer) {
	if camera == nil {
		return
	}

	view := camera.View()
	lightViews := make([]LightView, len(lights))
	for i, l := range lights {
		lightViews[i] = l.View()
	}

	ecs.Visit(root, ecs.KindModel, func(m *Model) {
		r.DrawModel(DrawCall{
			Model:     m,
			Transform: m.Transform(),
			Camera:    view,
			Lights:    lightViews,
		})
	})
}
