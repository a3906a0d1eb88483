package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// Frame opens a draw pass.
type Frame struct {
	Background mgl32.Vec4
}

// DrawCall is one model to draw, with the camera and lights resolved once for
// the whole pass. Lights is shared by every call of a pass and must not be
// modified.
type DrawCall struct {
	Model     *Model
	Transform ecs.TransformData
	Camera    View
	Lights    []LightView
}

// Renderer is the presentation side of the frame loop. Begin and End bracket
// the DrawModel calls of a frame. A renderer with a fixed light capacity
// truncates DrawCall.Lights itself.
type Renderer interface {
	Begin(frame Frame)
	DrawModel(call DrawCall)
	End()
}
