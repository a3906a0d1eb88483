// Package render draws a scene onto an ebiten image and turns ebiten input
// into scene events.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/hecs/scene"
)

// MaxLights is the number of lights the wireframe shader considers. Lights
// beyond it are ignored.
const MaxLights = 1024

// Wireframe is a scene.Renderer that projects mesh edges onto an ebiten
// image. Line colour is the model colour tinted by its texture and lit by
// the frame's lights.
type Wireframe struct {
	LineWidth float32

	target *ebiten.Image
	width  int
	height int

	models int
	edges  int
}

func NewWireframe() *Wireframe {
	return &Wireframe{LineWidth: 1}
}

// SetTarget sets the image drawn by the next frame.
func (w *Wireframe) SetTarget(img *ebiten.Image) {
	w.target = img
	if img != nil {
		b := img.Bounds()
		w.width, w.height = b.Dx(), b.Dy()
	}
}

// Counts returns the models and edges drawn in the last frame.
func (w *Wireframe) Counts() (models, edges int) {
	return w.models, w.edges
}

func (w *Wireframe) Begin(frame scene.Frame) {
	w.models, w.edges = 0, 0
	if w.target == nil {
		return
	}
	w.target.Fill(toRGBA(frame.Background))
}

func (w *Wireframe) DrawModel(call scene.DrawCall) {
	if w.target == nil || w.width == 0 || w.height == 0 {
		return
	}
	mesh := call.Model.Mesh()
	if mesh == nil {
		return
	}

	aspect := float32(w.width) / float32(w.height)
	mvp := call.Camera.Projection(aspect).
		Mul4(call.Camera.Matrix()).
		Mul4(call.Transform.Matrix())

	points := make([]mgl32.Vec2, len(mesh.Vertices))
	visible := make([]bool, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		points[i], visible[i] = project(mvp, v, w.width, w.height)
	}

	clr := toRGBA(shade(call))
	for _, e := range mesh.Edges() {
		a, b := e[0], e[1]
		if int(a) >= len(points) || int(b) >= len(points) || !visible[a] || !visible[b] {
			continue
		}
		vector.StrokeLine(w.target, points[a].X(), points[a].Y(), points[b].X(), points[b].Y(), w.LineWidth, clr, true)
		w.edges++
	}
	w.models++
}

func (w *Wireframe) End() {}

// project maps a model-space point to screen pixels. Points behind the
// camera or outside the depth range are reported invisible.
func project(mvp mgl32.Mat4, v mgl32.Vec3, width, height int) (mgl32.Vec2, bool) {
	clip := mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return mgl32.Vec2{}, false
	}
	x := (ndc.X() + 1) / 2 * float32(width)
	y := (1 - ndc.Y()) / 2 * float32(height)
	return mgl32.Vec2{x, y}, true
}

// shade computes the line colour of a draw call.
func shade(call scene.DrawCall) mgl32.Vec4 {
	base := call.Model.Color()
	if tex := call.Model.Texture(); tex != nil {
		avg := tex.Average()
		base = mgl32.Vec4{
			base.X() * float32(avg.R) / 255,
			base.Y() * float32(avg.G) / 255,
			base.Z() * float32(avg.B) / 255,
			base.W(),
		}
	}

	ambient, diffuse := float32(1), float32(0)
	if m := call.Model.Material(); m != nil {
		ambient, diffuse = m.Ambient, m.Diffuse
	}

	lights := call.Lights
	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}

	pos := call.Transform.Position
	var lit mgl32.Vec3
	for _, l := range lights {
		d := l.Data
		strength := d.Intensity
		if !d.Directional {
			dist := l.Transform.Position.Sub(pos).Len()
			strength /= 1 + d.Attenuation*dist*dist
		}
		lit = lit.Add(d.Color.Mul(strength))
	}

	f := func(c, l float32) float32 {
		v := c * (ambient + diffuse*l)
		return mgl32.Clamp(v, 0, 1)
	}
	return mgl32.Vec4{f(base.X(), lit.X()), f(base.Y(), lit.Y()), f(base.Z(), lit.Z()), base.W()}
}

func toRGBA(c mgl32.Vec4) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1) * 255)
	}
	return color.RGBA{R: ch(c.X()), G: ch(c.Y()), B: ch(c.Z()), A: ch(c.W())}
}
