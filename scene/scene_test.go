package scene_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/asset"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Renderer that keeps everything it is asked to draw.
type recorder struct {
	mu     sync.Mutex
	frames []scene.Frame
	calls  []scene.DrawCall
	ends   int
}

func (r *recorder) Begin(f scene.Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
}

func (r *recorder) DrawModel(c scene.DrawCall) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *recorder) End() {
	r.mu.Lock()
	r.ends++
	r.mu.Unlock()
}

func (r *recorder) modelIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Model.ID()
	}
	return out
}

func vec(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

func newModel(id string) *scene.Model {
	return scene.NewModel(id, asset.Cube(1), nil, asset.DefaultMaterial(), mgl32.Vec4{1, 1, 1, 1})
}

// buildScene returns
//
//	root [model "floor"]
//	├── lamp [transform (0,5,0), light "sun"]
//	├── cameraRig [transform (0,1,10), camera]
//	└── ship [transform (1,0,0), model "hull", light "beacon"]
//	    └── turret [transform (0,1,0), model "gun"]
func buildScene(t *testing.T) (*scene.Scene, map[string]*ecs.Entity) {
	t.Helper()

	world := ecs.NewWorld("root")
	root := world.Root()

	lamp := world.NewEntity("lamp")
	lamp.AddAll(
		ecs.NewUnitTransform("lamp", vec(0, 5, 0), vec(0, 0, 0)),
		scene.PointLight("sun", vec(1, 1, 1), 2, 0.1),
	)

	camera := scene.NewCamera("main", 60, 0.1, 100)
	rig := world.NewEntity("cameraRig")
	rig.AddAll(ecs.NewUnitTransform("rig", vec(0, 1, 10), vec(0, 0, 0)), camera)

	turret := world.NewEntity("turret")
	turret.AddAll(ecs.NewUnitTransform("turret", vec(0, 1, 0), vec(0, 0, 0)), newModel("gun"))

	ship := world.NewEntity("ship")
	ship.AddAll(
		ecs.NewUnitTransform("ship", vec(1, 0, 0), vec(0, 0, 0)),
		newModel("hull"),
		scene.PointLight("beacon", vec(1, 0, 0), 1, 0.5),
		turret,
	)

	root.AddAll(newModel("floor"), lamp, rig, ship)

	s := scene.New(world, camera, mgl32.Vec4{0.1, 0.1, 0.1, 1})
	return s, map[string]*ecs.Entity{"lamp": lamp, "rig": rig, "ship": ship, "turret": turret}
}

func TestLights(t *testing.T) {
	s, entities := buildScene(t)

	lights := s.Lights()
	require.Len(t, lights, 2)
	assert.Equal(t, "sun", lights[0].ID())
	assert.Equal(t, "beacon", lights[1].ID())

	t.Run("views carry resolved placement", func(t *testing.T) {
		assert.Equal(t, vec(0, 5, 0), lights[0].View().Transform.Position)
		assert.Equal(t, vec(1, 0, 0), lights[1].View().Transform.Position)
	})

	t.Run("empty subtree", func(t *testing.T) {
		assert.Empty(t, scene.Lights(entities["turret"]))
		assert.Empty(t, scene.Lights(ecs.NewEntity("nothing")))
	})
}

func TestHandleEvents(t *testing.T) {
	world := ecs.NewWorld("root")
	child := world.NewEntity("child")
	var got []string

	record := func(name string) scene.Handler {
		return scene.HandlerFunc(func(ev scene.Event) {
			got = append(got, name+":"+ev.(string))
		})
	}
	child.Add(scene.NewEventHandler("inner", record("inner")))
	world.Root().AddAll(scene.NewEventHandler("outer", record("outer")), child)

	scene.HandleEvents(world.Root(), "click")

	assert.Equal(t, []string{"outer:click", "inner:click"}, got)

	t.Run("handler can be swapped", func(t *testing.T) {
		got = nil
		h, ok := ecs.GetFirst[*scene.EventHandler](child, ecs.KindEventHandler)
		require.True(t, ok)
		h.SetHandler(record("swapped"))

		scene.HandleEvents(world.Root(), "key")

		assert.Equal(t, []string{"outer:key", "swapped:key"}, got)
	})

	t.Run("nil handler is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			scene.NewEventHandler("empty", nil).Handle("x")
		})
	})
}

func TestDrawEntities(t *testing.T) {
	s, _ := buildScene(t)
	r := &recorder{}

	scene.DrawEntities(s.Root(), s.Camera(), s.Lights(), r)

	assert.Equal(t, []string{"floor", "hull", "gun"}, r.modelIDs())

	t.Run("transforms are resolved per model", func(t *testing.T) {
		assert.Equal(t, ecs.TransformData{}, r.calls[0].Transform, "root has no transform")
		assert.Equal(t, vec(1, 0, 0), r.calls[1].Transform.Position)
		assert.Equal(t, vec(1, 1, 0), r.calls[2].Transform.Position)
	})

	t.Run("camera and lights are shared across calls", func(t *testing.T) {
		for _, c := range r.calls {
			assert.Equal(t, vec(0, 1, 10), c.Camera.Transform.Position)
			assert.Equal(t, float32(60), c.Camera.Fov)
			assert.Len(t, c.Lights, 2)
		}
	})

	t.Run("no camera draws nothing", func(t *testing.T) {
		empty := &recorder{}
		scene.DrawEntities(s.Root(), nil, nil, empty)
		assert.Empty(t, empty.calls)
	})
}

func TestSceneDraw(t *testing.T) {
	s, _ := buildScene(t)
	r := &recorder{}

	s.Draw(r)

	require.Len(t, r.frames, 1)
	assert.Equal(t, mgl32.Vec4{0.1, 0.1, 0.1, 1}, r.frames[0].Background)
	assert.Len(t, r.calls, 3)
	assert.Equal(t, 1, r.ends)

	t.Run("without a camera only the background is drawn", func(t *testing.T) {
		s.SetCamera(nil)
		s.SetBackground(mgl32.Vec4{1, 0, 0, 1})
		r := &recorder{}

		s.Draw(r)

		_, ok := s.CameraView()
		assert.False(t, ok)
		require.Len(t, r.frames, 1)
		assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, r.frames[0].Background)
		assert.Empty(t, r.calls)
		assert.Equal(t, 1, r.ends)
	})
}

func TestCamera(t *testing.T) {
	t.Run("detached camera sits at the origin", func(t *testing.T) {
		c := scene.NewCamera("c", 90, 1, 10)
		v := c.View()

		assert.Equal(t, ecs.TransformData{}, v.Transform)

		p := v.Matrix().Mul4x1(mgl32.Vec4{0, 0, -5, 1})
		assert.InDelta(t, 0, p.X(), 1e-5)
		assert.InDelta(t, 0, p.Y(), 1e-5)
		assert.InDelta(t, -5, p.Z(), 1e-5)
	})

	t.Run("view matrix follows the owner transform", func(t *testing.T) {
		c := scene.NewCamera("c", 90, 1, 10)
		rig := ecs.NewEntity("rig")
		rig.AddAll(ecs.NewUnitTransform("rig", vec(0, 0, 10), vec(0, 0, 0)), c)

		p := c.View().Matrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})

		assert.InDelta(t, 0, p.X(), 1e-4)
		assert.InDelta(t, 0, p.Y(), 1e-4)
		assert.InDelta(t, -10, p.Z(), 1e-4)
	})

	t.Run("projection maps the near plane to -1", func(t *testing.T) {
		c := scene.NewCamera("c", 90, 1, 10)

		clip := c.Projection(1).Mul4x1(mgl32.Vec4{0, 0, -1, 1})

		assert.InDelta(t, -1, clip.Z()/clip.W(), 1e-5)
	})

	t.Run("setters", func(t *testing.T) {
		c := scene.NewCamera("c", 90, 1, 10)
		c.SetFov(45)
		c.SetClip(0.5, 50)

		near, far := c.Clip()
		assert.Equal(t, float32(45), c.Fov())
		assert.Equal(t, float32(0.5), near)
		assert.Equal(t, float32(50), far)
	})
}

func TestModelAccessors(t *testing.T) {
	m := newModel("m")
	mesh := asset.Cube(3)
	mat := asset.NewMaterial(0.2, 0.3, 0.4, 8)
	tex := &asset.Texture{}

	m.SetMesh(mesh)
	m.SetMaterial(mat)
	m.SetTexture(tex)
	m.SetColor(mgl32.Vec4{0, 1, 0, 1})

	assert.Same(t, mesh, m.Mesh())
	assert.Same(t, mat, m.Material())
	assert.Same(t, tex, m.Texture())
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, m.Color())
	assert.Equal(t, ecs.KindModel, m.Kind())
	assert.Equal(t, ecs.TransformData{}, m.Transform())
}

func TestLightData(t *testing.T) {
	l := scene.NewLight("spot", scene.LightData{
		Color:       vec(1, 1, 0),
		Intensity:   3,
		Cutoff:      0.9,
		OuterCutoff: 0.8,
		Directional: true,
	})

	l.SetIntensity(5)

	d := l.Data()
	assert.Equal(t, float32(5), d.Intensity)
	assert.Equal(t, float32(0.9), d.Cutoff)
	assert.True(t, d.Directional)

	l.SetData(scene.LightData{})
	assert.Equal(t, scene.LightData{}, l.Data())
}

// initCounter counts hook calls.
type initCounter struct {
	ecs.Base
	mu      sync.Mutex
	inits   int
	updates int
}

func (c *initCounter) OnInit() {
	c.mu.Lock()
	c.inits++
	c.mu.Unlock()
}

func (c *initCounter) OnUpdate() {
	c.mu.Lock()
	c.updates++
	c.mu.Unlock()
}

func (c *initCounter) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inits, c.updates
}

func TestEngine(t *testing.T) {
	s, entities := buildScene(t)
	r := &recorder{}
	engine := scene.NewEngine(s, r)

	counter := &initCounter{}
	counter.Init("counter", ecs.KindUser)
	entities["turret"].Add(counter)

	var events []scene.Event
	entities["ship"].Add(scene.NewEventHandler("ship", scene.HandlerFunc(func(ev scene.Event) {
		events = append(events, ev)
	})))

	t.Run("init runs once", func(t *testing.T) {
		engine.Init()
		engine.Init()
		engine.Step(0.016)

		inits, updates := counter.counts()
		assert.Equal(t, 1, inits)
		assert.Equal(t, 1, updates)
		assert.Len(t, r.frames, 1)
		assert.Len(t, r.calls, 3)
	})

	t.Run("events are dispatched on the next step", func(t *testing.T) {
		engine.Push("a")
		engine.Push("b")
		assert.Empty(t, events)

		engine.Step(0.016)

		assert.Equal(t, []scene.Event{"a", "b"}, events)

		engine.Step(0.016)
		assert.Len(t, events, 2)
	})

	t.Run("stats list the frame systems", func(t *testing.T) {
		stats := engine.Stats()
		require.Equal(t, 3, stats.SystemCount)
		assert.Equal(t, "eventSystem", stats.Systems[0].Name)
		assert.Equal(t, "updateSystem", stats.Systems[1].Name)
		assert.Equal(t, "drawSystem", stats.Systems[2].Name)
		assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	})

	t.Run("extra systems run after drawing", func(t *testing.T) {
		var drawnBefore int
		engine.Register(systemFunc(func(frame *ecs.UpdateFrame) {
			r.mu.Lock()
			drawnBefore = len(r.frames)
			r.mu.Unlock()
		}))

		engine.Step(0.016)

		assert.Equal(t, 4, drawnBefore)
	})

	t.Run("run until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		engine.Run(ctx, time.Millisecond)

		_, updates := counter.counts()
		assert.Greater(t, updates, 4)
	})
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }
