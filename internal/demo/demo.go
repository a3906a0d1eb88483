// Package demo builds the sample scene shared by the viewer and the stress
// tool: rings of spinning cubes under a common grid, lit by point lights and
// watched by a camera rig.
package demo

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/asset"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/scene"
)

var pastelColors = [][3]uint8{
	{255, 179, 186},
	{179, 229, 252},
	{255, 223, 186},
	{186, 255, 201},
	{255, 200, 221},
	{186, 225, 255},
	{255, 255, 186},
	{217, 186, 255},
}

// Options sizes the demo scene.
type Options struct {
	Rings  int
	Cubes  int // per ring
	Lights int
	Seed   uint64
}

func DefaultOptions() Options {
	return Options{Rings: 3, Cubes: 8, Lights: 2, Seed: 1}
}

// Handles points at the entities a host drives directly.
type Handles struct {
	Grid   *ecs.Entity
	Rig    *ecs.Entity
	Camera *scene.Camera
	Rings  []*ecs.Entity
}

// Build populates world and returns a scene watching it. Only the grid
// transform carries unit scale; nested transforms add zero scale so every
// cube resolves to scale one.
func Build(world *ecs.World, opts Options) (*scene.Scene, Handles) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	root := world.Root()

	var h Handles

	h.Rig = world.NewEntity("camera-rig")
	h.Camera = scene.NewCamera("main", 60, 0.1, 200)
	h.Rig.AddAll(
		ecs.NewUnitTransform("rig", mgl32.Vec3{0, 6, 22}, mgl32.Vec3{-0.25, 0, 0}),
		h.Camera,
	)

	h.Grid = world.NewEntity("grid")
	h.Grid.Add(ecs.NewUnitTransform("grid", mgl32.Vec3{}, mgl32.Vec3{}))

	mesh := asset.Cube(1)
	material := asset.DefaultMaterial()

	for r := 0; r < opts.Rings; r++ {
		ring := world.NewEntity(fmt.Sprintf("ring-%d", r))
		ring.AddAll(
			zeroScale("ring", mgl32.Vec3{0, float32(r) * 2.5, 0}),
			NewSpin("spin", mgl32.Vec3{0, 0.3 + rng.Float32()*0.7, 0}),
		)

		radius := 4 + float32(r)*2
		for c := 0; c < opts.Cubes; c++ {
			angle := 2 * math.Pi * float64(c) / float64(max(opts.Cubes, 1))
			pos := mgl32.Vec3{
				radius * float32(math.Cos(angle)),
				0,
				radius * float32(math.Sin(angle)),
			}

			pc := pastelColors[(r*opts.Cubes+c)%len(pastelColors)]
			tex := asset.Solid(color.RGBA{R: pc[0], G: pc[1], B: pc[2], A: 255})

			cube := world.NewEntity(fmt.Sprintf("cube-%d", c))
			cube.AddAll(
				zeroScale("cube", pos),
				scene.NewModel("cube", mesh, tex, material, mgl32.Vec4{1, 1, 1, 1}),
				NewSpin("tumble", mgl32.Vec3{rng.Float32(), rng.Float32(), 0}),
			)
			ring.Add(cube)
		}

		h.Grid.Add(ring)
		h.Rings = append(h.Rings, ring)
	}

	for i := 0; i < opts.Lights; i++ {
		pc := pastelColors[i%len(pastelColors)]
		lamp := world.NewEntity(fmt.Sprintf("lamp-%d", i))
		lamp.AddAll(
			zeroScale("lamp", mgl32.Vec3{float32(i*10 - 5), 12, 5}),
			scene.PointLight("lamp", mgl32.Vec3{float32(pc[0]) / 255, float32(pc[1]) / 255, float32(pc[2]) / 255}, 1.5, 0.002),
		)
		h.Grid.Add(lamp)
	}

	root.AddAll(h.Rig, h.Grid)

	return scene.New(world, h.Camera, mgl32.Vec4{0.08, 0.08, 0.12, 1}), h
}

func zeroScale(id string, pos mgl32.Vec3) *ecs.Transform {
	return ecs.NewTransform(id, pos, mgl32.Vec3{}, mgl32.Vec3{})
}
