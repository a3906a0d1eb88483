package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/asset"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/internal/demo"
	"github.com/plus3/hecs/scene"
)

var mgl32Black = mgl32.Vec4{0, 0, 0, 1}

// TreeInfo summarizes a generated tree.
type TreeInfo struct {
	Entities int
	Models   int
	Lights   int
	Camera   *scene.Camera
}

// BuildTree grows a uniform tree under the world root: every entity down to
// depth has breadth children, each with a spinning transform. Leaves carry a
// cube model and the first leaves carry the lights.
func BuildTree(world *ecs.World, depth, breadth, lights int) TreeInfo {
	depth = min(max(depth, 0), ecs.MaxDepth-1)

	var info TreeInfo
	mesh := asset.Cube(0.5)
	material := asset.DefaultMaterial()

	rig := world.NewEntity("camera-rig")
	info.Camera = scene.NewCamera("main", 60, 0.1, 1000)
	rig.AddAll(ecs.NewUnitTransform("rig", mgl32.Vec3{0, 0, 50}, mgl32.Vec3{}), info.Camera)
	world.Root().Add(rig)
	info.Entities++

	type node struct {
		entity *ecs.Entity
		level  int
	}
	queue := []node{{entity: world.Root()}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.level == depth {
			continue
		}

		for i := 0; i < breadth; i++ {
			child := world.NewEntity(fmt.Sprintf("n%d-%d", n.level+1, i))
			child.AddAll(
				ecs.NewTransform("t", mgl32.Vec3{float32(i) - float32(breadth)/2, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{}),
				demo.NewSpin("spin", mgl32.Vec3{0, 0.1 * float32(i+1), 0}),
			)
			if n.level+1 == depth {
				child.Add(scene.NewModel("cube", mesh, nil, material, mgl32.Vec4{1, 1, 1, 1}))
				info.Models++
				if info.Lights < lights {
					child.Add(scene.PointLight("light", mgl32.Vec3{1, 1, 1}, 1, 0.01))
					info.Lights++
				}
			}
			n.entity.Add(child)
			info.Entities++
			queue = append(queue, node{entity: child, level: n.level + 1})
		}
	}

	return info
}
