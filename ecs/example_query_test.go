package ecs_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

// ExampleQuery demonstrates caching a kind-wide collection for a frame.
// Execute walks the tree once; Iter can then be ranged over repeatedly.
func ExampleQuery() {
	world := ecs.NewWorld("scene")
	for i, x := range []float32{1, 2, 3} {
		e := world.NewEntity(fmt.Sprintf("e%d", i))
		e.Add(ecs.NewUnitTransform(fmt.Sprintf("t%d", i), mgl32.Vec3{x, 0, 0}, mgl32.Vec3{}))
		world.Root().Add(e)
	}

	query := ecs.NewQuery[*ecs.Transform](world, ecs.KindTransform)
	query.Execute()

	var sum float32
	for t := range query.Iter() {
		sum += t.Data().Position.X()
	}
	fmt.Printf("%d transforms, x sum %.0f\n", query.Len(), sum)

	// Output:
	// 3 transforms, x sum 6
}

// ExampleCollect shows the depth-first pre-order of a typed collection:
// an entity's own components come before those of its nested entities.
func ExampleCollect() {
	root := ecs.NewEntity("root")
	arm := ecs.NewEntity("arm")
	hand := ecs.NewEntity("hand")

	hand.Add(newTag("finger"))
	arm.AddAll(newTag("elbow"), hand)
	root.AddAll(arm, newTag("head"))

	for _, tag := range ecs.Collect[*Tag](root, kindTag) {
		fmt.Println(tag.Value)
	}

	// Output:
	// head
	// elbow
	// finger
}

// ExampleResolve shows that ancestor transforms are summed, not multiplied.
func ExampleResolve() {
	root := ecs.NewEntity("root")
	parent := ecs.NewEntity("parent")
	child := ecs.NewEntity("child")

	parent.AddAll(ecs.NewUnitTransform("parent", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}), child)
	childT := ecs.NewUnitTransform("child", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{})
	child.Add(childT)
	root.Add(parent)

	d := ecs.Resolve(childT)
	fmt.Println("position:", d.Position)
	fmt.Println("scale:", d.Scale)

	// Output:
	// position: [1 2 0]
	// scale: [2 2 2]
}
