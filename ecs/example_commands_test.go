package ecs_test

import (
	"fmt"

	"github.com/plus3/hecs/ecs"
)

type PruneSystem struct {
	Children ecs.Query[*ecs.Entity] `ecs:"entity"`
}

func (s *PruneSystem) Execute(frame *ecs.UpdateFrame) {
	pruned := 0
	for e := range s.Children.Iter() {
		if e.Len() == 0 {
			frame.Commands.Remove(e.Owner(), e)
			pruned++
		}
	}
	if pruned > 0 {
		fmt.Printf("Queued %d empty entities for removal\n", pruned)
	}
}

// ExampleCommands demonstrates using command buffers to defer tree mutations.
// Commands are needed when modifying the tree during iteration. The Scheduler
// flushes them at the end of each frame.
func ExampleCommands() {
	world := ecs.NewWorld("scene")
	full := world.NewEntity("full")
	full.Add(newTag("payload"))
	world.Root().AddAll(full, world.NewEntity("empty-1"), world.NewEntity("empty-2"))

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&PruneSystem{})

	scheduler.Once(1.0)

	for _, e := range ecs.GetType[*ecs.Entity](world.Root(), ecs.KindEntity) {
		fmt.Println("Remaining:", e.ID())
	}

	// Output:
	// Queued 2 empty entities for removal
	// Remaining: full
}

// ExampleCommands_Defer shows running arbitrary work after a frame's
// structural changes have been applied.
func ExampleCommands_Defer() {
	root := ecs.NewEntity("root")
	cmds := ecs.NewCommands()

	cmds.Defer(func() {
		fmt.Println("children:", root.Len())
	})
	cmds.Add(root, ecs.NewEntity("late"))

	cmds.Flush()

	// Output:
	// children: 1
}
