package ecs_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
)

func TestQuery(t *testing.T) {
	world := ecs.NewWorld("root")
	ship := world.NewEntity("ship")
	turret := world.NewEntity("turret")
	ship.AddAll(
		ecs.NewUnitTransform("ship", mgl32.Vec3{}, mgl32.Vec3{}),
		turret,
	)
	turret.Add(ecs.NewUnitTransform("turret", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}))
	world.Root().AddAll(ship, newTag("not-a-transform"))

	query := ecs.NewQuery[*ecs.Transform](world, ecs.KindTransform)

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()

		count := 0
		for range query.Iter() {
			count++
		}

		if count != 2 {
			t.Errorf("expected 2 transforms, got %d", count)
		}
		if query.Len() != 2 {
			t.Errorf("expected Len 2, got %d", query.Len())
		}
	})

	t.Run("panics without execute", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic when calling Iter() without Execute()")
			}
		}()

		fresh := ecs.NewQuery[*ecs.Transform](world, ecs.KindTransform)
		for range fresh.Iter() {
		}
	})

	t.Run("sees structural changes after re-execute", func(t *testing.T) {
		extra := world.NewEntity("extra")
		extra.Add(ecs.NewUnitTransform("extra", mgl32.Vec3{}, mgl32.Vec3{}))
		world.Root().Add(extra)

		query.Execute()
		if query.Len() != 3 {
			t.Errorf("expected 3 transforms, got %d", query.Len())
		}

		world.Root().Remove(ship)
		query.Execute()
		if query.Len() != 1 {
			t.Errorf("expected 1 transform after removing ship, got %d", query.Len())
		}
	})

	t.Run("early break", func(t *testing.T) {
		query.Execute()
		for range query.Iter() {
			break
		}
	})

	t.Run("kind", func(t *testing.T) {
		if query.Kind() != ecs.KindTransform {
			t.Errorf("expected kind transform, got %v", query.Kind())
		}
	})
}
