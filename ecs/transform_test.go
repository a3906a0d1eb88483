package ecs_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("detached transform resolves to itself", func(t *testing.T) {
		tr := ecs.NewTransform("t", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0.1, 0, 0}, mgl32.Vec3{2, 2, 2})

		assert.Equal(t, tr.Data(), ecs.Resolve(tr))
	})

	t.Run("sums ancestor transforms", func(t *testing.T) {
		root := ecs.NewEntity("root")
		parent := ecs.NewEntity("parent")
		child := ecs.NewEntity("child")

		parentT := ecs.NewTransform("pt", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{})
		childT := ecs.NewTransform("ct", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{}, mgl32.Vec3{})
		parent.AddAll(parentT, child)
		child.Add(childT)
		root.Add(parent)

		got := childT.Resolve()

		assert.Equal(t, mgl32.Vec3{1, 2, 0}, got.Position)
	})

	t.Run("three levels", func(t *testing.T) {
		root := ecs.NewEntity("root")
		a := ecs.NewEntity("a")
		b := ecs.NewEntity("b")
		c := ecs.NewEntity("c")
		a.Add(ecs.NewUnitTransform("ta", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}))
		b.Add(ecs.NewUnitTransform("tb", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{}))
		tc := ecs.NewUnitTransform("tc", mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0.5, 0, 0})
		c.Add(tc)
		b.Add(c)
		a.Add(b)
		root.Add(a)

		got := ecs.Resolve(tc)

		assert.Equal(t, mgl32.Vec3{1, 2, 3}, got.Position)
		assert.Equal(t, mgl32.Vec3{0.5, 0, 0}, got.Rotation)
		assert.Equal(t, mgl32.Vec3{3, 3, 3}, got.Scale, "scales add, they do not multiply")
	})

	t.Run("stops at an ancestor without a transform", func(t *testing.T) {
		root := ecs.NewEntity("root")
		a := ecs.NewEntity("a")
		b := ecs.NewEntity("b")
		c := ecs.NewEntity("c")
		a.Add(ecs.NewUnitTransform("ta", mgl32.Vec3{100, 0, 0}, mgl32.Vec3{}))
		tc := ecs.NewUnitTransform("tc", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{})
		c.Add(tc)
		b.Add(c)
		a.Add(b)
		root.Add(a)

		assert.Equal(t, mgl32.Vec3{1, 0, 0}, tc.Resolve().Position)
	})

	t.Run("the top-level entity transform is not counted twice", func(t *testing.T) {
		top := ecs.NewEntity("top")
		tr := ecs.NewTransform("t", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{})
		top.Add(tr)

		assert.Equal(t, mgl32.Vec3{5, 0, 0}, tr.Resolve().Position)
	})

	t.Run("cycle panics", func(t *testing.T) {
		x := ecs.NewEntity("x")
		y := ecs.NewEntity("y")
		tx := ecs.NewTransform("tx", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{})
		x.AddAll(tx, y)
		y.AddAll(ecs.NewTransform("ty", mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}), x)

		recoverDepthError(t, func() { tx.Resolve() })
	})
}

func TestTransformMutation(t *testing.T) {
	tr := ecs.NewUnitTransform("t", mgl32.Vec3{}, mgl32.Vec3{})

	tr.SetPosition(mgl32.Vec3{1, 1, 1})
	tr.Translate(mgl32.Vec3{1, 0, -1})
	tr.Update(func(d *ecs.TransformData) { d.Rotation = mgl32.Vec3{0, 1, 0} })

	got := tr.Data()
	assert.Equal(t, mgl32.Vec3{2, 1, 0}, got.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, got.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, got.Scale)

	tr.SetData(ecs.TransformData{})
	assert.Equal(t, ecs.TransformData{}, tr.Data())
}

func TestTransformDataMatrix(t *testing.T) {
	d := ecs.TransformData{
		Position: mgl32.Vec3{1, 2, 3},
		Scale:    mgl32.Vec3{2, 2, 2},
	}

	p := d.Matrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1})

	assert.InDelta(t, 3, p.X(), 1e-5)
	assert.InDelta(t, 4, p.Y(), 1e-5)
	assert.InDelta(t, 5, p.Z(), 1e-5)
}
