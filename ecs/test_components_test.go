package ecs_test

import (
	"sync/atomic"

	"github.com/plus3/hecs/ecs"
)

// Host-defined kinds used by the tests.
const (
	kindTag ecs.Kind = ecs.KindUser + iota
	kindCounter
	kindProbe
)

// Tag is a plain data component.
type Tag struct {
	ecs.Base
	Value string
}

func newTag(id string) *Tag {
	t := &Tag{Value: id}
	t.Init(id, kindTag)
	return t
}

// Counter counts lifecycle hook invocations.
type Counter struct {
	ecs.Base
	Inits   atomic.Int32
	Updates atomic.Int32
	Removes atomic.Int32
}

func newCounter(id string) *Counter {
	c := &Counter{}
	c.Init(id, kindCounter)
	return c
}

func (c *Counter) OnInit()   { c.Inits.Add(1) }
func (c *Counter) OnUpdate() { c.Updates.Add(1) }
func (c *Counter) OnRemove() { c.Removes.Add(1) }

// Probe records the owner it sees while OnRemove runs.
type Probe struct {
	ecs.Base
	OwnerAtRemove *ecs.Entity
	Log           *[]string
}

func newProbe(id string, log *[]string) *Probe {
	p := &Probe{Log: log}
	p.Init(id, kindProbe)
	return p
}

func (p *Probe) OnRemove() {
	p.OwnerAtRemove = p.Owner()
	if p.Log != nil {
		*p.Log = append(*p.Log, "remove "+p.ID())
	}
}

// impostor claims the transform kind without being an *ecs.Transform.
func impostor(id string) *Tag {
	t := &Tag{}
	t.Init(id, ecs.KindTransform)
	return t
}
