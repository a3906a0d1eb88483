package ecs

import (
	"slices"
	"sync"

	"github.com/kamstrup/intmap"
)

// Entity is a node of the scene tree. It keeps its components in buckets keyed
// by Kind, preserving insertion order inside a bucket and creation order across
// buckets. Entity is itself a Component, so entities nest inside entities.
//
// Registry reads copy the bucket under a read lock and release it before any
// hook runs, so hooks are free to mutate the entity that called them.
type Entity struct {
	Base

	mu      sync.RWMutex
	buckets *intmap.Map[Kind, []Component]
	order   []Kind

	handle Handle
}

// NewEntity creates a detached, empty entity.
func NewEntity(id string) *Entity {
	e := &Entity{
		buckets: intmap.New[Kind, []Component](8),
	}
	e.Init(id, KindEntity)
	return e
}

// Handle returns the world handle of the entity, or 0 if it was not created
// through a World.
func (e *Entity) Handle() Handle {
	return e.handle
}

// Add attaches c to e. If c is owned by another entity (or by e itself) it is
// removed from that owner first, which fires its OnRemove hook. Add does not
// call OnInit. OnRemove hooks must not re-attach c; queue that via Commands.
func (e *Entity) Add(c Component) {
	b := c.base()
	b.attach.Lock()
	defer b.attach.Unlock()

	if prev := b.Owner(); prev != nil {
		prev.RemoveByID(c.Kind(), c.ID())
	}
	b.setOwner(e)

	kind := c.Kind()

	e.mu.Lock()
	bucket, ok := e.buckets.Get(kind)
	if !ok {
		e.order = append(e.order, kind)
	}
	e.buckets.Put(kind, append(bucket, c))
	e.mu.Unlock()
}

// AddAll attaches each component in order.
func (e *Entity) AddAll(components ...Component) {
	for _, c := range components {
		e.Add(c)
	}
}

// Remove detaches every component of c's kind whose id equals c's id.
func (e *Entity) Remove(c Component) {
	e.RemoveByID(c.Kind(), c.ID())
}

// RemoveAll removes each component in order.
func (e *Entity) RemoveAll(components ...Component) {
	for _, c := range components {
		e.Remove(c)
	}
}

// RemoveByID detaches every component in the kind bucket with the given id.
// Each removed component receives OnRemove and then loses its owner. Empty
// buckets are dropped. Missing kinds or ids are a no-op.
func (e *Entity) RemoveByID(kind Kind, id string) {
	e.mu.Lock()
	bucket, ok := e.buckets.Get(kind)
	if !ok {
		e.mu.Unlock()
		return
	}

	kept := make([]Component, 0, len(bucket))
	var removed []Component
	for _, c := range bucket {
		if c.ID() == id {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}

	if len(removed) == 0 {
		e.mu.Unlock()
		return
	}

	if len(kept) == 0 {
		e.buckets.Del(kind)
		e.order = slices.DeleteFunc(e.order, func(k Kind) bool { return k == kind })
	} else {
		e.buckets.Put(kind, kept)
	}
	e.mu.Unlock()

	for _, c := range removed {
		c.OnRemove()
		c.base().clearOwner(e)
	}
}

// bucket returns a copy of the kind bucket.
func (e *Entity) bucket(kind Kind) []Component {
	e.mu.RLock()
	defer e.mu.RUnlock()

	bucket, _ := e.buckets.Get(kind)
	return slices.Clone(bucket)
}

// Components returns a snapshot of every attached component, bucket by bucket
// in the order the buckets were created.
func (e *Entity) Components() []Component {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []Component
	for _, kind := range e.order {
		bucket, _ := e.buckets.Get(kind)
		out = append(out, bucket...)
	}
	return out
}

// Kinds returns the kinds that currently have at least one component.
func (e *Entity) Kinds() []Kind {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// Has reports whether any component of the given kind is attached.
func (e *Entity) Has(kind Kind) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.buckets.Get(kind)
	return ok
}

// Len returns the number of attached components across all kinds.
func (e *Entity) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := 0
	for _, kind := range e.order {
		bucket, _ := e.buckets.Get(kind)
		n += len(bucket)
	}
	return n
}

// OnInit calls OnInit on every attached component. Nested entities propagate
// the call through their own subtree.
func (e *Entity) OnInit() {
	for _, c := range e.Components() {
		c.OnInit()
	}
}

// OnUpdate calls OnUpdate on every attached component, recursively.
func (e *Entity) OnUpdate() {
	for _, c := range e.Components() {
		c.OnUpdate()
	}
}

// OnRemove tears down the registry: every attached component is removed, so
// each receives OnRemove exactly once and nested entities cascade.
func (e *Entity) OnRemove() {
	for _, c := range e.Components() {
		e.RemoveByID(c.Kind(), c.ID())
	}
}

// GetType returns every component in the kind bucket as T. An empty slice is
// returned when nothing is attached under kind. A component that is not a T
// is a programming error and panics with *KindMismatchError.
func GetType[T Component](e *Entity, kind Kind) []T {
	bucket := e.bucket(kind)
	out := make([]T, 0, len(bucket))
	for _, c := range bucket {
		v, ok := c.(T)
		if !ok {
			panic(mismatch[T](kind, c))
		}
		out = append(out, v)
	}
	return out
}

// Get is GetType filtered by instance id.
func Get[T Component](e *Entity, kind Kind, id string) []T {
	var out []T
	for _, c := range e.bucket(kind) {
		if c.ID() != id {
			continue
		}
		v, ok := c.(T)
		if !ok {
			panic(mismatch[T](kind, c))
		}
		out = append(out, v)
	}
	return out
}

// GetFirst returns the first component of the kind bucket as T.
func GetFirst[T Component](e *Entity, kind Kind) (T, bool) {
	var first T
	bucket := e.bucket(kind)
	for i, c := range bucket {
		v, ok := c.(T)
		if !ok {
			panic(mismatch[T](kind, c))
		}
		if i == 0 {
			first = v
		}
	}
	return first, len(bucket) > 0
}
