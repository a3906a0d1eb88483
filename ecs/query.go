package ecs

import "iter"

// Query caches every component of one kind under the world root for the
// current frame. The scheduler refreshes it before each run of the system
// that owns it.
type Query[T Component] struct {
	world *World
	kind  Kind

	cached     []T
	cacheValid bool
}

// NewQuery creates a Query bound to a world and kind.
func NewQuery[T Component](world *World, kind Kind) *Query[T] {
	q := &Query[T]{}
	q.Init(world, kind)
	return q
}

// Init initializes or re-initializes the Query.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(world *World, kind Kind) {
	q.world = world
	q.kind = kind
	q.cached = nil
	q.cacheValid = false
}

// Kind returns the kind the query collects.
func (q *Query[T]) Kind() Kind {
	return q.kind
}

// Execute rebuilds the cache from the current tree.
// Called automatically by the Scheduler before systems run.
func (q *Query[T]) Execute() {
	q.cached = q.cached[:0]
	for c := range All[T](q.world.Root(), q.kind) {
		q.cached = append(q.cached, c)
	}
	q.cacheValid = true
}

// Iter returns an iterator over the cached components.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for _, c := range q.cached {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of cached components.
func (q *Query[T]) Len() int {
	return len(q.cached)
}
