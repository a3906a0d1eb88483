package ecs

import "iter"

// MaxDepth bounds the nesting level that traversals and transform resolution
// will follow before giving up with a *DepthError panic.
const MaxDepth = 1024

type walkItem struct {
	entity *Entity
	depth  int
}

// Walk visits root and every nested entity in depth-first pre-order, children
// in registration order. Returning false from fn skips the subtree below e.
// Each entity's child bucket is snapshotted when the entity is visited.
func Walk(root *Entity, fn func(e *Entity, depth int) bool) {
	stack := []walkItem{{entity: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > MaxDepth {
			panic(&DepthError{ID: top.entity.ID(), Depth: MaxDepth})
		}
		if !fn(top.entity, top.depth) {
			continue
		}

		children := GetType[*Entity](top.entity, KindEntity)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkItem{entity: children[i], depth: top.depth + 1})
		}
	}
}

// All iterates over every component of the given kind in the subtree rooted at
// root: the entity's own bucket first, then each nested entity in order.
func All[T Component](root *Entity, kind Kind) iter.Seq[T] {
	return func(yield func(T) bool) {
		stopped := false
		Walk(root, func(e *Entity, _ int) bool {
			if stopped {
				return false
			}
			for _, c := range GetType[T](e, kind) {
				if !yield(c) {
					stopped = true
					return false
				}
			}
			return true
		})
	}
}

// Collect gathers every component of the given kind under root in pre-order.
// It returns an empty slice for a subtree without matches.
func Collect[T Component](root *Entity, kind Kind) []T {
	out := make([]T, 0)
	for c := range All[T](root, kind) {
		out = append(out, c)
	}
	return out
}

// Visit calls fn for every component of the given kind under root, in the
// same order as Collect.
func Visit[T Component](root *Entity, kind Kind, fn func(T)) {
	for c := range All[T](root, kind) {
		fn(c)
	}
}
