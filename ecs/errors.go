package ecs

import (
	"fmt"
	"reflect"
)

// KindMismatchError is the panic value raised when a typed query finds a
// component whose concrete type does not match the requested variant. It means
// the kind-to-variant mapping was broken by an earlier Add.
type KindMismatchError struct {
	Kind Kind
	ID   string
	Want reflect.Type
	Got  reflect.Type
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("ecs: component %q of kind %q is %v, not %v", e.ID, e.Kind, e.Got, e.Want)
}

// DepthError is the panic value raised when a traversal or transform
// resolution exceeds MaxDepth, which only happens on cyclic trees or trees
// deeper than any frame loop can afford.
type DepthError struct {
	// ID is the id of the entity or transform at which the limit was hit.
	ID    string
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("ecs: tree depth exceeded %d at %q (cycle?)", e.Depth, e.ID)
}

func mismatch[T any](kind Kind, c Component) *KindMismatchError {
	return &KindMismatchError{
		Kind: kind,
		ID:   c.ID(),
		Want: reflect.TypeFor[T](),
		Got:  reflect.TypeOf(c),
	}
}
