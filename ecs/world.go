package ecs

import (
	"sync"
	"weak"

	"github.com/kamstrup/intmap"
)

// Handle is a stable numeric reference to an entity created through a World.
// The zero Handle never refers to anything.
type Handle uint64

// World owns the root of a scene tree and a handle table for the entities it
// creates. The table holds weak pointers: an entity that is detached and no
// longer referenced anywhere else is collected normally, and its handle then
// resolves to nothing.
type World struct {
	root *Entity

	mu   sync.Mutex
	next Handle
	refs *intmap.Map[Handle, weak.Pointer[Entity]]
}

// NewWorld creates a world whose root entity has the given id.
func NewWorld(rootID string) *World {
	w := &World{
		refs: intmap.New[Handle, weak.Pointer[Entity]](256),
	}
	w.root = w.NewEntity(rootID)
	return w
}

// Root returns the root entity.
func (w *World) Root() *Entity {
	return w.root
}

// NewEntity creates a detached entity registered in the handle table. The
// caller attaches it wherever it belongs.
func (w *World) NewEntity(id string) *Entity {
	e := NewEntity(id)

	w.mu.Lock()
	w.next++
	e.handle = w.next
	w.refs.Put(e.handle, weak.Make(e))
	w.mu.Unlock()

	return e
}

// Lookup resolves a handle. It returns nil once the entity was forgotten or
// garbage collected.
func (w *World) Lookup(h Handle) *Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	wp, ok := w.refs.Get(h)
	if !ok {
		return nil
	}
	e := wp.Value()
	if e == nil {
		w.refs.Del(h)
	}
	return e
}

// Forget drops a handle from the table. The entity itself is untouched.
func (w *World) Forget(h Handle) {
	w.mu.Lock()
	w.refs.Del(h)
	w.mu.Unlock()
}

// Compact removes table entries whose entities have been collected and
// returns how many were dropped.
func (w *World) Compact() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	var dead []Handle
	w.refs.ForEach(func(h Handle, wp weak.Pointer[Entity]) bool {
		if wp.Value() == nil {
			dead = append(dead, h)
		}
		return true
	})
	for _, h := range dead {
		w.refs.Del(h)
	}
	return len(dead)
}

// Len returns the number of live-or-uncompacted handles.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.refs.Len()
}
