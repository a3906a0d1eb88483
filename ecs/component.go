package ecs

import "sync"

// Component is a unit of data or behavior that can be attached to an Entity.
// A component is owned by at most one Entity at a time.
//
// Implementations embed Base, which supplies identity, kind, owner tracking and
// no-op lifecycle hooks. Hooks may be overridden by the embedding type.
type Component interface {
	ID() string
	Kind() Kind
	// Owner returns the Entity currently holding the component, or nil.
	Owner() *Entity

	OnInit()
	OnUpdate()
	OnRemove()

	base() *Base
}

// Base is embedded by every component. The zero value is a detached component
// with an empty id and KindInvalid; call Init before attaching it.
type Base struct {
	id   string
	kind Kind

	// attach serializes attach transitions of this component so that the
	// "detach from the previous owner, then reassign" step is atomic.
	attach sync.Mutex

	mu    sync.RWMutex
	owner *Entity
}

// Init sets the identity of a component. It must be called before the
// component is attached and never afterwards.
func (b *Base) Init(id string, kind Kind) {
	b.id = id
	b.kind = kind
}

func (b *Base) ID() string { return b.id }

func (b *Base) Kind() Kind { return b.kind }

func (b *Base) Owner() *Entity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.owner
}

func (b *Base) OnInit()   {}
func (b *Base) OnUpdate() {}
func (b *Base) OnRemove() {}

func (b *Base) base() *Base { return b }

func (b *Base) setOwner(e *Entity) {
	b.mu.Lock()
	b.owner = e
	b.mu.Unlock()
}

// clearOwner nulls the owner only if it is still e. A concurrent Add may have
// already moved the component elsewhere.
func (b *Base) clearOwner(e *Entity) {
	b.mu.Lock()
	if b.owner == e {
		b.owner = nil
	}
	b.mu.Unlock()
}
