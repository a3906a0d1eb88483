package ecs

import "sync"

// Commands provides a buffer for deferred tree mutations that are executed at
// the end of a frame. Systems and hooks queue work here instead of editing the
// tree while it is being traversed. Queueing is safe from multiple goroutines.
type Commands struct {
	mu      sync.Mutex
	adds    []attachCommand
	removes []attachCommand
	defers  []func()
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type attachCommand struct {
	parent    *Entity
	component Component
}

// Add queues parent.Add(c).
func (c *Commands) Add(parent *Entity, component Component) {
	c.mu.Lock()
	c.adds = append(c.adds, attachCommand{parent: parent, component: component})
	c.mu.Unlock()
}

// Remove queues parent.Remove(c).
func (c *Commands) Remove(parent *Entity, component Component) {
	c.mu.Lock()
	c.removes = append(c.removes, attachCommand{parent: parent, component: component})
	c.mu.Unlock()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies removals, then additions, then deferred functions, each in
// queue order, and resets the buffer. Operations queued while flushing are
// kept for the next Flush.
func (c *Commands) Flush() {
	c.mu.Lock()
	removes, adds, defers := c.removes, c.adds, c.defers
	c.removes, c.adds, c.defers = nil, nil, nil
	c.mu.Unlock()

	for _, cmd := range removes {
		cmd.parent.Remove(cmd.component)
	}

	for _, cmd := range adds {
		cmd.parent.Add(cmd.component)
	}

	for _, fn := range defers {
		fn()
	}
}
