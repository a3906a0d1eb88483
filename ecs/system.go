package ecs

// System represents a behavior that runs once per frame over the scene tree.
// Systems can include Query fields tagged with `ecs:"<kind>"`, which the
// Scheduler binds and refreshes before each Execute, as well as custom state
// fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
