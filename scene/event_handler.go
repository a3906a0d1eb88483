package scene

import (
	"sync"

	"github.com/plus3/hecs/ecs"
)

// Event is an input or window event forwarded from the presentation layer.
// The scene never inspects it.
type Event any

// Handler reacts to events.
type Handler interface {
	Handle(ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event)

func (f HandlerFunc) Handle(ev Event) { f(ev) }

// EventHandler is a component that forwards every dispatched event to its
// Handler.
type EventHandler struct {
	ecs.Base

	mu      sync.Mutex
	handler Handler
}

func NewEventHandler(id string, h Handler) *EventHandler {
	eh := &EventHandler{handler: h}
	eh.Init(id, ecs.KindEventHandler)
	return eh
}

// SetHandler swaps the handler.
func (eh *EventHandler) SetHandler(h Handler) {
	eh.mu.Lock()
	eh.handler = h
	eh.mu.Unlock()
}

// Handle calls the current handler outside the lock, so a handler may replace
// itself or edit the tree.
func (eh *EventHandler) Handle(ev Event) {
	eh.mu.Lock()
	h := eh.handler
	eh.mu.Unlock()

	if h != nil {
		h.Handle(ev)
	}
}
