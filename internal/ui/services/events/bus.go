package events

import (
	"fmt"
	"sync"
)

// EventBus is what UI services publish their notifications on
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus drops every event; services use it when mounted without a bus
type NullBus struct{}

func (*NullBus) Publish(interface{})                 {}
func (*NullBus) Subscribe(string, func(interface{})) {}

var (
	_ EventBus = (*Bus)(nil)
	_ EventBus = (*NullBus)(nil)
)

// Bus is a simple event bus for UI services.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[EventType(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// EventType returns the name listeners use to subscribe to event,
// e.g. "selection.SelectionChangedEvent"
func EventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
