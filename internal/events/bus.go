package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Publisher is the emitting half of the bus
type Publisher interface {
	Emit(event Event) error
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(listener EventListener, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		b.listeners[eventType] = append(b.listeners[eventType], listener)

		// Lower priority runs first
		sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
			return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
		})

		log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
			listener.ID(), eventType, listener.Priority())
	}
}

// SubscribeAll adds a listener for every battle event type
func (b *Bus) SubscribeAll(listener EventListener) {
	b.Subscribe(listener,
		EventTypeBattleStarted,
		EventTypeWeaponEquipped,
		EventTypeAttack,
		EventTypeHeal,
		EventTypeNoWeapon,
		EventTypeBattleConcluded,
	)
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// Emit sends an event to all registered listeners
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// ListenerCount returns how many listeners are subscribed to an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
