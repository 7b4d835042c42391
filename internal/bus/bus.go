// Package bus delivers theme changes from settings to the root layout.
package bus

import (
	"errors"
	"fmt"
	"sync"
)

// EventTypeThemeChange is the only event type carried by the bus.
const EventTypeThemeChange = "theme_change"

// Theme payloads.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrInvalidEvent is returned by Publish for an unknown type or payload.
var ErrInvalidEvent = errors.New("bus: invalid event")

// Event is a single notification.
type Event struct {
	Type    string
	Payload string
}

// ThemeChange builds a theme_change event for dark or light mode.
func ThemeChange(dark bool) Event {
	if dark {
		return Event{Type: EventTypeThemeChange, Payload: ThemeDark}
	}
	return Event{Type: EventTypeThemeChange, Payload: ThemeLight}
}

// Validate reports whether e is an event the bus accepts.
func (e Event) Validate() error {
	if e.Type != EventTypeThemeChange {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	if e.Payload != ThemeDark && e.Payload != ThemeLight {
		return fmt.Errorf("%w: theme %q", ErrInvalidEvent, e.Payload)
	}
	return nil
}

type subscriber struct {
	id uint64
	fn func(Event)
}

// Bus fans events out to subscribers synchronously, in subscription order.
// The zero value is ready to use.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once has no further effect.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every current subscriber before returning.
// Subscribers may unsubscribe or subscribe during delivery; changes apply
// from the next Publish.
func (b *Bus) Publish(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(e)
	}
	return nil
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Reset drops all subscribers.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
}
