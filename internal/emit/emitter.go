package emit

import (
	"sync"

	"github.com/grindlemire/go-splitpane/internal/debug"
)

// Listener receives events delivered to one level.
type Listener func(Event)

// Unsubscribe is a handle to remove a listener. Calling it more than once
// is safe.
type Unsubscribe func()

type subscription struct {
	id     uint64
	fn     Listener
	active bool
}

// Emitter holds per-level listeners and dispatches routed events to them.
type Emitter struct {
	mu     sync.RWMutex
	levels map[string][]*subscription
	nextID uint64
}

// NewEmitter creates an emitter with no listeners.
func NewEmitter() *Emitter {
	return &Emitter{levels: make(map[string][]*subscription)}
}

// Subscribe adds a listener for events delivered to the level owned by
// the split with the given ID. The empty ID subscribes to the root level.
func (e *Emitter) Subscribe(level string, fn Listener) Unsubscribe {
	e.mu.Lock()
	e.nextID++
	sub := &subscription{id: e.nextID, fn: fn, active: true}
	e.levels[level] = append(e.levels[level], sub)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if !sub.active {
			return
		}
		sub.active = false
		subs := e.levels[level]
		for i, s := range subs {
			if s.id == sub.id {
				e.levels[level] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(e.levels[level]) == 0 {
			delete(e.levels, level)
		}
	}
}

// Emit routes origin from the mutated level to the root and calls the
// listeners of every level on the way, nearest level first. Listeners
// unsubscribed earlier in the same dispatch are skipped. It returns the
// deliveries made.
func (e *Emitter) Emit(owners []string, origin Event) []Delivery {
	deliveries := Route(owners, origin)
	for _, d := range deliveries {
		e.mu.RLock()
		subs := make([]*subscription, len(e.levels[d.Level]))
		copy(subs, e.levels[d.Level])
		e.mu.RUnlock()

		for _, s := range subs {
			e.mu.RLock()
			active := s.active
			e.mu.RUnlock()
			if active {
				s.fn(d.Event)
			}
		}
	}
	debug.Log("emit: %s %s via %d levels", origin.Kind, origin.SplitID, len(deliveries))
	return deliveries
}

// Len returns the number of listeners at a level.
func (e *Emitter) Len(level string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.levels[level])
}

// Reset drops every listener.
func (e *Emitter) Reset() {
	e.mu.Lock()
	for _, subs := range e.levels {
		for _, s := range subs {
			s.active = false
		}
	}
	e.levels = make(map[string][]*subscription)
	e.mu.Unlock()
}
