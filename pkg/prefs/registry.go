package prefs

import (
	"sync"

	"github.com/google/uuid"
)

// registry maintains per-key ordered lists of subscribers and fans updates
// out to them. Publish order follows registration order.
type registry struct {
	entries map[string][]*subscriber
	mu      sync.RWMutex
}

type subscriber struct {
	id      string
	key     string
	updates chan any
	done    chan struct{}
	closed  bool
	mu      sync.RWMutex
	reg     *registry
}

func newRegistry() *registry {
	return &registry{
		entries: make(map[string][]*subscriber),
	}
}

func (r *registry) newSubscriber(key string, bufferSize int) *subscriber {
	return &subscriber{
		id:  uuid.New().String(),
		key: key,
		// Minimum buffer of 1 keeps sends non-blocking even with an
		// unbuffered configuration.
		updates: make(chan any, max(bufferSize, 1)),
		done:    make(chan struct{}),
		reg:     r,
	}
}

// register appends sub to its key's entry list.
func (r *registry) register(sub *subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sub.key] = append(r.entries[sub.key], sub)
}

// publish delivers value to every live subscriber for key in registration
// order. String values go through tryDecode first so subscribers receive
// decoded structures, never the serialized text, for values written as
// composites. Publishing to a key with no subscribers is a no-op.
func (r *registry) publish(key string, value any) {
	if s, ok := value.(string); ok {
		value, _ = tryDecode(s)
	}

	r.mu.RLock()
	subs := make([]*subscriber, len(r.entries[key]))
	copy(subs, r.entries[key])
	r.mu.RUnlock()

	for _, sub := range subs {
		sub.send(value)
	}
}

// unsubscribeAll closes and removes every subscriber for key.
func (r *registry) unsubscribeAll(key string) {
	r.mu.Lock()
	subs := r.entries[key]
	delete(r.entries, key)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.closeChan()
	}
}

// disposeAll closes every subscriber for every key. The registry stays
// usable; a fresh subscribe repopulates it.
func (r *registry) disposeAll() {
	r.mu.Lock()
	all := r.entries
	r.entries = make(map[string][]*subscriber)
	r.mu.Unlock()

	for _, subs := range all {
		for _, sub := range subs {
			sub.closeChan()
		}
	}
}

func (r *registry) remove(sub *subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.entries[sub.key]
	for i, s := range subs {
		if s.id == sub.id {
			r.entries[sub.key] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(r.entries[sub.key]) == 0 {
		delete(r.entries, sub.key)
	}
}

// send delivers non-blocking; a full buffer drops the update rather than
// stalling the publisher. A closed subscriber never receives a delivery.
func (s *subscriber) send(v any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.updates <- v:
		return true
	default:
		return false
	}
}

// closeChan closes the update channel without touching the registry; the
// caller is responsible for removal. Idempotent.
func (s *subscriber) closeChan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.done)
		close(s.updates)
	}
}

// close detaches the subscriber from the registry and closes its channel.
func (s *subscriber) close() {
	s.reg.remove(s)
	s.closeChan()
}
