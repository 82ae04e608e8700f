// Package slot provides a generic thread-safe single-value container.
package slot

import "sync"

// Slot holds at most one value of type V.
type Slot[V any] struct {
	mu  sync.RWMutex
	val V
	set bool
}

// New creates an empty slot.
func New[V any]() *Slot[V] {
	return &Slot[V]{}
}

// Get returns the stored value and whether one is present.
func (s *Slot[V]) Get() (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val, s.set
}

// Put stores a value, replacing any previous one.
func (s *Slot[V]) Put(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val = v
	s.set = true
}

// Clear empties the slot.
func (s *Slot[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero V
	s.val = zero
	s.set = false
}
