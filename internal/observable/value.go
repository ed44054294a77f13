// Package observable provides a small publish-subscribe container for a
// single value. The notes controller exposes each piece of its state as a
// [Value] so the presentation layer can watch the fields independently.
package observable

import "sync"

// Value holds a value of type T and notifies subscribers of every change.
//
// Subscribers that fall behind are conflated: a subscriber channel buffers
// at most one pending value and a newer value replaces an unread one. The
// zero Value is not usable; use [NewValue].
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[uint64]chan T
	nextID uint64
}

// NewValue returns a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value: initial,
		subs:  make(map[uint64]chan T),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and publishes it.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	v.publish(value)
}

// Update atomically replaces the value with fn(current), publishes it and
// returns it. fn must not call back into v.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = fn(v.value)
	v.publish(v.value)
	return v.value
}

// Subscribe returns a channel that first receives the current value and
// then every later one, and a cancel func that closes the channel. Cancel is
// idempotent.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch := make(chan T, 1)
	ch <- v.value

	id := v.nextID
	v.nextID++
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish must be called with v.mu held for writing.
func (v *Value[T]) publish(value T) {
	for _, ch := range v.subs {
		select {
		case ch <- value:
			continue
		default:
		}
		// drop the stale pending value
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}
