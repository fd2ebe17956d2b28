package statekit

// Unsubscribe removes the subscription that produced it. Calling it again
// after the subscription is gone has no effect.
type Unsubscribe func()

// subscriber pairs a listener with the handle used to remove it. Go
// functions are not comparable, so identity lives in the id, not the
// callback value.
type subscriber[L any] struct {
	id uint64
	fn L
}

// Store holds a single value of any type and notifies zero-argument
// listeners on every Set, whether or not the value actually changed.
type Store[T any] struct {
	value  T
	nextID uint64
	subs   []subscriber[func()]
}

// New creates a Store seeded with initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	return s.value
}

// Set replaces the stored value, then synchronously invokes every
// registered listener in registration order.
func (s *Store[T]) Set(v T) {
	s.value = v
	s.notify()
}

// Update computes the next value from the current one and stores it,
// notifying like Set.
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Subscribe registers a listener invoked after every Set. The returned
// closure removes exactly this subscription.
func (s *Store[T]) Subscribe(fn func()) Unsubscribe {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[func()]{id: id, fn: fn})
	return func() {
		s.subs = removeSubscriber(s.subs, id)
	}
}

func (s *Store[T]) notify() {
	// Iterate a snapshot: listeners subscribed during notification are not
	// invoked for the in-flight change.
	subs := s.subs
	for _, sub := range subs {
		sub.fn()
	}
}

func removeSubscriber[L any](subs []subscriber[L], id uint64) []subscriber[L] {
	for i, sub := range subs {
		if sub.id == id {
			// Full slice expression forces a copy on the next append, so
			// snapshots held by in-flight notifications stay intact.
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}
