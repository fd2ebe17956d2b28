package statekit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Reactive wraps a structured value and announces mutations only when the
// value's serialized form actually changes. All writes go through Set,
// Update, or Mutate, so consumers cannot bypass change detection.
//
// Change detection compares JSON serializations of the old and new value.
// Two values that serialize identically count as equal even when they are
// distinguishable by reference or by unserializable content.
type Reactive[T any] struct {
	value    T
	nextID   uint64
	subs     []subscriber[func(T)]
	batching bool
	pending  map[uint64]bool
}

// NewReactive wraps initial, which must be a non-nil structured value: a
// struct, a pointer to a struct, or a map.
func NewReactive[T any](initial T) (*Reactive[T], error) {
	if !isStructured(reflect.ValueOf(initial)) {
		return nil, fmt.Errorf("%w: initial value must be of type object", ErrInvalidArgument)
	}
	return &Reactive[T]{
		value:   initial,
		pending: make(map[uint64]bool),
	}, nil
}

func isStructured(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return !v.IsNil()
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil() && isStructured(v.Elem())
	default:
		return false
	}
}

// Get returns the current value.
func (r *Reactive[T]) Get() T {
	return r.value
}

// Set replaces the whole state when v differs from the current value under
// serialized comparison. An equal candidate is dropped without notifying;
// that includes candidates that cannot be serialized, which always compare
// equal, so Set never replaces them. Mutate's write lands regardless.
func (r *Reactive[T]) Set(v T) {
	if bytes.Equal(serialize(r.value), serialize(v)) {
		return
	}
	r.value = v
	r.changed()
}

// Update computes the candidate from the current value, then behaves like
// Set.
func (r *Reactive[T]) Update(fn func(T) T) {
	r.Set(fn(r.value))
}

// Mutate applies fn to the stored value in place. The write always lands;
// listeners hear about it only when the serialized form changed.
func (r *Reactive[T]) Mutate(fn func(*T)) {
	before := serialize(r.value)
	fn(&r.value)
	if bytes.Equal(before, serialize(r.value)) {
		return
	}
	r.changed()
}

// Subscribe registers a listener that receives the whole state on every
// announced change.
func (r *Reactive[T]) Subscribe(fn func(T)) Unsubscribe {
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscriber[func(T)]{id: id, fn: fn})
	return func() {
		r.subs = removeSubscriber(r.subs, id)
		delete(r.pending, id)
	}
}

// BeginBatchUpdates defers notifications until EndBatchUpdates. Batching is
// flat: calling it while already batching has no additional effect.
func (r *Reactive[T]) BeginBatchUpdates() {
	r.batching = true
}

// EndBatchUpdates invokes every pending listener exactly once with the
// current state, clears the pending set, and always leaves batching off.
// Batching stays on until the flush completes: a change made by a listener
// during the flush is queued for a later flush, not announced inline.
func (r *Reactive[T]) EndBatchUpdates() {
	pending := r.pending
	if len(pending) > 0 {
		r.pending = make(map[uint64]bool)
		for _, sub := range r.subs {
			if pending[sub.id] {
				sub.fn(r.value)
			}
		}
	}
	r.batching = false
}

// changed routes a detected change to listeners, either immediately or into
// the pending set while a batch is open.
func (r *Reactive[T]) changed() {
	if r.batching {
		for _, sub := range r.subs {
			r.pending[sub.id] = true
		}
		return
	}
	subs := r.subs
	for _, sub := range subs {
		sub.fn(r.value)
	}
}

// serialize renders v for equality comparison. Unserializable values yield
// nil and therefore compare equal to each other, which keeps them invisible
// to change detection.
func serialize(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
