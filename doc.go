// Package statekit provides small, single-threaded state containers that
// share one notification protocol: a value, a set of listeners, and a
// synchronous announcement on change.
//
// Four container kinds are available:
//   - Store: one value of any type; every Set notifies.
//   - Reactive: a structured value with serialized change detection and
//     explicit batching; only real changes notify.
//   - Global: a lazily constructed process-wide singleton with an explicit
//     reset for test isolation.
//   - Machine: a fixed set of named states with enter/exit hooks and
//     membership-checked transitions.
//
// A Registry composes one container of each kind behind typed accessors.
//
// All operations are synchronous: listeners run inline before the mutating
// call returns, and no goroutines are started. The containers themselves
// are not safe for concurrent use; only the Global instance slot carries a
// lock.
package statekit
