package statekit

import "sync"

// Global is the process-wide singleton container. Independent call sites
// share one source of truth through GetInstance without an explicit
// bootstrap phase. Its value is a string-keyed map; listeners receive the
// new value on every Set.
type Global struct {
	value  map[string]any
	nextID uint64
	subs   []subscriber[func(map[string]any)]
}

var (
	globalMu       sync.Mutex
	globalInstance *Global
)

// GetInstance returns the one process-wide instance, constructing it on
// first call. The optional initial value is honored only by the call that
// constructs the instance; later calls ignore it.
func GetInstance(initial ...map[string]any) *Global {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalInstance == nil {
		globalInstance = newGlobal(initial)
	}
	return globalInstance
}

// ResetInstance unconditionally replaces the singleton with a fresh
// instance seeded with the given value. Listeners registered on the
// previous instance are dropped; callers must re-subscribe. Exists to give
// tests a clean slate.
func ResetInstance(initial ...map[string]any) *Global {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalInstance = newGlobal(initial)
	return globalInstance
}

func newGlobal(initial []map[string]any) *Global {
	value := map[string]any{}
	if len(initial) > 0 && initial[0] != nil {
		value = initial[0]
	}
	return &Global{value: value}
}

// Get returns the current value.
func (g *Global) Get() map[string]any {
	return g.value
}

// Set replaces the value, then invokes every listener with the new value.
func (g *Global) Set(v map[string]any) {
	g.value = v
	subs := g.subs
	for _, sub := range subs {
		sub.fn(g.value)
	}
}

// Update computes the next value from the current one, then behaves like
// Set.
func (g *Global) Update(fn func(map[string]any) map[string]any) {
	g.Set(fn(g.value))
}

// Subscribe registers a listener invoked with the new value after every
// Set.
func (g *Global) Subscribe(fn func(map[string]any)) Unsubscribe {
	g.nextID++
	id := g.nextID
	g.subs = append(g.subs, subscriber[func(map[string]any)]{id: id, fn: fn})
	return func() {
		g.subs = removeSubscriber(g.subs, id)
	}
}
