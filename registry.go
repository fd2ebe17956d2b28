package statekit

import "fmt"

// Kind identifies one of the four container kinds a Registry can hold.
type Kind string

const (
	KindGlobal       Kind = "global"
	KindProxy        Kind = "proxy"
	KindComponent    Kind = "component"
	KindStateMachine Kind = "stateMachine"
)

// Registry composes at most one container of each kind. C is the component
// store's value type and P the reactive (proxy) container's, so retrieval
// is statically typed with no casting at the call site.
type Registry[C, P any] struct {
	global    *Global
	proxy     *Reactive[P]
	component *Store[C]
	machine   *Machine
}

// NewRegistry creates an empty registry.
func NewRegistry[C, P any]() *Registry[C, P] {
	return &Registry[C, P]{}
}

// AddGlobalState registers the singleton container. Each kind can be
// registered at most once per registry.
func (r *Registry[C, P]) AddGlobalState(g *Global) error {
	if r.global != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, KindGlobal)
	}
	r.global = g
	return nil
}

// AddProxyState registers the change-aware container.
func (r *Registry[C, P]) AddProxyState(p *Reactive[P]) error {
	if r.proxy != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, KindProxy)
	}
	r.proxy = p
	return nil
}

// AddComponentState registers the plain per-component store.
func (r *Registry[C, P]) AddComponentState(s *Store[C]) error {
	if r.component != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, KindComponent)
	}
	r.component = s
	return nil
}

// AddStateMachine registers the finite-state machine.
func (r *Registry[C, P]) AddStateMachine(m *Machine) error {
	if r.machine != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, KindStateMachine)
	}
	r.machine = m
	return nil
}

// GlobalState returns the registered singleton container.
func (r *Registry[C, P]) GlobalState() (*Global, error) {
	if r.global == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, KindGlobal)
	}
	return r.global, nil
}

// ProxyState returns the registered change-aware container.
func (r *Registry[C, P]) ProxyState() (*Reactive[P], error) {
	if r.proxy == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, KindProxy)
	}
	return r.proxy, nil
}

// ComponentState returns the registered plain store.
func (r *Registry[C, P]) ComponentState() (*Store[C], error) {
	if r.component == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, KindComponent)
	}
	return r.component, nil
}

// StateMachine returns the registered machine.
func (r *Registry[C, P]) StateMachine() (*Machine, error) {
	if r.machine == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, KindStateMachine)
	}
	return r.machine, nil
}
