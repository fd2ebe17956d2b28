package statekit

import "fmt"

// MachineBuilder provides a fluent API for constructing machines from named
// states instead of assembling State structs by hand. States keep their
// first-declared order; the first declared state becomes the machine's
// initial state.
type MachineBuilder struct {
	order  []*State
	byName map[string]*State
}

// StateBuilder provides fluent methods for configuring individual states.
type StateBuilder struct {
	b     *MachineBuilder
	state *State
}

// NewMachineBuilder creates an empty builder.
func NewMachineBuilder() *MachineBuilder {
	return &MachineBuilder{
		byName: make(map[string]*State),
	}
}

// State creates or retrieves a state by name.
func (b *MachineBuilder) State(name string) *StateBuilder {
	s, ok := b.byName[name]
	if !ok {
		s = &State{Name: name}
		b.byName[name] = s
		b.order = append(b.order, s)
	}
	return &StateBuilder{b: b, state: s}
}

// Lookup returns the state declared under name, or nil. Useful for picking
// transition targets after Build.
func (b *MachineBuilder) Lookup(name string) *State {
	return b.byName[name]
}

// Build assembles the machine. The first declared state is entered before
// Build returns.
func (b *MachineBuilder) Build() (*Machine, error) {
	if len(b.order) == 0 {
		return nil, fmt.Errorf("%w: builder has no states", ErrInvalidArgument)
	}
	return NewMachine(b.order...)
}

// OnEnter sets the enter hook.
func (sb *StateBuilder) OnEnter(fn func()) *StateBuilder {
	sb.state.OnEnter = fn
	return sb
}

// OnExit sets the exit hook.
func (sb *StateBuilder) OnExit(fn func()) *StateBuilder {
	sb.state.OnExit = fn
	return sb
}

// Done returns to the machine builder for chaining.
func (sb *StateBuilder) Done() *MachineBuilder {
	return sb.b
}
