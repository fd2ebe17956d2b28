package statekit

import "fmt"

// State is one named member of a Machine's fixed state set. The enter and
// exit hooks are optional and run synchronously during transitions.
type State struct {
	Name    string
	OnEnter func()
	OnExit  func()
}

// Machine holds a fixed set of states and a pointer to the current one.
// Any state may transition to any other state in the same set; membership
// is checked by identity against the set supplied at construction, so two
// states sharing a name stay distinct.
type Machine struct {
	states  []*State
	current *State
}

// NewMachine builds a machine over the given states. The first state
// becomes current and its OnEnter hook runs before NewMachine returns.
func NewMachine(states ...*State) (*Machine, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states provided", ErrInvalidArgument)
	}
	for _, s := range states {
		if s == nil {
			return nil, fmt.Errorf("%w: nil state", ErrInvalidArgument)
		}
	}
	m := &Machine{states: states, current: states[0]}
	m.current.enter()
	return m, nil
}

// TransitionTo moves the machine to target: the current state's OnExit
// runs, the current pointer moves, then target's OnEnter runs, in that
// order. A target outside the construction set is rejected and leaves the
// machine unchanged.
func (m *Machine) TransitionTo(target *State) error {
	if !m.member(target) {
		name := "<nil>"
		if target != nil {
			name = target.Name
		}
		return fmt.Errorf("%w: %q is not part of this machine", ErrInvalidState, name)
	}
	m.current.exit()
	m.current = target
	m.current.enter()
	return nil
}

// Current returns the current state.
func (m *Machine) Current() *State {
	return m.current
}

// States returns the fixed state set in construction order. The slice is a
// copy; mutating it does not affect the machine.
func (m *Machine) States() []*State {
	out := make([]*State, len(m.states))
	copy(out, m.states)
	return out
}

func (m *Machine) member(target *State) bool {
	for _, s := range m.states {
		if s == target {
			return true
		}
	}
	return false
}

func (s *State) enter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

func (s *State) exit() {
	if s.OnExit != nil {
		s.OnExit()
	}
}
