package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/statekit"
)

type appState struct {
	Count int `json:"count"`
}

func TestRegistryRejectsDuplicateKinds(t *testing.T) {
	reactive, err := statekit.NewReactive(appState{})
	require.NoError(t, err)
	machine, err := statekit.NewMachine(&statekit.State{Name: "A"})
	require.NoError(t, err)

	reg := statekit.NewRegistry[int, appState]()

	tests := []struct {
		kind statekit.Kind
		add  func() error
	}{
		{statekit.KindGlobal, func() error { return reg.AddGlobalState(statekit.GetInstance()) }},
		{statekit.KindProxy, func() error { return reg.AddProxyState(reactive) }},
		{statekit.KindComponent, func() error { return reg.AddComponentState(statekit.New(0)) }},
		{statekit.KindStateMachine, func() error { return reg.AddStateMachine(machine) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			require.NoError(t, tt.add())

			err := tt.add()
			require.Error(t, err)
			assert.ErrorIs(t, err, statekit.ErrDuplicateRegistration)
			assert.Contains(t, err.Error(), string(tt.kind))
		})
	}
}

func TestRegistryGettersFailUntilRegistered(t *testing.T) {
	reg := statekit.NewRegistry[int, appState]()

	_, err := reg.GlobalState()
	assert.ErrorIs(t, err, statekit.ErrNotFound)

	_, err = reg.ProxyState()
	assert.ErrorIs(t, err, statekit.ErrNotFound)

	_, err = reg.ComponentState()
	assert.ErrorIs(t, err, statekit.ErrNotFound)

	_, err = reg.StateMachine()
	assert.ErrorIs(t, err, statekit.ErrNotFound)
}

func TestRegistryReturnsRegisteredInstances(t *testing.T) {
	store := statekit.New(7)
	reactive, err := statekit.NewReactive(appState{Count: 1})
	require.NoError(t, err)
	machine, err := statekit.NewMachine(&statekit.State{Name: "A"})
	require.NoError(t, err)

	reg := statekit.NewRegistry[int, appState]()
	require.NoError(t, reg.AddComponentState(store))
	require.NoError(t, reg.AddProxyState(reactive))
	require.NoError(t, reg.AddStateMachine(machine))

	gotStore, err := reg.ComponentState()
	require.NoError(t, err)
	assert.Same(t, store, gotStore)

	gotProxy, err := reg.ProxyState()
	require.NoError(t, err)
	assert.Same(t, reactive, gotProxy)

	gotMachine, err := reg.StateMachine()
	require.NoError(t, err)
	assert.Same(t, machine, gotMachine)
}
