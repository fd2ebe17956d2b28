package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/statekit"
)

func TestBuilderBuildsMachineInDeclarationOrder(t *testing.T) {
	var entered []string

	b := statekit.NewMachineBuilder()
	b.State("red").OnEnter(func() { entered = append(entered, "red") })
	b.State("green").OnEnter(func() { entered = append(entered, "green") })

	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "red", m.Current().Name)
	assert.Equal(t, []string{"red"}, entered)

	require.NoError(t, m.TransitionTo(b.Lookup("green")))
	assert.Equal(t, []string{"red", "green"}, entered)
}

func TestBuilderChains(t *testing.T) {
	var exited int

	m, err := statekit.NewMachineBuilder().
		State("idle").OnExit(func() { exited++ }).Done().
		State("busy").Done().
		Build()
	require.NoError(t, err)

	assert.Equal(t, "idle", m.Current().Name)
	assert.Len(t, m.States(), 2)
}

func TestBuilderReusesStatesByName(t *testing.T) {
	b := statekit.NewMachineBuilder()
	first := b.State("idle")
	second := b.State("idle").OnEnter(func() {})

	_ = first
	_ = second

	m, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, m.States(), 1)
}

func TestBuilderRequiresStates(t *testing.T) {
	_, err := statekit.NewMachineBuilder().Build()
	assert.ErrorIs(t, err, statekit.ErrInvalidArgument)
}

func TestLookupUnknownStateIsNil(t *testing.T) {
	b := statekit.NewMachineBuilder()
	b.State("only")

	assert.Nil(t, b.Lookup("missing"))
}
