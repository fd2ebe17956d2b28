package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/statekit"
)

func TestExportDOTHighlightsCurrentState(t *testing.T) {
	red := &statekit.State{Name: "red"}
	green := &statekit.State{Name: "green"}

	m, err := statekit.NewMachine(red, green)
	require.NoError(t, err)
	require.NoError(t, m.TransitionTo(green))

	dot := ExportDOT(m)

	assert.Contains(t, dot, "digraph Machine")
	assert.Contains(t, dot, `"red";`)
	assert.Contains(t, dot, `"green" [style="rounded,filled", fillcolor=lightblue];`)
}
