package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/statekit"
	"github.com/comalice/statekit/internal/logging"
	"github.com/comalice/statekit/internal/production"
)

var machineDOT bool

var machineCmd = &cobra.Command{
	Use:   "machine",
	Short: "Cycle a traffic light through the finite-state holder",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("machine")

		global := statekit.ResetInstance(map[string]any{"light": ""})
		global.Subscribe(func(v map[string]any) {
			logger.Info().Interface("state", v).Msg("global updated")
		})

		light := func(name string) *statekit.State {
			return &statekit.State{
				Name: name,
				OnEnter: func() {
					logger.Debug().Str("light", name).Msg("entered")
					statekit.GetInstance().Set(map[string]any{"light": name})
				},
				OnExit: func() {
					logger.Debug().Str("light", name).Msg("exited")
				},
			}
		}

		red := light("red")
		green := light("green")
		yellow := light("yellow")

		m, err := statekit.NewMachine(red, green, yellow)
		if err != nil {
			return err
		}

		for _, next := range []*statekit.State{green, yellow, red} {
			if err := m.TransitionTo(next); err != nil {
				return err
			}
		}

		// A state outside the construction set is rejected.
		if err := m.TransitionTo(&statekit.State{Name: "blue"}); err != nil {
			logger.Warn().Err(err).Msg("rejected transition")
		}

		if machineDOT {
			fmt.Print(production.ExportDOT(m))
			return nil
		}

		fmt.Println("final:", m.Current().Name)
		return nil
	},
}

func init() {
	machineCmd.Flags().BoolVar(&machineDOT, "dot", false, "print the machine's state set as Graphviz DOT")
}
