package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/statekit"
	"github.com/comalice/statekit/internal/logging"
	"github.com/comalice/statekit/internal/production"
)

var counterSteps int

// counterState is the structured value held by the change-aware container.
type counterState struct {
	Count int `json:"count"`
}

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the plain and change-aware containers side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := logging.GetLogger("counter")
		publisher := production.NewLogPublisher(logger)

		reactive, err := statekit.NewReactive(counterState{})
		if err != nil {
			return err
		}

		reg := statekit.NewRegistry[int, counterState]()
		if err := reg.AddComponentState(statekit.New(0)); err != nil {
			return err
		}
		if err := reg.AddProxyState(reactive); err != nil {
			return err
		}

		component, err := reg.ComponentState()
		if err != nil {
			return err
		}
		component.Subscribe(func() {
			// LogPublisher never fails; keep the listener signature simple.
			_ = publisher.Publish(ctx, production.Change{Container: string(statekit.KindComponent), State: component.Get()})
		})

		proxy, err := reg.ProxyState()
		if err != nil {
			return err
		}
		proxy.Subscribe(func(s counterState) {
			_ = publisher.Publish(ctx, production.Change{Container: string(statekit.KindProxy), State: s})
		})

		for i := 0; i < counterSteps; i++ {
			component.Update(func(n int) int { return n + 1 })
			proxy.Update(func(s counterState) counterState {
				return counterState{Count: s.Count + 1}
			})
		}

		// A batch coalesces the two mutations into a single announcement.
		proxy.BeginBatchUpdates()
		proxy.Mutate(func(s *counterState) { s.Count *= 2 })
		proxy.Mutate(func(s *counterState) { s.Count++ })
		proxy.EndBatchUpdates()

		fmt.Printf("component=%d proxy=%d\n", component.Get(), proxy.Get().Count)
		return nil
	},
}

func init() {
	counterCmd.Flags().IntVar(&counterSteps, "steps", 3, "number of increments to apply")
}
