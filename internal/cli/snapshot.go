package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/statekit"
	"github.com/comalice/statekit/internal/logging"
	"github.com/comalice/statekit/internal/production"
)

var (
	snapshotDir    string
	snapshotFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Persist the singleton container's state and reload it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := logging.GetLogger("snapshot")

		var persister production.Persister
		var err error
		switch snapshotFormat {
		case "json":
			persister, err = production.NewJSONPersister(snapshotDir)
		case "yaml":
			persister, err = production.NewYAMLPersister(snapshotDir)
		default:
			return fmt.Errorf("unknown snapshot format %q", snapshotFormat)
		}
		if err != nil {
			return err
		}

		global := statekit.ResetInstance(map[string]any{"session": "demo", "count": 3})
		if err := persister.Save(ctx, production.Capture(string(statekit.KindGlobal), global.Get())); err != nil {
			return err
		}

		loaded, err := persister.Load(ctx, string(statekit.KindGlobal))
		if err != nil {
			return err
		}
		logger.Info().Time("capturedAt", loaded.CapturedAt).Str("dir", snapshotDir).Msg("snapshot round-tripped")

		fmt.Printf("%v\n", loaded.State)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotDir, "dir", "snapshots", "directory to write snapshots into")
	snapshotCmd.Flags().StringVar(&snapshotFormat, "format", "yaml", "snapshot format: json or yaml")
}
