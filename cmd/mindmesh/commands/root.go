package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mindmesh/internal/config"
)

var (
	configPath string
	verbose    bool
	cfg        *config.Config
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mindmesh",
		Short:        "MindMesh, a mental wellness companion for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				c.Log.Level = "debug"
			}
			cfg = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), false)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (env vars override it)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(tuiCmd(), serveCmd(), breatheCmd(), checkinCmd())
	return root
}
