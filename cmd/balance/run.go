package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/balance/internal/simulation"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Duel random race/class pairs and report win rates",
		Long: `Run draws a race and class uniformly for both sides of every duel and
tallies wins, losses and draws per class and per race.

  Example: balance run --trials 100000 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			rep, err := e.runner().Run(cmd.Context())
			if err != nil {
				return err
			}
			return simulation.Render(cmd.OutOrStdout(), rep)
		},
	}
	addSimulationFlags(cmd.Flags())
	return cmd
}
