package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/balance/internal/simulation"
)

func newMatchupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matchup",
		Short: "Duel one fixed race/class pair repeatedly",
		Long: `Matchup generates fresh characters for a fixed pair every trial and reports
how often each side wins.

  Example: balance matchup --race1 Nain --class1 Guerrier --race2 Elfe --class2 Voleur`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := parseSpec(cmd.Flags(), 1)
			if err != nil {
				return err
			}
			b, err := parseSpec(cmd.Flags(), 2)
			if err != nil {
				return err
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			m, err := e.runner().RunMatchup(cmd.Context(), a, b)
			if err != nil {
				return err
			}
			return simulation.RenderMatchup(cmd.OutOrStdout(), m)
		},
	}
	addSimulationFlags(cmd.Flags())
	specFlags(cmd.Flags(), 1)
	specFlags(cmd.Flags(), 2)
	return cmd
}
