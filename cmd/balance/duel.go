package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/balance/internal/game/character"
	"github.com/cory-johannsen/balance/internal/game/combat"
	"github.com/cory-johannsen/balance/internal/game/dice"
)

func newDuelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Fight a single duel and print it turn by turn",
		Long: `Duel generates one character per side, prints their stats, then narrates
every action and the outcome. With --seed the duel is reproducible.

  Example: balance duel --race1 Mort-vivant --class1 Masochiste --race2 Sylvari --class2 Healer --seed 7`,
		Args: cobra.NoArgs,
		RunE: runDuel,
	}
	fs := cmd.Flags()
	fs.Int("max-turns", 100, "turn limit")
	fs.Uint64("seed", 0, "seed for a reproducible duel")
	fs.String("traits", "", "YAML file overriding race and class bonuses")
	specFlags(fs, 1)
	specFlags(fs, 2)
	return cmd
}

func runDuel(cmd *cobra.Command, _ []string) error {
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

	var src dice.Source = dice.NewCryptoSource()
	if seed := e.cfg.Simulation.Seed; seed != nil {
		src = dice.NewSeededSource(*seed, 0)
	}
	src = dice.NewLoggedSource(src, e.logger)

	f := character.NewFactory(e.traits, src)
	c1 := f.Create(a.Race, a.Class)
	c2 := f.Create(b.Race, b.Class)

	out := cmd.OutOrStdout()
	for _, c := range []*character.Character{c1, c2} {
		s := c.Stats
		fmt.Fprintf(out, "%-22s HP %3d  AUTO %2d  DEF %2d  CAP %2d  RESCAP %2d  SPD %2d\n",
			c, s.HP, s.Auto, s.Def, s.Cap, s.ResCap, s.Spd)
	}
	fmt.Fprintln(out)

	res := combat.NewEngine(src,
		combat.WithMaxTurns(e.cfg.Simulation.MaxTurns),
		combat.WithLogger(e.logger),
		combat.WithRecording(),
	).Fight(c1, c2)

	for _, ev := range res.Events {
		fmt.Fprintln(out, ev.Narrative())
	}
	fmt.Fprintln(out)

	switch res.Outcome {
	case combat.Char1:
		fmt.Fprintf(out, "%s wins after %d turns (%d HP left)\n", c1, res.Turns, res.Char1HP)
	case combat.Char2:
		fmt.Fprintf(out, "%s wins after %d turns (%d HP left)\n", c2, res.Turns, res.Char2HP)
	default:
		fmt.Fprintf(out, "draw after %d turns (%d / %d HP)\n", res.Turns, res.Char1HP, res.Char2HP)
	}
	return nil
}
