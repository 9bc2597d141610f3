package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/balance/internal/config"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
	"github.com/cory-johannsen/balance/internal/observability"
	"github.com/cory-johannsen/balance/internal/simulation"
)

// env is what every subcommand needs once configuration is resolved.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	traits *ruleset.Traits
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"trials":     "simulation.trials",
	"max-turns":  "simulation.max_turns",
	"workers":    "simulation.workers",
	"traits":     "traits.path",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "balance",
		Short:         "Race and class balance simulator",
		Long:          `balance duels randomly generated characters and reports win rates per class and per race.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "minimum log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (json, console)")

	root.AddCommand(newRunCmd(), newMatchupCmd(), newDuelCmd())
	return root
}

// addSimulationFlags registers the flags shared by batch commands.
func addSimulationFlags(fs *pflag.FlagSet) {
	fs.Int("trials", 10_000, "number of duels")
	fs.Int("max-turns", 100, "turn limit per duel")
	fs.Int("workers", 0, "concurrent workers (0 = one per CPU)")
	fs.Uint64("seed", 0, "seed for a reproducible run")
	fs.String("traits", "", "YAML file overriding race and class bonuses")
}

// setup loads configuration with flag overrides, builds the logger and
// loads the trait tables.
//
// Postcondition: Returns a ready env or a non-nil error; the caller must Sync the logger.
func setup(cmd *cobra.Command) (*env, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return nil, err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	traits, err := ruleset.LoadTraits(cfg.Traits.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved",
		zap.Int("trials", cfg.Simulation.Trials),
		zap.Int("max_turns", cfg.Simulation.MaxTurns),
		zap.Int("workers", cfg.Simulation.Workers),
		zap.String("traits", cfg.Traits.Path),
	)
	return &env{cfg: cfg, logger: logger, traits: traits}, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	// Seed has no default; only an explicit flag sets it.
	if fs.Changed("seed") {
		seed, err := fs.GetUint64("seed")
		if err != nil {
			return err
		}
		v.Set("simulation.seed", seed)
	}
	return nil
}

func (e *env) runner() *simulation.Runner {
	s := e.cfg.Simulation
	return simulation.NewRunner(simulation.Config{
		Trials:   s.Trials,
		MaxTurns: s.MaxTurns,
		Workers:  s.Workers,
		Seed:     s.Seed,
	}, e.traits, e.logger)
}

// specFlags registers --raceN and --classN.
func specFlags(fs *pflag.FlagSet, n int) {
	fs.String(fmt.Sprintf("race%d", n), "", "race of side "+fmt.Sprint(n))
	fs.String(fmt.Sprintf("class%d", n), "", "class of side "+fmt.Sprint(n))
}

func parseSpec(fs *pflag.FlagSet, n int) (simulation.Spec, error) {
	raceName, _ := fs.GetString(fmt.Sprintf("race%d", n))
	className, _ := fs.GetString(fmt.Sprintf("class%d", n))
	race, err := ruleset.ParseRace(raceName)
	if err != nil {
		return simulation.Spec{}, fmt.Errorf("--race%d: %w", n, err)
	}
	class, err := ruleset.ParseClass(className)
	if err != nil {
		return simulation.Spec{}, fmt.Errorf("--class%d: %w", n, err)
	}
	return simulation.Spec{Race: race, Class: class}, nil
}
