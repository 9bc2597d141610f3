// Package simulation runs Monte Carlo batches of duels and aggregates
// win/loss/draw tallies per class and per race.
package simulation

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/balance/internal/game/character"
	"github.com/cory-johannsen/balance/internal/game/combat"
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

// Config controls a batch of trials.
type Config struct {
	// Trials is the number of duels to run.
	Trials int
	// MaxTurns bounds each duel; <= 0 means combat.DefaultMaxTurns.
	MaxTurns int
	// Workers is the goroutine count; <= 0 means runtime.NumCPU().
	Workers int
	// Seed fixes the run; nil draws a fresh seed from crypto/rand.
	Seed *uint64
}

// Spec names one side of a duel.
type Spec struct {
	Race  ruleset.Race
	Class ruleset.Class
}

// String returns "Race Class".
func (s Spec) String() string {
	return s.Race.String() + " " + s.Class.String()
}

// Runner executes trial batches.
type Runner struct {
	cfg    Config
	traits *ruleset.Traits
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil traits uses ruleset.DefaultTraits and a
// nil logger discards output.
//
// Precondition: cfg.Trials >= 1.
func NewRunner(cfg Config, traits *ruleset.Traits, logger *zap.Logger) *Runner {
	if traits == nil {
		traits = ruleset.DefaultTraits()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, traits: traits, logger: logger}
}

// pairing chooses both sides of trial from its source.
type pairing func(src dice.Source) (Spec, Spec)

func randomPairing(src dice.Source) (Spec, Spec) {
	races := ruleset.AllRaces()
	classes := ruleset.AllClasses()
	a := Spec{Race: races[src.Intn(len(races))], Class: classes[src.Intn(len(classes))]}
	b := Spec{Race: races[src.Intn(len(races))], Class: classes[src.Intn(len(classes))]}
	return a, b
}

func fixedPairing(a, b Spec) pairing {
	return func(dice.Source) (Spec, Spec) { return a, b }
}

// Run pits uniformly random race/class pairs against each other for
// cfg.Trials duels.
//
// Postcondition: on success the class rows and the race rows each account
// for exactly 2*Trials results. Returns ctx.Err() if cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	b, err := r.run(ctx, "run", randomPairing)
	if err != nil {
		return nil, err
	}
	return &Report{
		RunID:   b.id,
		Trials:  r.cfg.Trials,
		Seed:    b.seed,
		Elapsed: b.elapsed,
		Classes: b.tally.classRows(),
		Races:   b.tally.raceRows(),
	}, nil
}

// RunMatchup pits a fixed a against a fixed b for cfg.Trials duels.
//
// Postcondition: Char1Wins + Char2Wins + Draws == Trials on success.
func (r *Runner) RunMatchup(ctx context.Context, a, b Spec) (*Matchup, error) {
	bt, err := r.run(ctx, "matchup", fixedPairing(a, b))
	if err != nil {
		return nil, err
	}
	return &Matchup{
		RunID:     bt.id,
		Trials:    r.cfg.Trials,
		Seed:      bt.seed,
		Elapsed:   bt.elapsed,
		Char1:     a,
		Char2:     b,
		Char1Wins: bt.tally.outcomes[combat.Char1],
		Char2Wins: bt.tally.outcomes[combat.Char2],
		Draws:     bt.tally.outcomes[combat.Draw],
	}, nil
}

type batch struct {
	id      uuid.UUID
	seed    uint64
	elapsed time.Duration
	tally   *tally
}

func (r *Runner) run(ctx context.Context, kind string, pair pairing) (*batch, error) {
	if r.cfg.Trials < 1 {
		return nil, fmt.Errorf("trials must be >= 1, got %d", r.cfg.Trials)
	}
	seed, err := r.seed()
	if err != nil {
		return nil, err
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, r.cfg.Trials)

	id := uuid.New()
	log := r.logger.With(zap.String("run_id", id.String()), zap.String("kind", kind))
	log.Info("simulation started",
		zap.Int("trials", r.cfg.Trials),
		zap.Int("workers", workers),
		zap.Uint64("seed", seed),
	)
	start := time.Now()

	jobs := make(chan int)
	tallies := make([]*tally, workers)
	var wg sync.WaitGroup
	for w := range workers {
		t := newTally()
		tallies[w] = t
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				r.trial(seed, i, pair, t, log)
			}
		}()
	}

feed:
	for i := range r.cfg.Trials {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("simulation cancelled", zap.Error(err))
		return nil, err
	}

	total := newTally()
	for _, t := range tallies {
		total.merge(t)
	}
	elapsed := time.Since(start)
	log.Info("simulation finished", zap.Duration("elapsed", elapsed))
	return &batch{id: id, seed: seed, elapsed: elapsed, tally: total}, nil
}

// trial runs duel i on its own source so results do not depend on scheduling.
func (r *Runner) trial(seed uint64, i int, pair pairing, t *tally, log *zap.Logger) {
	src := dice.NewSeededSource(seed, uint64(i))
	a, b := pair(src)
	f := character.NewFactory(r.traits, src)
	c1 := f.Create(a.Race, a.Class)
	c2 := f.Create(b.Race, b.Class)
	res := combat.NewEngine(src,
		combat.WithMaxTurns(r.cfg.MaxTurns),
		combat.WithLogger(log),
	).Fight(c1, c2)
	t.record(a, b, res.Outcome)
}

func (r *Runner) seed() (uint64, error) {
	if r.cfg.Seed != nil {
		return *r.cfg.Seed, nil
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("drawing run seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
