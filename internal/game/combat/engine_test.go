package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/balance/internal/game/character"
	"github.com/cory-johannsen/balance/internal/game/combat"
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
	"github.com/cory-johannsen/balance/internal/testutil"
)

func TestSimulate_NainGuerrierVsElfeVoleur(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 50; i++ {
		a := character.New(ruleset.Nain, ruleset.Guerrier, src)
		b := character.New(ruleset.Elfe, ruleset.Voleur, src)
		out := combat.Simulate(a, b, 100)
		assert.Contains(t, []combat.Outcome{combat.Char1, combat.Char2, combat.Draw}, out)
	}
}

func TestFight_Property_TerminatesWithinMaxTurns(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed"), 0)
		a := character.New(ruleset.Race(rapid.IntRange(0, 7).Draw(rt, "race1")), ruleset.Class(rapid.IntRange(0, 7).Draw(rt, "class1")), src)
		b := character.New(ruleset.Race(rapid.IntRange(0, 7).Draw(rt, "race2")), ruleset.Class(rapid.IntRange(0, 7).Draw(rt, "class2")), src)
		maxTurns := rapid.IntRange(1, 100).Draw(rt, "max_turns")

		res := combat.NewEngine(src, combat.WithMaxTurns(maxTurns)).Fight(a, b)
		assert.LessOrEqual(rt, res.Turns, maxTurns)
		switch res.Outcome {
		case combat.Char1:
			assert.Greater(rt, res.Char1HP, 0)
			assert.Zero(rt, res.Char2HP)
		case combat.Char2:
			assert.Greater(rt, res.Char2HP, 0)
			assert.Zero(rt, res.Char1HP)
		case combat.Draw:
			assert.Equal(rt, res.Char1HP > 0, res.Char2HP > 0)
		}
	})
}

func TestFight_MaxTurnsExhaustedIsDraw(t *testing.T) {
	a := testutil.NewCharacter().Stats(testutil.Flat(10_000, 15)).Build()
	b := testutil.NewCharacter().Stats(testutil.Flat(10_000, 15)).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(1)).Fight(a, b)
	assert.Equal(t, combat.Draw, res.Outcome)
	assert.Equal(t, 1, res.Turns)
	assert.Equal(t, 9_999, res.Char1HP)
	assert.Equal(t, 9_999, res.Char2HP)
}

func TestNewEngine_NonPositiveMaxTurnsKeepsDefault(t *testing.T) {
	assert.Equal(t, combat.DefaultMaxTurns, combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(0)).MaxTurns())
	assert.Equal(t, combat.DefaultMaxTurns, combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(-3)).MaxTurns())
}

func TestFight_FasterSideActsFirst(t *testing.T) {
	slow := testutil.NewCharacter().Spd(10).Build()
	fast := testutil.NewCharacter().Spd(30).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(1), combat.WithRecording()).Fight(slow, fast)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "char2", res.Events[0].Actor)
	assert.Equal(t, "char1", res.Events[1].Actor)
}

func TestFight_SpeedTieFavoursFirstArgument(t *testing.T) {
	a := testutil.NewCharacter().Spd(20).Build()
	b := testutil.NewCharacter().Spd(20).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(1), combat.WithRecording()).Fight(a, b)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "char1", res.Events[0].Actor)
}

func TestFight_MortVivantRevivesOnce(t *testing.T) {
	killer := testutil.NewCharacter().Auto(100).Spd(30).Build()
	undead := testutil.NewCharacter().Race(ruleset.MortVivant).HP(100).Def(0).Auto(0).Spd(10).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithRecording()).Fight(killer, undead)

	assert.Equal(t, combat.Char1, res.Outcome)
	assert.Equal(t, 2, res.Turns)
	require.Len(t, res.Events, 3)
	assert.True(t, res.Events[0].Revived)
	assert.Equal(t, 20, res.Events[0].TargetHP)
	assert.False(t, res.Events[2].Revived, "second death is final")
	assert.Zero(t, res.Char2HP)
}

func TestFight_VoleurDodgeSwallowsOneAttack(t *testing.T) {
	voleur := testutil.NewCharacter().Class(ruleset.Voleur).
		Stats(ruleset.StatBlock{HP: 1000, Auto: 20, Def: 20, Cap: 15, ResCap: 20, Spd: 30}).Build()
	brute := testutil.NewCharacter().
		Stats(ruleset.StatBlock{HP: 1000, Auto: 30, Def: 20, Cap: 20, ResCap: 20, Spd: 10}).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(3), combat.WithRecording()).Fight(voleur, brute)

	require.Len(t, res.Events, 6)
	assert.Equal(t, combat.EffectDodge, res.Events[4].Effect)
	assert.True(t, res.Events[5].Dodged)
	assert.Zero(t, res.Events[5].Damage)
	assert.Equal(t, 980, res.Char1HP, "only the first two turns landed")
	assert.Equal(t, 998, res.Char2HP)
	assert.Equal(t, combat.Draw, res.Outcome)
}

func TestFight_RiposteCanCauseDoubleKnockout(t *testing.T) {
	healer := testutil.NewCharacter().
		Stats(ruleset.StatBlock{HP: 30, Auto: 50, Def: 0, Cap: 15, ResCap: 0, Spd: 10}).Build()
	paladin := testutil.NewCharacter().Class(ruleset.Paladin).
		Stats(ruleset.StatBlock{HP: 60, Auto: 1, Def: 0, Cap: 30, ResCap: 0, Spd: 30}).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithRecording()).Fight(healer, paladin)

	assert.Equal(t, combat.Draw, res.Outcome)
	assert.Equal(t, 2, res.Turns)
	assert.Zero(t, res.Char1HP)
	assert.Zero(t, res.Char2HP)
	last := res.Events[len(res.Events)-1]
	assert.Equal(t, 50, last.Damage)
	assert.Equal(t, 33, last.Reflected)
}

func TestFight_SylvariRegenerates(t *testing.T) {
	sylvari := testutil.NewCharacter().Race(ruleset.Sylvari).HP(150).Spd(30).Build()
	other := testutil.NewCharacter().Spd(10).Build()

	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(2), combat.WithRecording()).Fight(sylvari, other)
	require.Len(t, res.Events, 4)
	assert.Zero(t, res.Events[0].Regen, "already at full health")
	assert.Equal(t, 1, res.Events[2].Regen, "took 1 damage, regen capped at max")
}

func TestFight_DoesNotMutateCharacters(t *testing.T) {
	a := testutil.NewCharacter().Class(ruleset.Masochiste).Build()
	b := testutil.NewCharacter().Class(ruleset.Paladin).Build()
	before1, before2 := *a, *b

	eng := combat.NewEngine(dice.NewSeededSource(1, 1))
	eng.Fight(a, b)
	eng.Fight(a, b)

	assert.Equal(t, before1, *a)
	assert.Equal(t, before2, *b)
}

func TestFight_SeededSourceIsDeterministic(t *testing.T) {
	gen := dice.NewSeededSource(99, 0)
	a := character.New(ruleset.Orc, ruleset.Archer, gen)
	b := character.New(ruleset.Sylvari, ruleset.Masochiste, gen)

	r1 := combat.NewEngine(dice.NewSeededSource(5, 5), combat.WithRecording()).Fight(a, b)
	r2 := combat.NewEngine(dice.NewSeededSource(5, 5), combat.WithRecording()).Fight(a, b)
	assert.Equal(t, r1, r2)
}

func TestFight_LogsEveryAction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := testutil.NewCharacter().Spd(30).Build()
	b := testutil.NewCharacter().Spd(10).Build()

	res := combat.NewEngine(testutil.HighSource{},
		combat.WithMaxTurns(3),
		combat.WithLogger(zap.New(core)),
		combat.WithRecording(),
	).Fight(a, b)

	assert.Len(t, logs.FilterMessage("combat action").All(), len(res.Events))
	resolved := logs.FilterMessage("combat resolved").All()
	require.Len(t, resolved, 1)
	assert.Equal(t, "draw", resolved[0].ContextMap()["outcome"])
	assert.Equal(t, int64(3), resolved[0].ContextMap()["turns"])
}

func TestFight_NoEventsWithoutRecording(t *testing.T) {
	a := testutil.NewCharacter().Build()
	b := testutil.NewCharacter().Build()
	res := combat.NewEngine(testutil.HighSource{}, combat.WithMaxTurns(5)).Fight(a, b)
	assert.Nil(t, res.Events)
}

func TestTurnEvent_Narrative(t *testing.T) {
	tests := []struct {
		name string
		ev   combat.TurnEvent
		want string
	}{
		{
			"plain crit",
			combat.TurnEvent{Turn: 2, Actor: "char1", Target: "char2", Damage: 15, Crit: true, TargetHP: 85},
			"T2 char1 hits char2 for 15 (critical) (hp 85).",
		},
		{
			"dodged",
			combat.TurnEvent{Turn: 3, Actor: "char2", Target: "char1", Dodged: true},
			"T3 char2 attacks but char1 evades.",
		},
		{
			"revival",
			combat.TurnEvent{Turn: 1, Actor: "char1", Target: "char2", Effect: combat.EffectPierce, Damage: 40, Revived: true, TargetHP: 30},
			"T1 char1 uses pierce on char2 for 40 (hp 30). char2 rises again with 30 hp.",
		},
		{
			"heal with regen",
			combat.TurnEvent{Turn: 4, Actor: "char1", Target: "char2", Effect: combat.EffectHeal, Regen: 3, Heal: 12, ActorHP: 100},
			"T4 char1 regenerates 3, heals for 12 (hp 100).",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ev.Narrative())
		})
	}
}
