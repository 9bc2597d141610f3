package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/balance/internal/game/ruleset"
	"github.com/cory-johannsen/balance/internal/testutil"
)

func TestAct_DodgeConsumesFlagWithoutDamage(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().Auto(40).Build(), "char2")
	target := NewCombatant(testutil.NewCharacter().Class(ruleset.Voleur).Build(), "char1")
	target.DodgeNext = true

	ev := e.act(1, actor, target)

	assert.True(t, ev.Dodged)
	assert.False(t, target.DodgeNext)
	assert.Equal(t, target.MaxHP(), target.CurrentHP)
	assert.Zero(t, target.DamageReceived)

	ev = e.act(1, actor, target)
	assert.False(t, ev.Dodged, "dodge is one-shot")
	assert.Equal(t, 20, target.DamageReceived)
}

func TestAct_RiposteReflectsOnceThenClears(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().Auto(40).Build(), "char1")
	target := NewCombatant(testutil.NewCharacter().Class(ruleset.Paladin).Build(), "char2")
	target.RipostePercent = 66

	ev := e.act(1, actor, target)
	assert.Equal(t, 20, ev.Damage)
	assert.Equal(t, 13, ev.Reflected)
	assert.Equal(t, actor.MaxHP()-13, actor.CurrentHP)
	assert.Zero(t, target.RipostePercent)

	ev = e.act(1, actor, target)
	assert.Zero(t, ev.Reflected)
	assert.Equal(t, actor.MaxHP()-13, actor.CurrentHP)
}

func TestAct_RiposteSurvivesZeroDamageAction(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().Class(ruleset.Voleur).Build(), "char1")
	target := NewCombatant(testutil.NewCharacter().Class(ruleset.Paladin).Build(), "char2")
	target.RipostePercent = 50

	ev := e.act(3, actor, target)
	assert.Equal(t, EffectDodge, ev.Effect)
	assert.True(t, actor.DodgeNext)
	assert.Equal(t, 50, target.RipostePercent)
}

func TestAct_MasochisteConsumesDamageReceived(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().Class(ruleset.Masochiste).Cap(30).Build(), "char1")
	actor.DamageReceived = 50
	target := NewCombatant(testutil.NewCharacter().Build(), "char2")

	ev := e.act(4, actor, target)
	assert.Equal(t, EffectRetribution, ev.Effect)
	assert.Equal(t, 14, ev.Damage)
	assert.Zero(t, actor.DamageReceived)
	assert.Equal(t, 14, target.DamageReceived)
}

func TestAct_HealerHealsSelfAndDealsNothing(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().HP(150).Cap(30).Build(), "char1")
	actor.CurrentHP = 140
	target := NewCombatant(testutil.NewCharacter().Build(), "char2")

	ev := e.act(4, actor, target)
	assert.Equal(t, EffectHeal, ev.Effect)
	assert.Equal(t, 10, ev.Heal, "clamped to max hp")
	assert.Equal(t, 150, actor.CurrentHP)
	assert.Zero(t, ev.Damage)
	assert.Equal(t, target.MaxHP(), target.CurrentHP)
}

func TestAct_RevivalOnlyForMortVivant(t *testing.T) {
	e := NewEngine(testutil.HighSource{})
	actor := NewCombatant(testutil.NewCharacter().Auto(500).Build(), "char1")
	orc := NewCombatant(testutil.NewCharacter().Race(ruleset.Orc).Build(), "char2")

	ev := e.act(1, actor, orc)
	assert.False(t, ev.Revived)
	assert.False(t, orc.IsAlive())
}
