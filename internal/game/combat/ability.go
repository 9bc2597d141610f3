package combat

import (
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

// Effect tags what an ability did.
type Effect int

const (
	EffectNone Effect = iota
	EffectPierce
	EffectDodge
	EffectRiposte
	EffectHeal
	EffectVolley
	EffectArcane
	EffectDrain
	EffectRetribution
)

var effectNames = [...]string{
	EffectNone:        "attack",
	EffectPierce:      "pierce",
	EffectDodge:       "dodge",
	EffectRiposte:     "riposte",
	EffectHeal:        "heal",
	EffectVolley:      "volley",
	EffectArcane:      "arcane",
	EffectDrain:       "drain",
	EffectRetribution: "retribution",
}

// String returns the effect's short name.
func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// AbilityContext is the read-only view an ability is resolved against.
type AbilityContext struct {
	Attacker Combatant
	Defender Combatant
	// Turn is the 1-based turn counter.
	Turn int
	Src  dice.Source
}

// AbilityResult describes what an ability does. The engine applies it; abilities
// never mutate combatants.
type AbilityResult struct {
	Effect Effect
	// Damage dealt to the defender.
	Damage int
	// Heal restored to the attacker, clamped to max HP by the engine.
	Heal int
	// Dodge sets the attacker's DodgeNext.
	Dodge bool
	// Riposte sets the attacker's RipostePercent when > 0.
	Riposte int
	// ConsumeDamageReceived resets the attacker's DamageReceived.
	ConsumeDamageReceived bool
	// Attack is the plain attack roll behind Damage, when one was made.
	Attack *AttackResult
	// Arrows is the volley size for EffectVolley.
	Arrows int
}

// Ability is one class's special action.
type Ability struct {
	Name string
	// Ready reports whether the ability fires this turn.
	Ready func(ctx AbilityContext) bool
	// Resolve computes the ability's result.
	Resolve func(ctx AbilityContext) AbilityResult
}

func everyNthTurn(n int) func(AbilityContext) bool {
	return func(ctx AbilityContext) bool { return ctx.Turn%n == 0 }
}

// abilities is keyed by class; classes without an entry always attack.
var abilities = map[ruleset.Class]Ability{
	ruleset.Guerrier: {
		Name:  "Armor Break",
		Ready: everyNthTurn(3),
		Resolve: func(ctx AbilityContext) AbilityResult {
			a, d := ctx.Attacker.Stats, ctx.Defender.Stats
			lower := min(d.Def, d.ResCap)
			ignored := Scaling(a.Cap, 15, 3)
			// floor(auto - lower*(100-ignored)/100), kept in hundredths until the end.
			dmg := floorDiv(a.Auto*100-lower*(100-ignored), 100)
			return AbilityResult{Effect: EffectPierce, Damage: max(1, dmg)}
		},
	},
	ruleset.Voleur: {
		Name:  "Evasion",
		Ready: everyNthTurn(3),
		Resolve: func(AbilityContext) AbilityResult {
			return AbilityResult{Effect: EffectDodge, Dodge: true}
		},
	},
	ruleset.Paladin: {
		Name:  "Riposte",
		Ready: everyNthTurn(2),
		Resolve: func(ctx AbilityContext) AbilityResult {
			return AbilityResult{Effect: EffectRiposte, Riposte: Scaling(ctx.Attacker.Stats.Cap, 50, 8)}
		},
	},
	ruleset.Healer: {
		Name:  "Mend",
		Ready: everyNthTurn(4),
		Resolve: func(ctx AbilityContext) AbilityResult {
			a := ctx.Attacker
			missing := a.MaxHP() - a.CurrentHP
			heal := (20*missing + a.Stats.Cap*Scaling(a.Stats.Cap, 25, 5)) / 100
			return AbilityResult{Effect: EffectHeal, Heal: heal}
		},
	},
	ruleset.Archer: {
		Name:  "Volley",
		Ready: everyNthTurn(3),
		Resolve: func(ctx AbilityContext) AbilityResult {
			arrows := 2 + Tiers(ctx.Attacker.Stats.Cap)
			// One roll scaled by the arrow count, not one roll per arrow.
			atk := ResolveAttack(&ctx.Attacker, &ctx.Defender, ctx.Src)
			return AbilityResult{Effect: EffectVolley, Damage: atk.Damage * arrows, Attack: &atk, Arrows: arrows}
		},
	},
	ruleset.Mage: {
		Name:  "Arcane Bolt",
		Ready: everyNthTurn(3),
		Resolve: func(ctx AbilityContext) AbilityResult {
			a := ctx.Attacker.Stats
			dmg := a.Auto + percentOf(a.Cap, Scaling(a.Cap, 40, 5)) - ctx.Defender.Stats.ResCap
			return AbilityResult{Effect: EffectArcane, Damage: max(1, dmg)}
		},
	},
	ruleset.Demoniste: {
		Name:  "Soul Drain",
		Ready: func(AbilityContext) bool { return true },
		Resolve: func(ctx AbilityContext) AbilityResult {
			c := ctx.Attacker.Stats.Cap
			return AbilityResult{Effect: EffectDrain, Damage: percentOf(c, Scaling(c, 10, 2))}
		},
	},
	ruleset.Masochiste: {
		Name: "Retribution",
		Ready: func(ctx AbilityContext) bool {
			return ctx.Turn%4 == 0 && ctx.Attacker.DamageReceived > 0
		},
		Resolve: func(ctx AbilityContext) AbilityResult {
			a := ctx.Attacker
			return AbilityResult{
				Effect:                EffectRetribution,
				Damage:                percentOf(a.DamageReceived, Scaling(a.Stats.Cap, 20, 4)),
				ConsumeDamageReceived: true,
			}
		},
	},
}

// AbilityFor returns the ability of class c, if it has one.
func AbilityFor(c ruleset.Class) (Ability, bool) {
	a, ok := abilities[c]
	return a, ok
}

// ResolveAbility resolves the attacker's class ability for ctx.Turn.
//
// Postcondition: fired is false when the class has no ability or it is not
// ready this turn; the result is then zero.
func ResolveAbility(ctx AbilityContext) (res AbilityResult, fired bool) {
	a, ok := abilities[ctx.Attacker.Class]
	if !ok || !a.Ready(ctx) {
		return AbilityResult{}, false
	}
	return a.Resolve(ctx), true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
