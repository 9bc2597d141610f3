package combat

import (
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

const (
	baseCritPercent   = 5
	elfeCritBonus     = 20
	voleurCritPerTier = 5

	// Multipliers in hundredths.
	critMultiplier    = 150
	enragedMultiplier = 120
)

// AttackResult holds the outcome of a single plain attack.
type AttackResult struct {
	// Base is max(1, attacker.Auto - defender.Def).
	Base int
	// Crit is true when the crit roll succeeded (x1.5).
	Crit bool
	// Enraged is true when an Orc attacker below half HP gained x1.2.
	Enraged bool
	// Damage is the final floored damage.
	Damage int
}

// CritChance returns the attacker's crit chance in percent:
// 5, +20 for Elfe, +5 per Cap tier for Voleur.
func CritChance(attacker *Combatant) int {
	pct := baseCritPercent
	if attacker.Race == ruleset.Elfe {
		pct += elfeCritBonus
	}
	if attacker.Class == ruleset.Voleur {
		pct += voleurCritPerTier * Tiers(attacker.Stats.Cap)
	}
	return pct
}

// ResolveAttack computes a plain attack from attacker to defender.
// The crit roll is made on every call; multipliers stack and the result is
// floored once at the end.
//
// Precondition: attacker, defender and src must be non-nil.
// Postcondition: Base >= 1 and Damage >= Base.
func ResolveAttack(attacker, defender *Combatant, src dice.Source) AttackResult {
	base := max(1, attacker.Stats.Auto-defender.Stats.Def)
	r := AttackResult{Base: base}

	mult := 100
	if dice.Chance(src, CritChance(attacker)) {
		r.Crit = true
		mult = mult * critMultiplier / 100
	}
	if attacker.Race == ruleset.Orc && 2*attacker.CurrentHP < attacker.MaxHP() {
		r.Enraged = true
		mult = mult * enragedMultiplier / 100
	}
	r.Damage = base * mult / 100
	return r
}
