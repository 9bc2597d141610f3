// Package combat implements the turn-based duel engine: the plain attack
// damage model, per-class abilities and the turn loop.
package combat

import (
	"github.com/cory-johannsen/balance/internal/game/character"
)

// Outcome is the result of one duel, relative to argument order.
type Outcome int

const (
	Draw Outcome = iota
	Char1
	Char2
)

// String returns "char1", "char2" or "draw".
func (o Outcome) String() string {
	switch o {
	case Char1:
		return "char1"
	case Char2:
		return "char2"
	default:
		return "draw"
	}
}

// Combatant is the per-combat session state of one Character.
// A fresh Combatant is built for every duel, which is the per-combat reset.
type Combatant struct {
	*character.Character
	// Label identifies the side in events and logs ("char1" or "char2").
	Label string

	CurrentHP int
	// AbilityCD is reserved; cooldowns derive from the turn number.
	AbilityCD int
	// DamageReceived accumulates damage taken until a Masochiste consumes it.
	DamageReceived int
	HasRevived     bool
	// DodgeNext makes the next action that targets this combatant miss entirely.
	DodgeNext bool
	// RipostePercent reflects this share of the next damage received back at its source.
	RipostePercent int
}

// NewCombatant starts a session for c at full health with every transient field cleared.
//
// Precondition: c must be non-nil.
// Postcondition: CurrentHP == c.Stats.HP; all other session fields are zero.
func NewCombatant(c *character.Character, label string) *Combatant {
	return &Combatant{Character: c, Label: label, CurrentHP: c.Stats.HP}
}

// MaxHP returns the character's maximum HP.
func (c *Combatant) MaxHP() int { return c.Stats.HP }

// IsAlive reports whether CurrentHP > 0.
func (c *Combatant) IsAlive() bool { return c.CurrentHP > 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP >= 0.
func (c *Combatant) ApplyDamage(amount int) {
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}

// Heal restores up to amount HP without exceeding MaxHP and returns the HP actually restored.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP <= MaxHP().
func (c *Combatant) Heal(amount int) int {
	before := c.CurrentHP
	c.CurrentHP = max(before, min(before+amount, c.MaxHP()))
	return c.CurrentHP - before
}
