package testutil

import (
	"github.com/cory-johannsen/balance/internal/game/character"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

// Flat returns a StatBlock with the given HP and every other stat set to v.
func Flat(hp, v int) ruleset.StatBlock {
	return ruleset.StatBlock{HP: hp, Auto: v, Def: v, Cap: v, ResCap: v, Spd: v}
}

// CharacterBuilder assembles Characters with exact stats for combat tests.
type CharacterBuilder struct {
	c character.Character
}

// NewCharacter starts a Lycan Healer (no race or class effects fire outside
// Healer's fourth-turn heal) with Flat(150, 20) stats.
func NewCharacter() *CharacterBuilder {
	return &CharacterBuilder{c: character.Character{
		Race:  ruleset.Lycan,
		Class: ruleset.Healer,
		Stats: Flat(150, 20),
	}}
}

// Race sets the race.
func (b *CharacterBuilder) Race(r ruleset.Race) *CharacterBuilder {
	b.c.Race = r
	return b
}

// Class sets the class.
func (b *CharacterBuilder) Class(c ruleset.Class) *CharacterBuilder {
	b.c.Class = c
	return b
}

// Stats replaces the stat block.
func (b *CharacterBuilder) Stats(s ruleset.StatBlock) *CharacterBuilder {
	b.c.Stats = s
	return b
}

// HP sets max HP.
func (b *CharacterBuilder) HP(hp int) *CharacterBuilder {
	b.c.Stats.HP = hp
	return b
}

// Auto sets attack.
func (b *CharacterBuilder) Auto(v int) *CharacterBuilder {
	b.c.Stats.Auto = v
	return b
}

// Def sets defense.
func (b *CharacterBuilder) Def(v int) *CharacterBuilder {
	b.c.Stats.Def = v
	return b
}

// Cap sets ability power.
func (b *CharacterBuilder) Cap(v int) *CharacterBuilder {
	b.c.Stats.Cap = v
	return b
}

// ResCap sets magic resistance.
func (b *CharacterBuilder) ResCap(v int) *CharacterBuilder {
	b.c.Stats.ResCap = v
	return b
}

// Spd sets speed.
func (b *CharacterBuilder) Spd(v int) *CharacterBuilder {
	b.c.Stats.Spd = v
	return b
}

// Build returns a copy of the assembled Character.
func (b *CharacterBuilder) Build() *character.Character {
	c := b.c
	return &c
}
