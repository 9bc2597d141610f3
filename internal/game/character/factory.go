package character

import (
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

// Factory composes stat generation with trait bonuses.
type Factory struct {
	traits *ruleset.Traits
	src    dice.Source
}

// NewFactory creates a Factory drawing from src and applying traits.
//
// Precondition: traits and src must be non-nil.
func NewFactory(traits *ruleset.Traits, src dice.Source) *Factory {
	return &Factory{traits: traits, src: src}
}

// Create generates a Character of the given race and class.
// Stats = GenerateStats + race bonus + class bonus, component-wise.
//
// Postcondition: Returns a non-nil Character.
func (f *Factory) Create(race ruleset.Race, class ruleset.Class) *Character {
	stats := GenerateStats(f.src).
		Add(f.traits.RaceBonus(race)).
		Add(f.traits.ClassBonus(class))
	return &Character{Race: race, Class: class, Stats: stats}
}

// New creates a Character with the default trait tables.
//
// Precondition: src must be non-nil.
func New(race ruleset.Race, class ruleset.Class, src dice.Source) *Character {
	return NewFactory(ruleset.DefaultTraits(), src).Create(race, class)
}
