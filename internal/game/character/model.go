// Package character defines the combat-ready character record and the pure
// logic that generates one.
package character

import (
	"fmt"

	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

// Character is a generated combatant's permanent record.
//
// Invariant: immutable after creation; per-combat state lives in combat.Combatant.
type Character struct {
	Race  ruleset.Race
	Class ruleset.Class
	// Stats holds the generated stats with race and class bonuses applied.
	Stats ruleset.StatBlock
}

// String returns "<race> <class>", e.g. "Nain Guerrier".
func (c *Character) String() string {
	return fmt.Sprintf("%s %s", c.Race, c.Class)
}
